/*
File    : golox/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingReporter collects every reported error for assertion, instead
// of formatting them, mirroring the teacher's preference for inspecting
// raw error data in tests rather than string-matching rendered output.
type recordingReporter struct {
	errors []string
}

func (r *recordingReporter) ReportLexError(line int, message string) {
	r.errors = append(r.errors, message)
}

// TestConsumeToken represents one ScanTokens test case: source in, tokens
// (kind, lexeme, literal, line) expected out. EOF is appended by the test helper so
// each case only lists its meaningful tokens.
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

func scanNoErrors(t *testing.T, src string) []Token {
	t.Helper()
	rep := &recordingReporter{}
	tokens := New(src, rep).ScanTokens()
	assert.Empty(t, rep.errors)
	return tokens
}

func TestLexer_ScanTokens(t *testing.T) {
	tests := []TestConsumeToken{
		{
			Input: `123 + 2 31 - 12`,
			ExpectedTokens: []Token{
				NewLiteralToken(NUMBER, "123", 123.0, 1),
				NewToken(PLUS, "+", 1),
				NewLiteralToken(NUMBER, "2", 2.0, 1),
				NewLiteralToken(NUMBER, "31", 31.0, 1),
				NewToken(MINUS, "-", 1),
				NewLiteralToken(NUMBER, "12", 12.0, 1),
			},
		},
		{
			Input: `( ) { } , . ;`,
			ExpectedTokens: []Token{
				NewToken(LEFT_PAREN, "(", 1),
				NewToken(RIGHT_PAREN, ")", 1),
				NewToken(LEFT_BRACE, "{", 1),
				NewToken(RIGHT_BRACE, "}", 1),
				NewToken(COMMA, ",", 1),
				NewToken(DOT, ".", 1),
				NewToken(SEMICOLON, ";", 1),
			},
		},
		{
			Input: `! != = == < <= > >=`,
			ExpectedTokens: []Token{
				NewToken(BANG, "!", 1),
				NewToken(BANG_EQUAL, "!=", 1),
				NewToken(EQUAL, "=", 1),
				NewToken(EQUAL_EQUAL, "==", 1),
				NewToken(LESS, "<", 1),
				NewToken(LESS_EQUAL, "<=", 1),
				NewToken(GREATER, ">", 1),
				NewToken(GREATER_EQUAL, ">=", 1),
			},
		},
		{
			Input: `and or print var fun class if else for while nil true false return`,
			ExpectedTokens: []Token{
				NewToken(AND, "and", 1),
				NewToken(OR, "or", 1),
				NewToken(PRINT, "print", 1),
				NewToken(VAR, "var", 1),
				NewToken(FUN, "fun", 1),
				NewToken(CLASS, "class", 1),
				NewToken(IF, "if", 1),
				NewToken(ELSE, "else", 1),
				NewToken(FOR, "for", 1),
				NewToken(WHILE, "while", 1),
				NewToken(NIL, "nil", 1),
				NewToken(TRUE, "true", 1),
				NewToken(FALSE, "false", 1),
				NewToken(RETURN, "return", 1),
			},
		},
		{
			Input: `foo bar_baz _leading camelCase42`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER, "foo", 1),
				NewToken(IDENTIFIER, "bar_baz", 1),
				NewToken(IDENTIFIER, "_leading", 1),
				NewToken(IDENTIFIER, "camelCase42", 1),
			},
		},
	}

	for _, tc := range tests {
		tokens := scanNoErrors(t, tc.Input)
		expected := append([]Token{}, tc.ExpectedTokens...)
		expected = append(expected, NewToken(EOF, "", tokens[len(tokens)-1].Line))
		assert.Equal(t, expected, tokens)
	}
}

func TestLexer_Numbers(t *testing.T) {
	tokens := scanNoErrors(t, `123 45.67 0.5`)
	assert.Equal(t, NUMBER, tokens[0].Type)
	assert.Equal(t, 123.0, tokens[0].Literal)
	assert.Equal(t, 45.67, tokens[1].Literal)
	assert.Equal(t, 0.5, tokens[2].Literal)
}

func TestLexer_TrailingDotIsNotPartOfNumber(t *testing.T) {
	// "1." has no digit after the dot, so the dot is its own token and the
	// number stops at "1" — matches the original grammar's lookahead rule.
	tokens := scanNoErrors(t, `1.`)
	assert.Equal(t, NUMBER, tokens[0].Type)
	assert.Equal(t, 1.0, tokens[0].Literal)
	assert.Equal(t, DOT, tokens[1].Type)
}

func TestLexer_Strings(t *testing.T) {
	tokens := scanNoErrors(t, `"hello world"`)
	assert.Equal(t, STRING, tokens[0].Type)
	assert.Equal(t, "hello world", tokens[0].Literal)
}

func TestLexer_MultilineString(t *testing.T) {
	rep := &recordingReporter{}
	tokens := New("\"line one\nline two\" identifier", rep).ScanTokens()
	assert.Empty(t, rep.errors)
	assert.Equal(t, STRING, tokens[0].Type)
	assert.Equal(t, "line one\nline two", tokens[0].Literal)
	// the identifier after the string is on line 2
	assert.Equal(t, 2, tokens[1].Line)
}

func TestLexer_UnterminatedStringReportsError(t *testing.T) {
	rep := &recordingReporter{}
	New(`"unterminated`, rep).ScanTokens()
	assert.Len(t, rep.errors, 1)
	assert.Contains(t, rep.errors[0], "Unterminated string")
}

func TestLexer_UnexpectedCharacterReportsErrorAndContinues(t *testing.T) {
	rep := &recordingReporter{}
	tokens := New(`1 @ 2`, rep).ScanTokens()
	assert.Len(t, rep.errors, 1)
	assert.Contains(t, rep.errors[0], "Unexpected character")
	// scanning continues past the bad character
	assert.Equal(t, NUMBER, tokens[0].Type)
	assert.Equal(t, NUMBER, tokens[1].Type)
}

func TestLexer_CommentsAreSkipped(t *testing.T) {
	tokens := scanNoErrors(t, "1 // this is a comment\n2")
	assert.Equal(t, NUMBER, tokens[0].Type)
	assert.Equal(t, NUMBER, tokens[1].Type)
	assert.Equal(t, EOF, tokens[2].Type)
}

func TestLexer_LineTrackingAcrossNewlines(t *testing.T) {
	tokens := scanNoErrors(t, "1\n2\n3")
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
	assert.Equal(t, 3, tokens[2].Line)
}
