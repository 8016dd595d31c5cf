/*
File    : golox/interp/interp_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubReporter discards scan diagnostics and records parse error messages,
// so tests can require clean input and then assert on the resulting output
// instead of on error text.
type stubReporter struct {
	parseErrors []string
}

func (s *stubReporter) ReportLexError(line int, message string)                            {}
func (s *stubReporter) ReportParseError(line int, lexeme string, atEOF bool, message string) {
	s.parseErrors = append(s.parseErrors, message)
}

// run scans, parses, and interprets src, returning everything printed via
// `print` and the first error (if any), at which Run stops.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	rep := &stubReporter{}
	tokens := lexer.New(src, rep).ScanTokens()
	stmts := parser.New(tokens, rep).Parse()
	require.Empty(t, rep.parseErrors, "source should parse cleanly")

	var out bytes.Buffer
	in := New(&out)
	err := in.Run(stmts)
	return out.String(), err
}

func TestInterpreter_ArithmeticAndPrint(t *testing.T) {
	out, err := run(t, `print 1 + 2 * 3;`)
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestInterpreter_StringConcatenation(t *testing.T) {
	out, err := run(t, `print "foo" + "bar";`)
	require.NoError(t, err)
	assert.Equal(t, "foobar\n", out)
}

func TestInterpreter_NumberStringificationDropsTrailingZero(t *testing.T) {
	out, err := run(t, `print 10 / 2;`)
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestInterpreter_TruthinessOnlyNilAndFalseAreFalsey(t *testing.T) {
	out, err := run(t, `
		if (0) print "zero is truthy"; else print "zero is falsey";
		if ("") print "empty string is truthy"; else print "empty string is falsey";
		if (nil) print "nil is truthy"; else print "nil is falsey";
		if (false) print "false is truthy"; else print "false is falsey";
	`)
	require.NoError(t, err)
	assert.Equal(t, "zero is truthy\nempty string is truthy\nnil is falsey\nfalse is falsey\n", out)
}

func TestInterpreter_LogicalOperatorsShortCircuitAndReturnOperandValue(t *testing.T) {
	out, err := run(t, `
		print false and 1;
		print true or 1;
		print 1 and 2;
		print nil or "fallback";
	`)
	require.NoError(t, err)
	assert.Equal(t, "false\ntrue\n2\nfallback\n", out)
}

func TestInterpreter_VariableScopingShadowsInsideBlock(t *testing.T) {
	out, err := run(t, `
		var a = "outer";
		{
			var a = "inner";
			print a;
		}
		print a;
	`)
	require.NoError(t, err)
	assert.Equal(t, "inner\nouter\n", out)
}

func TestInterpreter_AssignmentMutatesEnclosingScopeNotShadow(t *testing.T) {
	out, err := run(t, `
		var a = "outer";
		{
			a = "mutated";
		}
		print a;
	`)
	require.NoError(t, err)
	assert.Equal(t, "mutated\n", out)
}

func TestInterpreter_BlockDisciplineRestoresEnvironmentOnRuntimeError(t *testing.T) {
	rep := &stubReporter{}
	src := `
		var a = "outer";
		{
			var a = "inner";
			print 1 + "oops";
		}
		print a;
	`
	tokens := lexer.New(src, rep).ScanTokens()
	stmts := parser.New(tokens, rep).Parse()
	require.Empty(t, rep.parseErrors)

	var out bytes.Buffer
	in := New(&out)
	err := in.Run(stmts)
	require.Error(t, err, "adding a number and a string should be a runtime error")
	// execution stops at the first error, per spec; "outer" is never printed
	// because Run halts before reaching the trailing print statement.
	assert.Equal(t, "", out.String())
	// the block's environment was popped on the error path
	assert.Same(t, in.globals, in.env)
}

func TestInterpreter_WhileLoop(t *testing.T) {
	out, err := run(t, `
		var i = 0;
		while (i < 3) {
			print i;
			i = i + 1;
		}
	`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterpreter_ForLoopDesugaring(t *testing.T) {
	out, err := run(t, `
		for (var i = 0; i < 3; i = i + 1) {
			print i;
		}
	`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterpreter_FunctionCallAndReturn(t *testing.T) {
	out, err := run(t, `
		fun add(a, b) {
			return a + b;
		}
		print add(2, 3);
	`)
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestInterpreter_FunctionWithNoReturnYieldsNil(t *testing.T) {
	out, err := run(t, `
		fun sideEffectOnly() {
			print "called";
		}
		print sideEffectOnly();
	`)
	require.NoError(t, err)
	assert.Equal(t, "called\nnil\n", out)
}

func TestInterpreter_ReturnUnwindsNestedBlocksAndLoops(t *testing.T) {
	out, err := run(t, `
		fun firstEven(limit) {
			for (var i = 0; i < limit; i = i + 1) {
				if (i == 0) {
					i = i + 2;
				}
				{
					if (i / 2 * 2 == i) {
						return i;
					}
				}
			}
			return -1;
		}
		print firstEven(10);
	`)
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestInterpreter_Recursion(t *testing.T) {
	out, err := run(t, `
		fun fact(n) {
			if (n <= 1) return 1;
			return n * fact(n - 1);
		}
		print fact(5);
	`)
	require.NoError(t, err)
	assert.Equal(t, "120\n", out)
}

func TestInterpreter_ArityMismatchIsRuntimeError(t *testing.T) {
	rep := &stubReporter{}
	src := `
		fun needsTwo(a, b) { return a + b; }
		needsTwo(1);
	`
	tokens := lexer.New(src, rep).ScanTokens()
	stmts := parser.New(tokens, rep).Parse()
	require.Empty(t, rep.parseErrors)

	var out bytes.Buffer
	in := New(&out)
	err := in.Run(stmts)
	require.Error(t, err)
	rerr, ok := err.(*RuntimeError)
	require.True(t, ok)
	assert.Contains(t, rerr.Message, "Expected 2 arguments but got 1")
}

func TestInterpreter_CallingNonCallableIsRuntimeError(t *testing.T) {
	rep := &stubReporter{}
	src := `
		var notAFunction = 1;
		notAFunction();
	`
	tokens := lexer.New(src, rep).ScanTokens()
	stmts := parser.New(tokens, rep).Parse()
	require.Empty(t, rep.parseErrors)

	var out bytes.Buffer
	in := New(&out)
	err := in.Run(stmts)
	require.Error(t, err)
	rerr, ok := err.(*RuntimeError)
	require.True(t, ok)
	assert.Contains(t, rerr.Message, "Can only call functions and classes.")
}

func TestInterpreter_FunctionsDoNotCloseOverDefiningScope(t *testing.T) {
	// Binding decision SPEC_FULL.md §9a: a function body always runs
	// against globals, never a captured defining scope. showX is declared
	// and called inside a block whose local x shadows the global one; the
	// body still sees only globals and its own parameters.
	rep := &stubReporter{}
	src := `
		var x = "global";
		{
			var x = "local-shadow";
			fun showX() {
				return x;
			}
			print showX();
		}
	`
	tokens := lexer.New(src, rep).ScanTokens()
	stmts := parser.New(tokens, rep).Parse()
	require.Empty(t, rep.parseErrors)

	var out bytes.Buffer
	in := New(&out)
	err := in.Run(stmts)
	require.NoError(t, err)
	assert.Equal(t, "global\n", out.String())
}

func TestInterpreter_ClockBuiltinIsCallableWithZeroArity(t *testing.T) {
	out, err := run(t, `
		var t = clock();
		print t >= 0;
	`)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestInterpreter_UndefinedVariableIsRuntimeError(t *testing.T) {
	rep := &stubReporter{}
	tokens := lexer.New(`print undefined;`, rep).ScanTokens()
	stmts := parser.New(tokens, rep).Parse()
	require.Empty(t, rep.parseErrors)

	var out bytes.Buffer
	in := New(&out)
	err := in.Run(stmts)
	require.Error(t, err)
	rerr, ok := err.(*RuntimeError)
	require.True(t, ok)
	assert.Contains(t, rerr.Message, "Undefined variable")
}

func TestInterpreter_Determinism(t *testing.T) {
	src := `
		var total = 0;
		for (var i = 0; i < 5; i = i + 1) {
			total = total + i;
		}
		print total;
	`
	out1, err1 := run(t, src)
	require.NoError(t, err1)
	out2, err2 := run(t, src)
	require.NoError(t, err2)
	assert.Equal(t, out1, out2)
	assert.Equal(t, "10\n", out1)
}

func TestInterpreter_ReplPrintsExpressionStatementResult(t *testing.T) {
	rep := &stubReporter{}
	tokens := lexer.New(`1 + 2;`, rep).ScanTokens()
	stmts := parser.New(tokens, rep).Parse()
	require.Empty(t, rep.parseErrors)

	var out bytes.Buffer
	in := New(&out)
	err := in.RunRepl(stmts)
	require.NoError(t, err)
	assert.Equal(t, "3\n", out.String())
}

func TestInterpreter_FileModeDiscardsExpressionStatementResult(t *testing.T) {
	out, err := run(t, `1 + 2;`)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}
