package interp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morphqdd/yun/internal/errs"
	"github.com/morphqdd/yun/internal/interp"
	"github.com/morphqdd/yun/internal/parser"
	"github.com/morphqdd/yun/internal/resolver"
	"github.com/morphqdd/yun/internal/scanner"
)

// run scans, parses, resolves and interprets src against a fresh
// Interpreter, returning everything it printed and the first error hit, if
// any.
func run(t *testing.T, src string) (string, error) {
	t.Helper()

	toks, err := scanner.New(src).Scan()
	require.NoError(t, err)

	prog, err := parser.New(toks).Parse()
	require.NoError(t, err)

	depths, err := resolver.Resolve(prog)
	require.NoError(t, err)

	var out bytes.Buffer
	ip := interp.New(depths, &out)
	return out.String(), ip.Interpret(prog)
}

func TestClosureCapturesLexicalEnvironment(t *testing.T) {
	out, err := run(t, `
		fun makeCounter() {
			let count = 0;
			fun increment() {
				count = count + 1;
				print count;
			}
			return increment;
		}
		let counter = makeCounter();
		counter();
		counter();
		counter();
	`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestFibonacciRecursion(t *testing.T) {
	out, err := run(t, `
		fun fib(n) {
			if (n < 2) return n;
			return fib(n - 1) + fib(n - 2);
		}
		print fib(10);
	`)
	require.NoError(t, err)
	assert.Equal(t, "55\n", out)
}

func TestInheritanceDispatchesThroughSuper(t *testing.T) {
	out, err := run(t, `
		class Greeter {
			greet() {
				print "hello from Greeter";
			}
		}
		class LoudGreeter < Greeter {
			greet() {
				super.greet();
				print "AND LOUDER";
			}
		}
		let g = LoudGreeter();
		g.greet();
	`)
	require.NoError(t, err)
	assert.Equal(t, "hello from Greeter\nAND LOUDER\n", out)
}

func TestInitializerShortCircuitsToSelf(t *testing.T) {
	out, err := run(t, `
		class Box {
			init(value) {
				self.value = value;
				return;
			}
		}
		let b = Box(42);
		print b.value;
	`)
	require.NoError(t, err)
	assert.Equal(t, "42\n", out)
}

func TestArithmeticTypeMismatchUsesExactMessageFormat(t *testing.T) {
	_, err := run(t, `print 1 + "two";`)
	require.Error(t, err)
	yunErr, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.CodeCannotAddTypes, yunErr.Code)
	assert.Contains(t, yunErr.Message, "Cannot add types 'number' and 'string'")
}

func TestForLoopDesugarsToWhile(t *testing.T) {
	out, err := run(t, `
		for (let i = 0; i < 3; i = i + 1) {
			print i;
		}
	`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestListConcatenationAppendsElement(t *testing.T) {
	out, err := run(t, `
		let xs = [1, 2] + 3;
		print xs;
	`)
	require.NoError(t, err)
	assert.Equal(t, "[1, 2, 3]\n", out)
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, `print missing;`)
	require.Error(t, err)
	yunErr, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.CodeUndefinedVariable, yunErr.Code)
}

func TestEachMethodAccessRebindsAFreshCallable(t *testing.T) {
	out, err := run(t, `
		class C {
			m() { return 1; }
		}
		let a = C();
		let f = a.m;
		let g = a.m;
		print f == g;
	`)
	require.NoError(t, err)
	assert.Equal(t, "false\n", strings.ToLower(out))
}

func TestGetBuiltinIndexesListWithBoundsCheck(t *testing.T) {
	out, err := run(t, `
		let xs = [10, 20, 30];
		print get(xs, 1);
		print get(xs, 99);
	`)
	require.NoError(t, err)
	assert.Equal(t, "20\nnil\n", out)
}

func TestPanicBuiltinRaisesUserPanicAtCallSite(t *testing.T) {
	_, err := run(t, `panic("boom");`)
	require.Error(t, err)
	yunErr, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.CodeUserPanic, yunErr.Code)
	assert.Equal(t, errs.KindPanic, yunErr.Kind)
	assert.Equal(t, "boom", yunErr.Message)
}
