package internal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func runProgram(t *testing.T, src string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := Interpret(&buf, nil, []byte(src))
	return buf.String(), err
}

func TestInterpretArithmeticPrecedence(t *testing.T) {
	out, err := runProgram(t, "print 1 + 2 * 3\n")
	require.NoError(t, err)
	require.Equal(t, "7\n", out)
}

func TestInterpretStringConcatenation(t *testing.T) {
	out, err := runProgram(t, "print \"ab\" + \"cd\"\n")
	require.NoError(t, err)
	require.Equal(t, "abcd\n", out)
}

func TestInterpretRawNewlineInStringPrintsTwoBytes(t *testing.T) {
	out, err := runProgram(t, "print \"\\n\"\n")
	require.NoError(t, err)
	require.Equal(t, "\n\n", out)
}

func TestInterpretClassStrDunder(t *testing.T) {
	src := "class A:\n" +
		"  def __str__(self):\n" +
		"    return \"a\"\n" +
		"print A()\n"
	out, err := runProgram(t, src)
	require.NoError(t, err)
	require.Equal(t, "a\n", out)
}

func TestInterpretMethodShadowingAcrossInheritance(t *testing.T) {
	src := "class A:\n" +
		"  def f(self):\n" +
		"    return 1\n" +
		"class B(A):\n" +
		"  def f(self):\n" +
		"    return 2\n" +
		"x = B()\n" +
		"print x.f()\n"
	out, err := runProgram(t, src)
	require.NoError(t, err)
	require.Equal(t, "2\n", out)
}

func TestInterpretInheritedMethodFallsThroughToParent(t *testing.T) {
	src := "class A:\n" +
		"  def f(self):\n" +
		"    return 1\n" +
		"class B(A):\n" +
		"  def g(self):\n" +
		"    return 2\n" +
		"x = B()\n" +
		"print x.f()\n"
	out, err := runProgram(t, src)
	require.NoError(t, err)
	require.Equal(t, "1\n", out)
}

func TestInterpretFieldAssignmentAndAccess(t *testing.T) {
	src := "class Point:\n" +
		"  def setX(self, v):\n" +
		"    self.x = v\n" +
		"p = Point()\n" +
		"p.setX(5)\n" +
		"print p.x\n"
	out, err := runProgram(t, src)
	require.NoError(t, err)
	require.Equal(t, "5\n", out)
}

func TestInterpretIfElse(t *testing.T) {
	src := "x = 2\n" +
		"if x == 2:\n" +
		"  print \"two\"\n" +
		"else:\n" +
		"  print \"other\"\n"
	out, err := runProgram(t, src)
	require.NoError(t, err)
	require.Equal(t, "two\n", out)
}

func TestInterpretAndOrDoNotShortCircuit(t *testing.T) {
	src := "class Boom:\n" +
		"  def trip(self):\n" +
		"    print \"tripped\"\n" +
		"    return True\n" +
		"b = Boom()\n" +
		"print False and b.trip()\n"
	out, err := runProgram(t, src)
	require.NoError(t, err)
	require.Equal(t, "tripped\nFalse\n", out)
}

func TestInterpretNoneEqualsNoneButCannotBeOrdered(t *testing.T) {
	out, err := runProgram(t, "print None == None\n")
	require.NoError(t, err)
	require.Equal(t, "True\n", out)

	_, err = runProgram(t, "print None < None\n")
	require.Error(t, err)
	require.IsType(t, &RuntimeError{}, err)
}

func TestInterpretUndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := runProgram(t, "print x\n")
	require.Error(t, err)
	require.IsType(t, &RuntimeError{}, err)
}

func TestInterpretDivisionByZeroIsRuntimeError(t *testing.T) {
	_, err := runProgram(t, "print 1 / 0\n")
	require.Error(t, err)
	require.IsType(t, &RuntimeError{}, err)
}

func TestInterpretStringifyHelper(t *testing.T) {
	out, err := runProgram(t, "print str(1 + 2)\n")
	require.NoError(t, err)
	require.Equal(t, "3\n", out)
}

func TestInterpretConstructorCallsInit(t *testing.T) {
	src := "class Counter:\n" +
		"  def __init__(self, start):\n" +
		"    self.n = start\n" +
		"c = Counter(41)\n" +
		"print c.n\n"
	out, err := runProgram(t, src)
	require.NoError(t, err)
	require.Equal(t, "41\n", out)
}
