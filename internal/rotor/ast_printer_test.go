package rotor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAstPrinterStmts(t *testing.T) {
	testCases := []struct {
		src string
		out string
	}{
		{"let x = 5;", "(let x 5)"},
		{"const y: i32 = 7;", "(const y:i32 7)"},
		{"use mod [a, b, *]", "(use mod *)"},
		{"use mod [*, a]", "(use mod [a])"},
		{"use mod [a, b]", "(use mod [a b])"},
		{"if true { } else { }", "(if true {} else {})"},
		{"if false { }", "(if false {})"},
		{"for i in items { }", "(for i in items {})"},
		{"while true { }", "(while true {})"},
	}

	assert := assert.New(t)
	printer := &AstPrinter{}
	for _, tc := range testCases {
		res := Analyze(tc.src)
		assert.True(res.Clean(), tc.src)
		assert.Len(res.Stmts, 1, tc.src)
		assert.Equal(tc.out, printer.Print(res.Stmts[0]), tc.src)
	}
}

func TestAstPrinterExprs(t *testing.T) {
	testCases := []struct {
		expr Expr
		out  string
	}{
		{NewLiteralExpr(INTEGER, "42"), "42"},
		{NewLiteralExpr(STRING, "hi"), "\"hi\""},
		{NewVariableExpr("x", nil), "x"},
		{NewVariableExpr("x", NewToken(STR, "str", 1, 1, 0)), "x:str"},
		{NewUnaryExpr(
			NewToken(MINUS, "-", 1, 1, 0),
			NewLiteralExpr(INTEGER, "1")),
			"(- 1)"},
		{NewBinaryExpr(
			NewToken(PLUS, "+", 1, 1, 0),
			NewVariableExpr("a", nil),
			NewLiteralExpr(FLOAT, "2.5")),
			"(+ a 2.5)"},
	}

	assert := assert.New(t)
	printer := &AstPrinter{}
	for _, tc := range testCases {
		assert.Equal(tc.out, printer.PrintExpr(tc.expr))
	}
}

func TestAstPrinterNestedBlock(t *testing.T) {
	block := NewBlockStmt([]Stmt{
		NewLetStmt(false, "a", nil, NewLiteralExpr(INTEGER, "1")),
		NewWhileStmt(NewLiteralExpr(BOOLEAN, "false"), emptyBlock()),
	})

	printer := &AstPrinter{}
	assert.Equal(t, "{(let a 1) (while false {})}", printer.Print(block))
}
