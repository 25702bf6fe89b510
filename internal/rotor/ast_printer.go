package rotor

import (
	"fmt"
	"strings"
)

// AstPrinter renders statements and expressions as s-expressions.
type AstPrinter struct{}

func (printer *AstPrinter) Print(stmt Stmt) string {
	s, _ := stmt.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *AstPrinter) PrintExpr(expr Expr) string {
	s, _ := expr.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *AstPrinter) VisitBlockStmt(stmt *BlockStmt) (interface{}, error) {
	parts := make([]string, len(stmt.Stmts))
	for i, inner := range stmt.Stmts {
		parts[i] = printer.Print(inner)
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, " ")), nil
}

func (printer *AstPrinter) VisitLetStmt(stmt *LetStmt) (interface{}, error) {
	keyword := "let"
	if stmt.Const {
		keyword = "const"
	}
	if stmt.Type != nil {
		return fmt.Sprintf(
			"(%s %s:%s %s)",
			keyword, stmt.Name, stmt.Type.Lexeme, printer.PrintExpr(stmt.Value),
		), nil
	}
	return fmt.Sprintf("(%s %s %s)", keyword, stmt.Name, printer.PrintExpr(stmt.Value)), nil
}

func (printer *AstPrinter) VisitUseStmt(stmt *UseStmt) (interface{}, error) {
	switch imports := stmt.Imports.(type) {
	case ImportWildcard:
		return fmt.Sprintf("(use %s *)", stmt.Module), nil
	case ImportList:
		return fmt.Sprintf("(use %s [%s])", stmt.Module, strings.Join(imports, " ")), nil
	}
	return fmt.Sprintf("(use %s)", stmt.Module), nil
}

func (printer *AstPrinter) VisitIfStmt(stmt *IfStmt) (interface{}, error) {
	cond := printer.PrintExpr(stmt.Cond)
	then := printer.Print(stmt.Then)
	if stmt.Else != nil {
		return fmt.Sprintf("(if %s %s else %s)", cond, then, printer.Print(stmt.Else)), nil
	}
	return fmt.Sprintf("(if %s %s)", cond, then), nil
}

func (printer *AstPrinter) VisitForStmt(stmt *ForStmt) (interface{}, error) {
	return fmt.Sprintf("(for %s in %s %s)", stmt.Var, stmt.Iterable, printer.Print(stmt.Body)), nil
}

func (printer *AstPrinter) VisitWhileStmt(stmt *WhileStmt) (interface{}, error) {
	return fmt.Sprintf("(while %s %s)", printer.PrintExpr(stmt.Cond), printer.Print(stmt.Body)), nil
}

func (printer *AstPrinter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	return fmt.Sprintf(
		"(%s %s %s)",
		expr.Op.Lexeme,
		printer.PrintExpr(expr.Left),
		printer.PrintExpr(expr.Right),
	), nil
}

func (printer *AstPrinter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	return fmt.Sprintf("(%s %s)", expr.Op.Lexeme, printer.PrintExpr(expr.Expression)), nil
}

func (printer *AstPrinter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	if expr.Kind == STRING {
		return fmt.Sprintf("%q", expr.Value), nil
	}
	return expr.Value, nil
}

func (printer *AstPrinter) VisitVariableExpr(expr *VariableExpr) (interface{}, error) {
	if expr.Type != nil {
		return fmt.Sprintf("%s:%s", expr.Name, expr.Type.Lexeme), nil
	}
	return expr.Name, nil
}
