package rotor

type Expr interface {
	Accept(visitor ExprVisitor) (interface{}, error)
}
type ExprVisitor interface {
	VisitBinaryExpr(expr *BinaryExpr) (interface{}, error)
	VisitUnaryExpr(expr *UnaryExpr) (interface{}, error)
	VisitLiteralExpr(expr *LiteralExpr) (interface{}, error)
	VisitVariableExpr(expr *VariableExpr) (interface{}, error)
}

// BinaryExpr and UnaryExpr are reserved for the operator layer; no grammar
// rule builds them yet.
type BinaryExpr struct {
	Op    *Token
	Left  Expr
	Right Expr
}

func NewBinaryExpr(Op *Token, Left Expr, Right Expr) *BinaryExpr {
	return &BinaryExpr{Op, Left, Right}
}
func (expr *BinaryExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitBinaryExpr(expr)
}

type UnaryExpr struct {
	Op         *Token
	Expression Expr
}

func NewUnaryExpr(Op *Token, Expression Expr) *UnaryExpr {
	return &UnaryExpr{Op, Expression}
}
func (expr *UnaryExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitUnaryExpr(expr)
}

// LiteralExpr keeps the literal as written in the source.
type LiteralExpr struct {
	Kind  TokenType
	Value string
}

func NewLiteralExpr(Kind TokenType, Value string) *LiteralExpr {
	return &LiteralExpr{Kind, Value}
}
func (expr *LiteralExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitLiteralExpr(expr)
}

type VariableExpr struct {
	Name string
	Type *Token
}

func NewVariableExpr(Name string, Type *Token) *VariableExpr {
	return &VariableExpr{Name, Type}
}
func (expr *VariableExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitVariableExpr(expr)
}
