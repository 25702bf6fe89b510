package rotor

type Stmt interface {
	Accept(visitor StmtVisitor) (interface{}, error)
}
type StmtVisitor interface {
	VisitBlockStmt(stmt *BlockStmt) (interface{}, error)
	VisitLetStmt(stmt *LetStmt) (interface{}, error)
	VisitUseStmt(stmt *UseStmt) (interface{}, error)
	VisitIfStmt(stmt *IfStmt) (interface{}, error)
	VisitForStmt(stmt *ForStmt) (interface{}, error)
	VisitWhileStmt(stmt *WhileStmt) (interface{}, error)
}

// BlockStmt is the body of a compound statement. Bodies are not parsed yet, so
// every block produced by the parser is empty.
type BlockStmt struct {
	Stmts []Stmt
}

func NewBlockStmt(Stmts []Stmt) *BlockStmt {
	return &BlockStmt{Stmts}
}
func (stmt *BlockStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitBlockStmt(stmt)
}

// LetStmt binds a name to a value. Type is nil when there is no annotation.
type LetStmt struct {
	Const bool
	Name  string
	Type  *Token
	Value Expr
}

func NewLetStmt(Const bool, Name string, Type *Token, Value Expr) *LetStmt {
	return &LetStmt{Const, Name, Type, Value}
}
func (stmt *LetStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitLetStmt(stmt)
}

type UseStmt struct {
	Module  string
	Imports ImportSpec
}

func NewUseStmt(Module string, Imports ImportSpec) *UseStmt {
	return &UseStmt{Module, Imports}
}
func (stmt *UseStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitUseStmt(stmt)
}

// ImportSpec is either an ImportList or ImportWildcard.
type ImportSpec interface {
	importSpec()
}

// ImportList names every imported symbol.
type ImportList []string

// ImportWildcard imports every symbol of the module.
type ImportWildcard struct{}

func (ImportList) importSpec()     {}
func (ImportWildcard) importSpec() {}

// IfStmt is a conditional. Else is nil when there is no else branch.
type IfStmt struct {
	Cond Expr
	Then *BlockStmt
	Else *BlockStmt
}

func NewIfStmt(Cond Expr, Then *BlockStmt, Else *BlockStmt) *IfStmt {
	return &IfStmt{Cond, Then, Else}
}
func (stmt *IfStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitIfStmt(stmt)
}

type ForStmt struct {
	Var      string
	Iterable string
	Body     *BlockStmt
}

func NewForStmt(Var string, Iterable string, Body *BlockStmt) *ForStmt {
	return &ForStmt{Var, Iterable, Body}
}
func (stmt *ForStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitForStmt(stmt)
}

type WhileStmt struct {
	Cond Expr
	Body *BlockStmt
}

func NewWhileStmt(Cond Expr, Body *BlockStmt) *WhileStmt {
	return &WhileStmt{Cond, Body}
}
func (stmt *WhileStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitWhileStmt(stmt)
}
