package rotor

import "errors"

// Parser composes the top-level statements of a Rotor program from the
// sequence of tokens produced by the scanner. See the package documentation
// for the grammar.
//
// The statement rules are plain functions over a *TokenStream. Each of them
// returns the statement it recognised, or the diagnostic of the first token
// that did not fit. Parser drives the rules over the whole token sequence,
// reporting diagnostics and skipping to the next statement after a failure.
type Parser struct {
	stream   *TokenStream
	reporter Reporter
}

// NewParser creates a new parser for the Rotor language
func NewParser(tokens []*Token, reporter Reporter) *Parser {
	return &Parser{NewTokenStream(tokens), reporter}
}

// Parse returns every statement that could be parsed. Newlines and stray ';'
// between statements are skipped.
func (parser *Parser) Parse() []Stmt {
	stmts := make([]Stmt, 0)
	for !parser.stream.IsEOF() {
		switch parser.stream.Peek().Typ {
		case NEWLINE, SEMICOLON:
			parser.stream.Next()
			continue
		}

		start := parser.stream.Pos()
		stmt, err := ParseStmt(parser.stream)
		if err != nil {
			parser.report(err)
			parser.sync(start)
			continue
		}
		stmts = append(stmts, stmt)
	}
	return stmts
}

func (parser *Parser) report(err error) {
	var diag *Diagnostic
	if !errors.As(err, &diag) {
		diag = NewDiagnostic(UnexpectedToken, err.Error(), 0, 0)
	}
	parser.reporter.Report(diag)
}

// sync discards tokens until the end of the failed statement. At least one
// token is consumed since the statement started at `start`.
func (parser *Parser) sync(start int) {
	if parser.stream.Pos() == start {
		parser.stream.Next()
	}
	for !parser.stream.IsEOF() {
		switch parser.stream.Peek().Typ {
		case SEMICOLON, NEWLINE:
			parser.stream.Next()
			return
		case LET, CONST, USE, IF, FOR, WHILE:
			return
		}
		parser.stream.Next()
	}
}

// ParseStmt routes on the type of the next token.
//
//	stmt --> letStmt | useStmt | ifStmt | forStmt | whileStmt ;
func ParseStmt(stream *TokenStream) (Stmt, error) {
	tok := stream.Peek()
	if tok == nil {
		return nil, newUnexpectedError(nil, "statement")
	}
	switch tok.Typ {
	case LET, CONST:
		return ParseLetStmt(stream)
	case USE:
		return ParseUseStmt(stream)
	case IF:
		return ParseIfStmt(stream)
	case FOR:
		return ParseForStmt(stream)
	case WHILE:
		return ParseWhileStmt(stream)
	}
	return nil, newInvalidTokenError(tok, "at start of statement")
}

// letStmt --> ( "let" | "const" ) IDENT ( ":" type )? "=" INTEGER ";" ;
func ParseLetStmt(stream *TokenStream) (Stmt, error) {
	keyword, err := stream.ExpectEither(LET, CONST)
	if err != nil {
		return nil, err
	}
	name, err := stream.Expect(IDENTIFIER)
	if err != nil {
		return nil, err
	}

	var typ *Token
	if tok := stream.Peek(); tok != nil && tok.Typ == COLON {
		stream.Next()
		if typ, err = parseType(stream); err != nil {
			return nil, err
		}
	}

	if _, err := stream.Expect(EQUAL); err != nil {
		return nil, err
	}
	// NOTE: only integer literals until expressions are parsed.
	value, err := stream.Expect(INTEGER)
	if err != nil {
		return nil, err
	}
	if _, err := stream.Expect(SEMICOLON); err != nil {
		return nil, err
	}

	return NewLetStmt(
		keyword.Typ == CONST,
		name.Lexeme,
		typ,
		NewLiteralExpr(value.Typ, value.Lexeme),
	), nil
}

// type --> "i32" | "f32" | "bool" | "str" ;
//
// "f32" scans as a FLOAT token, other FLOAT tokens are numbers.
func parseType(stream *TokenStream) (*Token, error) {
	tok, err := stream.ExpectEither(I32, FLOAT, BOOL, STR)
	if err != nil {
		return nil, err
	}
	if tok.Typ == FLOAT && tok.Lexeme != "f32" {
		return nil, newUnexpectedError(tok, "type annotation")
	}
	return tok, nil
}

// useStmt --> "use" IDENT "[" ( "*" | IDENT | "," )* "]" ;
//
// Whichever of "*" and a name comes last decides the import: "*" discards the
// names collected so far, a name after "*" starts a new list.
func ParseUseStmt(stream *TokenStream) (Stmt, error) {
	if _, err := stream.Expect(USE); err != nil {
		return nil, err
	}
	module, err := stream.Expect(IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := stream.Expect(LEFT_SQUARE); err != nil {
		return nil, err
	}

	var imports ImportSpec = ImportList{}
	var names []string
	for {
		tok := stream.Next()
		if tok == nil {
			return nil, newUnexpectedError(nil, RIGHT_SQUARE.String())
		}
		switch tok.Typ {
		case RIGHT_SQUARE:
			return NewUseStmt(module.Lexeme, imports), nil
		case MULTIPLY:
			names = nil
			imports = ImportWildcard{}
		case IDENTIFIER:
			names = append(names, tok.Lexeme)
			imports = ImportList(names)
		case COMMA:
		default:
			return nil, newInvalidTokenError(tok, "in import list")
		}
	}
}

// ifStmt --> "if" BOOLEAN block ( "else" block )? ;
func ParseIfStmt(stream *TokenStream) (Stmt, error) {
	if _, err := stream.Expect(IF); err != nil {
		return nil, err
	}
	cond, err := parseCondition(stream)
	if err != nil {
		return nil, err
	}
	then, err := parseBlock(stream)
	if err != nil {
		return nil, err
	}

	var otherwise *BlockStmt
	if tok := stream.Peek(); tok != nil && tok.Typ == ELSE {
		stream.Next()
		if otherwise, err = parseBlock(stream); err != nil {
			return nil, err
		}
	}
	return NewIfStmt(cond, then, otherwise), nil
}

// forStmt --> "for" IDENT "in" IDENT block ;
func ParseForStmt(stream *TokenStream) (Stmt, error) {
	if _, err := stream.Expect(FOR); err != nil {
		return nil, err
	}
	variable, err := stream.Expect(IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := stream.Expect(IN); err != nil {
		return nil, err
	}
	iterable, err := stream.Expect(IDENTIFIER)
	if err != nil {
		return nil, err
	}
	body, err := parseBlock(stream)
	if err != nil {
		return nil, err
	}
	return NewForStmt(variable.Lexeme, iterable.Lexeme, body), nil
}

// whileStmt --> "while" BOOLEAN block ;
func ParseWhileStmt(stream *TokenStream) (Stmt, error) {
	if _, err := stream.Expect(WHILE); err != nil {
		return nil, err
	}
	cond, err := parseCondition(stream)
	if err != nil {
		return nil, err
	}
	body, err := parseBlock(stream)
	if err != nil {
		return nil, err
	}
	return NewWhileStmt(cond, body), nil
}

// parseCondition accepts a boolean literal until expressions are parsed.
func parseCondition(stream *TokenStream) (Expr, error) {
	tok, err := stream.Expect(BOOLEAN)
	if err != nil {
		return nil, err
	}
	return NewLiteralExpr(tok.Typ, tok.Lexeme), nil
}

// block --> "{" "}" ;
func parseBlock(stream *TokenStream) (*BlockStmt, error) {
	if _, err := stream.Expect(LEFT_CURLY); err != nil {
		return nil, err
	}
	if _, err := stream.Expect(RIGHT_CURLY); err != nil {
		return nil, err
	}
	return NewBlockStmt(make([]Stmt, 0)), nil
}
