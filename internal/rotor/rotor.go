package rotor

import "unicode"

// Result holds everything the front end produced for one source text.
// Diagnostics holds the scan diagnostics followed by the parse diagnostics.
type Result struct {
	Tokens      []*Token
	Stmts       []Stmt
	Diagnostics []*Diagnostic
}

// Clean reports whether no diagnostic was produced.
func (res *Result) Clean() bool {
	return len(res.Diagnostics) == 0
}

// Analyze scans the whole source, then parses the resulting tokens. Parsing
// runs even when scanning reported diagnostics.
func Analyze(source string) *Result {
	scanned := Scan(source)

	sink := NewSink()
	ReportAll(sink, scanned.Diagnostics)
	stmts := NewParser(scanned.Tokens, sink).Parse()

	return &Result{scanned.Tokens, stmts, sink.Diagnostics()}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isBeginIdent(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}
