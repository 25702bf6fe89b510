package rotor

type mockReporter struct {
	diagnostics []*Diagnostic
}

func newMockReporter() *mockReporter {
	return &mockReporter{make([]*Diagnostic, 0)}
}

func (reporter *mockReporter) Report(diag *Diagnostic) {
	reporter.diagnostics = append(reporter.diagnostics, diag)
}

func (reporter *mockReporter) HadError() bool {
	return len(reporter.diagnostics) != 0
}

func tokenTypes(toks []*Token) []TokenType {
	types := make([]TokenType, len(toks))
	for i, tok := range toks {
		types[i] = tok.Typ
	}
	return types
}

// streamOf scans the source and wraps the tokens in a cursor.
func streamOf(src string) (*TokenStream, []*Diagnostic) {
	res := Scan(src)
	return NewTokenStream(res.Tokens), res.Diagnostics
}
