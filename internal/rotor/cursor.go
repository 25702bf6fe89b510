package rotor

import "strings"

// TokenStream is a read cursor over a scanned token sequence with a single
// token of lookahead. Consumed tokens can not be put back.
type TokenStream struct {
	current int
	tokens  []*Token
}

// NewTokenStream creates a cursor positioned at the first token
func NewTokenStream(tokens []*Token) *TokenStream {
	return &TokenStream{0, tokens}
}

// Peek returns the next token without consuming it, or nil once every token
// has been consumed.
func (stream *TokenStream) Peek() *Token {
	if stream.IsEOF() {
		return nil
	}
	return stream.tokens[stream.current]
}

// Next consumes and returns the next token, or nil once every token has been
// consumed.
func (stream *TokenStream) Next() *Token {
	tok := stream.Peek()
	if tok != nil {
		stream.current++
	}
	return tok
}

// Expect consumes the next token if it has the given type. Otherwise nothing is
// consumed and the returned error is a *Diagnostic.
func (stream *TokenStream) Expect(typ TokenType) (*Token, error) {
	return stream.ExpectEither(typ)
}

// ExpectEither consumes the next token if its type is one of the given types.
// Otherwise nothing is consumed and the returned error is a *Diagnostic.
func (stream *TokenStream) ExpectEither(types ...TokenType) (*Token, error) {
	tok := stream.Peek()
	if tok != nil {
		for _, tt := range types {
			if tok.Typ == tt {
				return stream.Next(), nil
			}
		}
	}
	return nil, newUnexpectedError(tok, describeTypes(types))
}

// IsEOF reports whether every token has been consumed.
func (stream *TokenStream) IsEOF() bool {
	return stream.current >= len(stream.tokens)
}

// Pos returns the number of consumed tokens.
func (stream *TokenStream) Pos() int {
	return stream.current
}

func describeTypes(types []TokenType) string {
	names := make([]string, len(types))
	for i, tt := range types {
		names[i] = tt.String()
	}
	return strings.Join(names, " or ")
}
