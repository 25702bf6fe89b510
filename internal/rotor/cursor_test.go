package rotor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenStreamPeekNext(t *testing.T) {
	assert := assert.New(t)
	stream, diags := streamOf("let x")
	assert.Empty(diags)

	assert.Equal(NewToken(LET, "let", 1, 1, 0), stream.Peek())
	assert.Equal(NewToken(LET, "let", 1, 1, 0), stream.Peek())
	assert.Equal(0, stream.Pos())

	assert.Equal(NewToken(LET, "let", 1, 1, 0), stream.Next())
	assert.Equal(NewToken(IDENTIFIER, "x", 1, 5, 4), stream.Next())
	assert.True(stream.IsEOF())
	assert.Nil(stream.Peek())
	assert.Nil(stream.Next())
	assert.Equal(2, stream.Pos())
}

func TestTokenStreamExpect(t *testing.T) {
	assert := assert.New(t)
	stream, _ := streamOf("x 5")

	tok, err := stream.Expect(IDENTIFIER)
	assert.NoError(err)
	assert.Equal(NewToken(IDENTIFIER, "x", 1, 1, 0), tok)

	// a mismatch reports the found token and consumes nothing
	tok, err = stream.Expect(SEMICOLON)
	assert.Nil(tok)
	assert.Equal(
		newUnexpectedError(NewToken(INTEGER, "5", 1, 3, 2), "SEMICOLON"),
		err,
	)
	assert.Equal(1, stream.Pos())

	tok, err = stream.Expect(INTEGER)
	assert.NoError(err)
	assert.Equal("5", tok.Lexeme)

	tok, err = stream.Expect(SEMICOLON)
	assert.Nil(tok)
	diag, ok := err.(*Diagnostic)
	assert.True(ok)
	assert.Equal(UnexpectedEndOfInput, diag.Kind)
	assert.Equal(0, diag.Line)
	assert.Equal(0, diag.Column)
}

func TestTokenStreamExpectEither(t *testing.T) {
	assert := assert.New(t)
	stream, _ := streamOf("const let")

	tok, err := stream.ExpectEither(LET, CONST)
	assert.NoError(err)
	assert.Equal(CONST, tok.Typ)

	tok, err = stream.ExpectEither(I32, BOOL, STR)
	assert.Nil(tok)
	diag, ok := err.(*Diagnostic)
	assert.True(ok)
	assert.Equal(UnexpectedToken, diag.Kind)
	assert.Equal(1, diag.Line)
	assert.Equal(7, diag.Column)
	assert.Equal("Expect I32 or BOOL or STR, found LET \"let\".", diag.Message)

	tok, err = stream.ExpectEither(LET, CONST)
	assert.NoError(err)
	assert.Equal(LET, tok.Typ)
}

func TestTokenStreamEmpty(t *testing.T) {
	assert := assert.New(t)
	stream := NewTokenStream(nil)

	assert.True(stream.IsEOF())
	assert.Nil(stream.Peek())
	assert.Nil(stream.Next())
	_, err := stream.Expect(LET)
	assert.Equal(newUnexpectedError(nil, "LET"), err)
}
