package rotor

import (
	"fmt"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSinkInit(t *testing.T) {
	assert := assert.New(t)

	s := NewSink()

	assert.False(s.HadError())
	assert.True(s.Clean())
	assert.Empty(s.Diagnostics())
}

func TestSinkKeepsOrder(t *testing.T) {
	assert := assert.New(t)
	diag1 := newScanError(2, 1, '@')
	diag2 := newScanError(1, 1, '#')
	diag3 := newUnexpectedError(nil, "SEMICOLON")

	s := NewSink()
	s.Report(diag1)
	s.Report(diag2)
	ReportAll(s, []*Diagnostic{diag3})

	assert.True(s.HadError())
	assert.False(s.Clean())
	assert.Equal([]*Diagnostic{diag1, diag2, diag3}, s.Diagnostics())
}

func TestWriterReporterInit(t *testing.T) {
	assert := assert.New(t)

	r := NewWriterReporter(ioutil.Discard)

	assert.False(r.HadError())
}

func TestWriterReporterSendDiagnostics(t *testing.T) {
	assert := assert.New(t)
	diag1 := newScanError(1, 3, '@')
	diag2 := newUnexpectedError(NewToken(INTEGER, "5", 1, 7, 6), "EQUAL")

	var out strings.Builder
	r := NewWriterReporter(&out)
	r.Report(diag1)
	r.Report(diag2)

	assert.Equal(fmt.Sprintf("%v\n%v\n", diag1, diag2), out.String())
	assert.True(r.HadError())
}

func TestDiagnosticError(t *testing.T) {
	testCases := []struct {
		diag *Diagnostic
		msg  string
	}{
		{newScanError(1, 3, '@'),
			"[line 1:3] InvalidToken: Invalid character '@'."},
		{newUnexpectedError(NewToken(INTEGER, "5", 1, 7, 6), "EQUAL"),
			"[line 1:7] UnexpectedToken: Expect EQUAL, found INTEGER \"5\"."},
		{newUnexpectedError(nil, "SEMICOLON"),
			"[end] UnexpectedEndOfInput: Expect SEMICOLON, found end of input."},
		{newInvalidTokenError(NewToken(NEWLINE, "\n", 2, 4, 9), "at start of statement"),
			"[line 2:4] InvalidToken: Unexpected NEWLINE \"\\n\" at start of statement."},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.EqualError(tc.diag, tc.msg)
	}
}

func TestDiagnosticKindString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("UnknownIdentifier", UnknownIdentifier.String())
	assert.Equal("InvalidEscapeSequence", InvalidEscapeSequence.String())
	assert.Equal("UnterminatedString", UnterminatedString.String())
	assert.Equal("DiagnosticKind(42)", DiagnosticKind(42).String())
}
