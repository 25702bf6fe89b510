package rotor

import "fmt"

// DiagnosticKind classifies a diagnostic.
type DiagnosticKind uint8

const (
	// InvalidToken is reported by the scanner for a character that cannot
	// start any token, and by the parser for a token that cannot start or
	// continue a statement.
	InvalidToken DiagnosticKind = iota
	// UnexpectedToken is reported when a rule expected a different token.
	UnexpectedToken
	// UnexpectedEndOfInput is reported when a rule ran out of tokens.
	UnexpectedEndOfInput

	// Reserved, not produced yet.
	UnknownIdentifier
	InvalidEscapeSequence
	UnterminatedString
)

func (k DiagnosticKind) String() string {
	switch k {
	case InvalidToken:
		return "InvalidToken"
	case UnexpectedToken:
		return "UnexpectedToken"
	case UnexpectedEndOfInput:
		return "UnexpectedEndOfInput"
	case UnknownIdentifier:
		return "UnknownIdentifier"
	case InvalidEscapeSequence:
		return "InvalidEscapeSequence"
	case UnterminatedString:
		return "UnterminatedString"
	}
	return fmt.Sprintf("DiagnosticKind(%d)", uint8(k))
}

// Diagnostic is a non-fatal error found while scanning or parsing, with the
// position it was found at. A zero line means the position is unknown.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
	Line    int
	Column  int
}

// NewDiagnostic creates a new diagnostic
func NewDiagnostic(kind DiagnosticKind, message string, line, column int) *Diagnostic {
	return &Diagnostic{kind, message, line, column}
}

func (d *Diagnostic) Error() string {
	if d.Line == 0 {
		return fmt.Sprintf("[end] %s: %s", d.Kind, d.Message)
	}
	return fmt.Sprintf("[line %d:%d] %s: %s", d.Line, d.Column, d.Kind, d.Message)
}

func newScanError(line, column int, r rune) *Diagnostic {
	return NewDiagnostic(
		InvalidToken,
		fmt.Sprintf("Invalid character %q.", r),
		line,
		column,
	)
}

// newUnexpectedError describes a token found where one of the given types was
// required. A nil token means the input was exhausted.
func newUnexpectedError(found *Token, expected string) *Diagnostic {
	if found == nil {
		return NewDiagnostic(
			UnexpectedEndOfInput,
			fmt.Sprintf("Expect %s, found end of input.", expected),
			0,
			0,
		)
	}
	return NewDiagnostic(
		UnexpectedToken,
		fmt.Sprintf("Expect %s, found %s %q.", expected, found.Typ, found.Lexeme),
		found.Line,
		found.Column,
	)
}

func newInvalidTokenError(found *Token, context string) *Diagnostic {
	return NewDiagnostic(
		InvalidToken,
		fmt.Sprintf("Unexpected %s %q %s.", found.Typ, found.Lexeme, context),
		found.Line,
		found.Column,
	)
}
