package rotor

import (
	"fmt"
	"strconv"
	"strings"
)

// Token represents group a characters with additional information that was
// obtained during the scanning phase.
type Token struct {
	Typ    TokenType
	Lexeme string
	Line   int
	Column int
	Offset int
}

// NewToken creates a new token
func NewToken(typ TokenType, lexeme string, line, column, offset int) *Token {
	return &Token{typ, lexeme, line, column, offset}
}

func (t *Token) String() string {
	return fmt.Sprintf("%s %q %d:%d", t.Typ, t.Lexeme, t.Line, t.Column)
}

// IsValid reports whether the lexeme has the shape required by the token's
// type.
func (t *Token) IsValid() bool {
	switch t.Typ {
	case IDENTIFIER:
		return t.Lexeme != "" && isBeginIdent([]rune(t.Lexeme)[0])
	case INTEGER:
		return t.Lexeme != "" && strings.IndexFunc(t.Lexeme, func(r rune) bool {
			return !isDigit(r)
		}) < 0
	case FLOAT:
		if t.Lexeme == "f32" {
			return true
		}
		if strings.Count(t.Lexeme, ".") != 1 {
			return false
		}
		_, err := strconv.ParseFloat(t.Lexeme, 64)
		return err == nil
	case STRING:
		return !strings.ContainsRune(t.Lexeme, '"')
	case BOOLEAN:
		return t.Lexeme == "true" || t.Lexeme == "false"
	}
	text, fixed := fixedLexemes[t.Typ]
	return fixed && t.Lexeme == text
}

// Keywords maps the reserved words to their token types. Anything else that
// scans as an identifier is an IDENTIFIER.
var Keywords = map[string]TokenType{
	"let":   LET,
	"const": CONST,
	"use":   USE,
	"if":    IF,
	"else":  ELSE,
	"for":   FOR,
	"while": WHILE,
	"in":    IN,
	"i32":   I32,
	"f32":   FLOAT,
	"bool":  BOOL,
	"str":   STR,
	"true":  BOOLEAN,
	"false": BOOLEAN,
}

// TokenType identifies the class of a token.
type TokenType uint8

const (
	// Keywords
	LET TokenType = iota
	CONST
	USE
	IF
	ELSE
	FOR
	WHILE
	IN

	// Types
	I32
	BOOL
	STR

	// Identifiers & literals
	IDENTIFIER
	INTEGER
	FLOAT
	STRING
	BOOLEAN

	// Symbols
	DOT
	RANGE
	EQUAL
	SEMICOLON
	COLON
	NEWLINE
	COMMA

	// Brackets
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_CURLY
	RIGHT_CURLY
	LEFT_SQUARE
	RIGHT_SQUARE

	// Operators
	PLUS
	MINUS
	MULTIPLY
	DIVIDE
	MODULUS
	AND
	OR
	NOT

	// Comparison
	GREATER
	LESS
	GREATER_EQUAL
	LESS_EQUAL
	EQUAL_EQUAL
	NOT_EQUAL
)

var tokenTypeNames = [...]string{
	LET:           "LET",
	CONST:         "CONST",
	USE:           "USE",
	IF:            "IF",
	ELSE:          "ELSE",
	FOR:           "FOR",
	WHILE:         "WHILE",
	IN:            "IN",
	I32:           "I32",
	BOOL:          "BOOL",
	STR:           "STR",
	IDENTIFIER:    "IDENTIFIER",
	INTEGER:       "INTEGER",
	FLOAT:         "FLOAT",
	STRING:        "STRING",
	BOOLEAN:       "BOOLEAN",
	DOT:           "DOT",
	RANGE:         "RANGE",
	EQUAL:         "EQUAL",
	SEMICOLON:     "SEMICOLON",
	COLON:         "COLON",
	NEWLINE:       "NEWLINE",
	COMMA:         "COMMA",
	LEFT_PAREN:    "LEFT_PAREN",
	RIGHT_PAREN:   "RIGHT_PAREN",
	LEFT_CURLY:    "LEFT_CURLY",
	RIGHT_CURLY:   "RIGHT_CURLY",
	LEFT_SQUARE:   "LEFT_SQUARE",
	RIGHT_SQUARE:  "RIGHT_SQUARE",
	PLUS:          "PLUS",
	MINUS:         "MINUS",
	MULTIPLY:      "MULTIPLY",
	DIVIDE:        "DIVIDE",
	MODULUS:       "MODULUS",
	AND:           "AND",
	OR:            "OR",
	NOT:           "NOT",
	GREATER:       "GREATER",
	LESS:          "LESS",
	GREATER_EQUAL: "GREATER_EQUAL",
	LESS_EQUAL:    "LESS_EQUAL",
	EQUAL_EQUAL:   "EQUAL_EQUAL",
	NOT_EQUAL:     "NOT_EQUAL",
}

func (tt TokenType) String() string {
	if int(tt) < len(tokenTypeNames) {
		return tokenTypeNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", uint8(tt))
}

// fixedLexemes holds the only lexeme a keyword or symbol token may carry.
var fixedLexemes = map[TokenType]string{
	LET:           "let",
	CONST:         "const",
	USE:           "use",
	IF:            "if",
	ELSE:          "else",
	FOR:           "for",
	WHILE:         "while",
	IN:            "in",
	I32:           "i32",
	BOOL:          "bool",
	STR:           "str",
	DOT:           ".",
	RANGE:         "..",
	EQUAL:         "=",
	SEMICOLON:     ";",
	COLON:         ":",
	NEWLINE:       "\n",
	COMMA:         ",",
	LEFT_PAREN:    "(",
	RIGHT_PAREN:   ")",
	LEFT_CURLY:    "{",
	RIGHT_CURLY:   "}",
	LEFT_SQUARE:   "[",
	RIGHT_SQUARE:  "]",
	PLUS:          "+",
	MINUS:         "-",
	MULTIPLY:      "*",
	DIVIDE:        "/",
	MODULUS:       "%",
	AND:           "&&",
	OR:            "||",
	NOT:           "!",
	GREATER:       ">",
	LESS:          "<",
	GREATER_EQUAL: ">=",
	LESS_EQUAL:    "<=",
	EQUAL_EQUAL:   "==",
	NOT_EQUAL:     "!=",
}
