package rotor

// tabWidth is the number of columns a tab advances.
const tabWidth = 4

// ScanResult holds the tokens and the diagnostics produced by scanning.
type ScanResult struct {
	Tokens      []*Token
	Diagnostics []*Diagnostic
}

// Clean reports whether scanning produced no diagnostic.
func (res *ScanResult) Clean() bool {
	return len(res.Diagnostics) == 0
}

// Scanner parses the input source and collects all the tokens that can be found
type Scanner struct {
	source []rune
	tokens []*Token
	sink   *Sink

	// position of the rune being read
	current int
	line    int
	column  int

	// position of the first rune of the lexeme being read
	start       int
	startLine   int
	startColumn int
}

// NewScanner creates a new Rotor token scanner
func NewScanner(source []rune) *Scanner {
	scanner := new(Scanner)
	scanner.source = source
	scanner.tokens = make([]*Token, 0)
	scanner.sink = NewSink()
	scanner.line = 1
	scanner.column = 1
	return scanner
}

// Scan tokenizes the given source text.
func Scan(source string) *ScanResult {
	return NewScanner([]rune(source)).Scan()
}

// Scan reads the source and collect all the tokens that were found from the
// source. Scanning never stops early, characters that can not start a token
// are reported and skipped. Calling Scan again returns the result of the first
// call without rescanning.
func (scanner *Scanner) Scan() *ScanResult {
	if scanner.current != 0 || len(scanner.source) == 0 {
		return scanner.result()
	}

	for scanner.hasNext() {
		scanner.start = scanner.current
		scanner.startLine = scanner.line
		scanner.startColumn = scanner.column
		switch r := scanner.advance(); r {
		// Whitespaces
		case ' ', '\r', '\t':
		case '\n':
			scanner.addToken(NEWLINE)
		// Single character tokens
		case '=':
			if scanner.match('=') {
				scanner.addToken(EQUAL_EQUAL)
			} else {
				scanner.addToken(EQUAL)
			}
		case ';':
			scanner.addToken(SEMICOLON)
		case ':':
			scanner.addToken(COLON)
		case ',':
			scanner.addToken(COMMA)
		case '(':
			scanner.addToken(LEFT_PAREN)
		case ')':
			scanner.addToken(RIGHT_PAREN)
		case '{':
			scanner.addToken(LEFT_CURLY)
		case '}':
			scanner.addToken(RIGHT_CURLY)
		case '[':
			scanner.addToken(LEFT_SQUARE)
		case ']':
			scanner.addToken(RIGHT_SQUARE)
		case '+':
			scanner.addToken(PLUS)
		case '-':
			scanner.addToken(MINUS)
		case '*':
			scanner.addToken(MULTIPLY)
		case '%':
			scanner.addToken(MODULUS)
		// Single or double character tokens
		case '.':
			if scanner.match('.') {
				scanner.addToken(RANGE)
			} else {
				scanner.addToken(DOT)
			}
		case '!':
			if scanner.match('=') {
				scanner.addToken(NOT_EQUAL)
			} else {
				scanner.addToken(NOT)
			}
		case '<':
			if scanner.match('=') {
				scanner.addToken(LESS_EQUAL)
			} else {
				scanner.addToken(LESS)
			}
		case '>':
			if scanner.match('=') {
				scanner.addToken(GREATER_EQUAL)
			} else {
				scanner.addToken(GREATER)
			}
		case '&':
			if scanner.match('&') {
				scanner.addToken(AND)
			} else {
				scanner.report(r)
			}
		case '|':
			if scanner.match('|') {
				scanner.addToken(OR)
			} else {
				scanner.report(r)
			}
		// Long lexemes
		case '/':
			if scanner.match('/') {
				// consume the comment, but keep the \n at the end of line so it
				// is emitted as a token
				for scanner.peek() != '\n' && scanner.hasNext() {
					scanner.advance()
				}
			} else if scanner.match('*') {
				scanner.scanMultilineComment()
			} else {
				scanner.addToken(DIVIDE)
			}
		// Literals
		case '"':
			scanner.scanString()
		default:
			if isDigit(r) {
				scanner.scanNumber()
			} else if isBeginIdent(r) {
				scanner.scanIdentifier()
			} else {
				scanner.report(r)
			}
		}
	}
	return scanner.result()
}

func (scanner *Scanner) result() *ScanResult {
	return &ScanResult{scanner.tokens, scanner.sink.Diagnostics()}
}

// scanString reads until EOF or a matching '"'. The lexeme excludes the
// quotes. A string that reaches EOF is kept as is.
func (scanner *Scanner) scanString() {
	for scanner.peek() != '"' && scanner.hasNext() {
		scanner.advance()
	}

	end := scanner.current
	if scanner.hasNext() {
		// consume '"'
		scanner.advance()
	}
	lexeme := string(scanner.source[scanner.start+1 : end])
	scanner.tokens = append(
		scanner.tokens,
		NewToken(STRING, lexeme, scanner.startLine, scanner.startColumn, scanner.start),
	)
}

func (scanner *Scanner) scanNumber() {
	typ := INTEGER
	// go through continuous digits
	for isDigit(scanner.peek()) {
		scanner.advance()
	}
	// check if there's a '.' with following digits
	if scanner.peek() == '.' && isDigit(scanner.peekNext()) {
		typ = FLOAT
		scanner.advance()
		// go through continuous digits
		for isDigit(scanner.peek()) {
			scanner.advance()
		}
	}
	scanner.addToken(typ)
}

func (scanner *Scanner) scanIdentifier() {
	for isAlphanumeric(scanner.peek()) {
		scanner.advance()
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	if tokenType, isKeyword := Keywords[lexeme]; isKeyword {
		scanner.addToken(tokenType)
	} else {
		scanner.addToken(IDENTIFIER)
	}
}

// scanMultilineComment consumes up to and including the closing "*/". A
// comment that reaches EOF ends there.
func (scanner *Scanner) scanMultilineComment() {
	for scanner.hasNext() {
		if scanner.advance() == '*' && scanner.match('/') {
			return
		}
	}
}

// addToken appends the lexeme from `start` to `current` as a token of the given
// type
func (scanner *Scanner) addToken(typ TokenType) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	tok := NewToken(typ, lexeme, scanner.startLine, scanner.startColumn, scanner.start)
	scanner.tokens = append(scanner.tokens, tok)
}

func (scanner *Scanner) report(r rune) {
	scanner.sink.Report(newScanError(scanner.startLine, scanner.startColumn, r))
}

// hasNext returns true if the scanner has not read pass the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current possition, keeping line
// and column up to date
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	switch r {
	case '\n':
		scanner.line++
		scanner.column = 1
	case '\t':
		scanner.column += tabWidth
	default:
		scanner.column++
	}
	return r
}

// match checks if the rune at the current possition is equal to the given rune,
// if they are equal, consumes the rune at the current position.
func (scanner *Scanner) match(expected rune) bool {
	if scanner.peek() != expected || !scanner.hasNext() {
		return false
	}
	scanner.advance()
	return true
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}

// peekNext returns the rune at the next position, but does not consume it
func (scanner *Scanner) peekNext() rune {
	if scanner.current+1 >= len(scanner.source) {
		return '\x00'
	}
	return scanner.source[scanner.current+1]
}
