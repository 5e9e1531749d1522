package slip

// TokenType represents the kind of token.
type TokenType int

const (
	LPAREN TokenType = iota // "("
	RPAREN                  // ")"
	ATOM                    // any other delimiter-free run of characters
)

// Token is a lexical token with its source position. Line is 1-based,
// Col is 0-based.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Col    int
}

// Lexer scans a Slip source string into tokens. Tokenization never fails:
// any input yields some (possibly empty) token sequence.
type Lexer struct {
	src    string
	cur    int
	line   int // 1-based
	col    int // 0-based column within line
	tokens []Token

	// position of the token being scanned
	tokLine int
	tokCol  int
}

// NewLexer creates a new lexer for the given source.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

// Tokenize scans src in one call.
func Tokenize(src string) []Token {
	return NewLexer(src).Scan()
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

func (l *Lexer) advance() byte {
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return ch
}

func (l *Lexer) addToken(tt TokenType, lexeme string) {
	l.tokens = append(l.tokens, Token{
		Type:   tt,
		Lexeme: lexeme,
		Line:   l.tokLine,
		Col:    l.tokCol,
	})
}

// skipComment eats up to (not including) the next newline.
func (l *Lexer) skipComment() {
	for {
		b, ok := l.peek()
		if !ok || b == '\n' {
			return
		}
		l.advance()
	}
}

// isDelimiter reports whether b ends an atom. Only space, newline, the
// parentheses, and the comment marker delimit; other control characters
// are atom characters.
func isDelimiter(b byte) bool {
	return b == ' ' || b == '\n' || b == '(' || b == ')' || b == '#'
}

// scanAtom consumes the remainder of an atom whose first byte has already
// been consumed. A '#' truncates the atom and starts a comment.
func (l *Lexer) scanAtom(start int) {
	for {
		b, ok := l.peek()
		if !ok || isDelimiter(b) {
			break
		}
		l.advance()
	}
	l.addToken(ATOM, l.src[start:l.cur])
	if b, ok := l.peek(); ok && b == '#' {
		l.skipComment()
	}
}

// Scan tokenizes the entire source.
func (l *Lexer) Scan() []Token {
	for !l.isAtEnd() {
		l.tokLine, l.tokCol = l.line, l.col
		start := l.cur
		ch := l.advance()
		switch ch {
		case '(':
			l.addToken(LPAREN, "(")
		case ')':
			l.addToken(RPAREN, ")")
		case '#':
			l.skipComment()
		case ' ', '\n':
			// whitespace between tokens produces nothing
		default:
			l.scanAtom(start)
		}
	}
	return l.tokens
}
