package equation

import "unicode/utf8"

type Lexer struct {
	input  []byte
	pos    int
	line   int
	column int
}

func NewLexer(input []byte) *Lexer {
	return &Lexer{
		input:  input,
		pos:    0,
		line:   1,
		column: 1,
	}
}

func (l *Lexer) Position() Position {
	return Position{
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) skipWhitespace() {
	for {
		ch := l.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			l.advance()
		} else {
			break
		}
	}
}

func (l *Lexer) NextToken() Token {
	l.skipWhitespace()
	startPos := l.Position()

	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Span: Span{Start: startPos, End: startPos}}
	}

	ch := l.peek()

	if isDigit(ch) {
		return l.scanNumber(startPos)
	}

	if isLetter(ch) {
		return l.scanIdent(startPos)
	}

	if ch == '\\' {
		return l.scanFunction(startPos)
	}

	return l.scanOperator(startPos)
}

func (l *Lexer) scanNumber(start Position) Token {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	return l.token(TokenNumber, start)
}

func (l *Lexer) scanIdent(start Position) Token {
	for isLetter(l.peek()) {
		l.advance()
	}
	return l.token(TokenIdent, start)
}

func (l *Lexer) scanFunction(start Position) Token {
	l.advance()
	if !isLetter(l.peek()) {
		return l.token(TokenError, start)
	}
	nameStart := l.pos
	for isLetter(l.peek()) {
		l.advance()
	}
	end := l.Position()
	return Token{
		Kind:    TokenFunc,
		Span:    Span{Start: start, End: end},
		Literal: string(l.input[nameStart:end.Offset]),
	}
}

func (l *Lexer) scanOperator(start Position) Token {
	ch := l.peek()

	switch ch {
	case '+':
		l.advance()
		return l.token(TokenPlus, start)
	case '-':
		l.advance()
		return l.token(TokenMinus, start)
	case '*':
		l.advance()
		return l.token(TokenStar, start)
	case '/':
		l.advance()
		return l.token(TokenSlash, start)
	case '^':
		l.advance()
		return l.token(TokenCaret, start)
	case '(':
		l.advance()
		return l.token(TokenLParen, start)
	case ')':
		l.advance()
		return l.token(TokenRParen, start)
	case '=':
		l.advance()
		return l.token(TokenEquals, start)
	}

	l.advance()
	return l.token(TokenError, start)
}

func (l *Lexer) token(kind TokenKind, start Position) Token {
	end := l.Position()
	return Token{
		Kind:    kind,
		Span:    Span{Start: start, End: end},
		Literal: string(l.input[start.Offset:end.Offset]),
	}
}

// Tokenize scans the whole input. It stops at the first unrecognized
// character and reports it as a *LexError.
func Tokenize(input string) ([]Token, error) {
	l := NewLexer([]byte(input))
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Kind == TokenError {
			ch, _ := utf8.DecodeRune(l.input[tok.Span.Start.Offset:])
			return nil, &LexError{Pos: tok.Span.Start, Char: ch}
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}
