package equation

import (
	"fmt"
	"strconv"
)

// Parser consumes a token sequence and produces an Equation.
//
// Binding strength, tightest first: function application, '^'
// (right-associative), unary '-', '*' '/' and juxtaposition
// (left-associative, one tier), '+' '-', '='.
type Parser struct {
	tokens []Token
	pos    int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse builds the equation from an already tokenized input.
func Parse(tokens []Token) (*Equation, error) {
	return NewParser(tokens).Parse()
}

// ParseString tokenizes and parses in one step.
func ParseString(input string) (*Equation, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Kind: TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) prev() Token {
	if p.pos == 0 {
		return Token{Kind: TokenEOF}
	}
	return p.tokens[p.pos-1]
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) match(kind TokenKind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) Parse() (*Equation, error) {
	left, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.check(TokenEquals) {
		tok := p.peek()
		return nil, &ParseError{
			Kind: ParseInvalidEquation,
			Pos:  tok.Span.Start,
			Msg:  fmt.Sprintf("expected '=', found %s", describe(tok)),
		}
	}
	p.advance()
	right, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.check(TokenEquals) {
		return nil, &ParseError{
			Kind: ParseInvalidEquation,
			Pos:  p.peek().Span.Start,
			Msg:  "more than one '='",
		}
	}
	if !p.check(TokenEOF) {
		tok := p.peek()
		return nil, &ParseError{
			Kind: ParseTrailingTokens,
			Pos:  tok.Span.Start,
			Msg:  fmt.Sprintf("unexpected %s after equation", describe(tok)),
		}
	}
	return &Equation{Left: left, Right: right}, nil
}

func (p *Parser) parseExpr() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.check(TokenPlus) || p.check(TokenMinus) {
		op := OpAdd
		if p.peek().Kind == TokenMinus {
			op = OpSub
		}
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseTerm() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var op BinaryOp
		switch {
		case p.check(TokenStar):
			p.advance()
			op = OpMul
		case p.check(TokenSlash):
			p.advance()
			op = OpDiv
		case p.implicitMul():
			op = OpMul
		default:
			return left, nil
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}
}

// implicitMul reports whether the gap between the token that closed the
// previous operand and the upcoming token reads as a multiplication.
// The recognized adjacencies are 2x, 2(, )(, )x and x(. Two adjacent
// identifiers never multiply: xy is one variable and "x y" is an error.
func (p *Parser) implicitMul() bool {
	next := p.peek().Kind
	if next != TokenIdent && next != TokenLParen {
		return false
	}
	switch p.prev().Kind {
	case TokenNumber, TokenRParen:
		return true
	case TokenIdent:
		return next == TokenLParen
	}
	return false
}

func (p *Parser) parseUnary() (Expr, error) {
	if p.match(TokenMinus) {
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: OpNeg, X: x}, nil
	}
	return p.parsePower()
}

func (p *Parser) parsePower() (Expr, error) {
	base, err := p.parseCall()
	if err != nil {
		return nil, err
	}
	if p.match(TokenCaret) {
		exp, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		return &Binary{Op: OpPow, Left: base, Right: exp}, nil
	}
	return base, nil
}

func (p *Parser) parseCall() (Expr, error) {
	if !p.check(TokenFunc) {
		return p.parsePrimary()
	}
	tok := p.advance()
	if _, ok := LookupFunction(tok.Literal); !ok {
		return nil, &ParseError{
			Kind: ParseUnknownFunction,
			Pos:  tok.Span.Start,
			Msg:  fmt.Sprintf("\\%s is not a known function", tok.Literal),
		}
	}
	arg, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return &Call{Name: tok.Literal, Arg: arg}, nil
}

func (p *Parser) parsePrimary() (Expr, error) {
	tok := p.peek()
	switch tok.Kind {
	case TokenNumber:
		p.advance()
		// The lexer only produces digit and dot runs; out of range
		// values saturate to ±Inf.
		value, _ := strconv.ParseFloat(tok.Literal, 64)
		return &Number{Value: value}, nil
	case TokenIdent:
		p.advance()
		return &Variable{Name: tok.Literal}, nil
	case TokenLParen:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if !p.check(TokenRParen) {
			return nil, &ParseError{
				Kind: ParseUnclosedParen,
				Pos:  tok.Span.Start,
				Msg:  "missing ')'",
			}
		}
		p.advance()
		return inner, nil
	}
	return nil, &ParseError{
		Kind: ParseMissingOperand,
		Pos:  tok.Span.Start,
		Msg:  fmt.Sprintf("expected a number, variable or '(', found %s", describe(tok)),
	}
}

func describe(tok Token) string {
	switch tok.Kind {
	case TokenEOF:
		return "end of input"
	case TokenNumber, TokenIdent:
		return fmt.Sprintf("%q", tok.Literal)
	case TokenFunc:
		return fmt.Sprintf("%q", "\\"+tok.Literal)
	default:
		return fmt.Sprintf("%q", tok.Kind.String())
	}
}
