package lang

import (
	"strconv"
	"strings"
)

// maxDepth bounds grammar-rule recursion so deeply nested input cannot
// exhaust the call stack. Each parenthesis level costs two rule entries,
// so this admits roughly 500 nested parentheses.
const maxDepth = 1000

// Parser holds the state for parsing a token stream.
type Parser struct {
	tokens []Token
	pos    int
	depth  int
}

// Parse parses a token slice into an AST node. A stream holding only
// TOKEN_EOF yields a nil node with no error; callers treat that as empty
// input.
func Parse(tokens []Token) (Node, error) {
	if len(tokens) == 0 || (len(tokens) == 1 && tokens[0].Type == TOKEN_EOF) {
		return nil, nil
	}

	p := &Parser{tokens: tokens}
	node, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	// Make sure we consumed everything (except EOF)
	if p.peek().Type != TOKEN_EOF {
		return nil, p.errExpected("end of expression")
	}

	return node, nil
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TOKEN_EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() Token {
	t := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

// errExpected builds a SyntaxError for the token at the cursor.
func (p *Parser) errExpected(what string) error {
	tok := p.peek()
	return &SyntaxError{Col: tok.Pos, Expected: what, Found: tok.Literal}
}

func (p *Parser) enter() error {
	p.depth++
	if p.depth > maxDepth {
		tok := p.peek()
		return &SyntaxError{Col: tok.Pos, Expected: "shallower nesting", Found: tok.Literal}
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// parseExpression: term ( ("+" | "-") term )*
func (p *Parser) parseExpression() (Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.peek().Type == TOKEN_PLUS || p.peek().Type == TOKEN_MINUS {
		op := OpAdd
		if p.advance().Type == TOKEN_MINUS {
			op = OpSub
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: op, Left: left, Right: right}
	}

	return left, nil
}

// parseTerm: unary ( ("*" | "/" | "//" | "%") unary )*
func (p *Parser) parseTerm() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		var op BinaryOp
		switch p.peek().Type {
		case TOKEN_STAR:
			op = OpMul
		case TOKEN_SLASH:
			op = OpDiv
		case TOKEN_SLASHSLASH:
			op = OpFloorDiv
		case TOKEN_PERCENT:
			op = OpMod
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: op, Left: left, Right: right}
	}
}

// parseUnary: ("+" | "-") unary | power
// The sign wraps the whole power expression, so -2**2 parses as -(2**2).
func (p *Parser) parseUnary() (Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	switch p.peek().Type {
	case TOKEN_PLUS:
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: OpPos, Operand: operand}, nil
	case TOKEN_MINUS:
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: OpNeg, Operand: operand}, nil
	}
	return p.parsePower()
}

// parsePower: primary ("**" unary)?
// The exponent recurses into unary, making ** right-associative and
// letting 2**-3 parse without parentheses.
func (p *Parser) parsePower() (Node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.peek().Type != TOKEN_STARSTAR {
		return base, nil
	}
	p.advance()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &BinaryExpr{Op: OpPow, Left: base, Right: exp}, nil
}

// parsePrimary: NUMBER | "(" expression ")"
func (p *Parser) parsePrimary() (Node, error) {
	tok := p.peek()
	switch tok.Type {
	case TOKEN_NUMBER:
		p.advance()
		return p.parseNumber(tok)

	case TOKEN_LPAREN:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if p.peek().Type != TOKEN_RPAREN {
			return nil, p.errExpected("')'")
		}
		p.advance()
		return expr, nil

	default:
		return nil, p.errExpected("a number or '('")
	}
}

// parseNumber converts a number token into a literal node. A literal with
// a decimal point carries the float tag through evaluation; one without
// stays integer-tagged.
func (p *Parser) parseNumber(tok Token) (Node, error) {
	if strings.ContainsRune(tok.Literal, '.') {
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, &SyntaxError{Col: tok.Pos, Expected: "a number", Found: tok.Literal}
		}
		return &NumberLit{Value: FloatValue(f)}, nil
	}
	n, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		// Wider than int64. Fall back to a float value so very large
		// displayed results can be fed back in as input.
		f, ferr := strconv.ParseFloat(tok.Literal, 64)
		if ferr != nil {
			return nil, &SyntaxError{Col: tok.Pos, Expected: "a number", Found: tok.Literal}
		}
		return &NumberLit{Value: FloatValue(f)}, nil
	}
	return &NumberLit{Value: IntValue(n)}, nil
}
