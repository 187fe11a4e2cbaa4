package expr

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

type tokenKind int

const (
	tokField tokenKind = iota
	tokNumber
	tokBool
	tokAnd
	tokOr
	tokNot
	tokCmp
	tokLParen
	tokRParen
	tokEOF
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// Parse compiles a condition expression to its AST. Parse errors wrap ErrParse.
func Parse(input string) (Expr, error) {
	tokens, err := lex(input)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	node, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, fmt.Errorf("%w: unexpected %q at position %d", ErrParse, p.peek().text, p.peek().pos)
	}
	return node, nil
}

func lex(input string) ([]token, error) {
	var tokens []token
	runes := []rune(input)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '(':
			tokens = append(tokens, token{tokLParen, "(", i})
			i++
		case r == ')':
			tokens = append(tokens, token{tokRParen, ")", i})
			i++
		case r == '>' || r == '<':
			op := string(r)
			if i+1 < len(runes) && runes[i+1] == '=' {
				op += "="
				i++
			}
			tokens = append(tokens, token{tokCmp, op, i})
			i++
		case r == '=' || r == '!':
			if i+1 >= len(runes) || runes[i+1] != '=' {
				return nil, fmt.Errorf("%w: unexpected %q at position %d", ErrParse, string(r), i)
			}
			tokens = append(tokens, token{tokCmp, string(r) + "=", i})
			i += 2
		case unicode.IsDigit(r) || r == '.':
			start := i
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
				i++
			}
			tokens = append(tokens, token{tokNumber, string(runes[start:i]), start})
		case unicode.IsLetter(r) || r == '_':
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
				i++
			}
			word := string(runes[start:i])
			switch strings.ToLower(word) {
			case "and":
				tokens = append(tokens, token{tokAnd, word, start})
			case "or":
				tokens = append(tokens, token{tokOr, word, start})
			case "not":
				tokens = append(tokens, token{tokNot, word, start})
			case "true", "false":
				tokens = append(tokens, token{tokBool, strings.ToLower(word), start})
			default:
				tokens = append(tokens, token{tokField, word, start})
			}
		default:
			return nil, fmt.Errorf("%w: unexpected character %q at position %d", ErrParse, string(r), i)
		}
	}
	tokens = append(tokens, token{tokEOF, "", len(runes)})
	return tokens, nil
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

// parseOr := parseAnd ("or" parseAnd)*
func (p *parser) parseOr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokOr {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &logicalNode{op: opOr, left: left, right: right}
	}
	return left, nil
}

// parseAnd := parseUnary ("and" parseUnary)*
func (p *parser) parseAnd() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokAnd {
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &logicalNode{op: opAnd, left: left, right: right}
	}
	return left, nil
}

// parseUnary := "not" parseUnary | parsePrimary
func (p *parser) parseUnary() (Expr, error) {
	if p.peek().kind == tokNot {
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &notNode{operand: operand}, nil
	}
	return p.parsePrimary()
}

// parsePrimary := "(" parseOr ")" | operand (cmpOp operand)?
func (p *parser) parsePrimary() (Expr, error) {
	if p.peek().kind == tokLParen {
		p.next()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tokRParen {
			return nil, fmt.Errorf("%w: missing closing parenthesis at position %d", ErrParse, p.peek().pos)
		}
		p.next()
		return inner, nil
	}

	left, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokCmp {
		return &boolOperandNode{op: left}, nil
	}
	opTok := p.next()
	right, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	op, err := cmpOpFromText(opTok.text)
	if err != nil {
		return nil, err
	}
	return &cmpNode{op: op, left: left, right: right}, nil
}

func (p *parser) parseOperand() (operand, error) {
	t := p.next()
	switch t.kind {
	case tokField:
		return &fieldRef{name: t.text}, nil
	case tokNumber:
		d, err := decimal.NewFromString(t.text)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid number %q at position %d", ErrParse, t.text, t.pos)
		}
		return &literal{val: NumberValue(d)}, nil
	case tokBool:
		return &literal{val: BoolValue(t.text == "true")}, nil
	}
	return nil, fmt.Errorf("%w: expected operand, got %q at position %d", ErrParse, t.text, t.pos)
}

func cmpOpFromText(text string) (cmpOp, error) {
	switch text {
	case ">":
		return cmpGT, nil
	case ">=":
		return cmpGE, nil
	case "<":
		return cmpLT, nil
	case "<=":
		return cmpLE, nil
	case "==":
		return cmpEQ, nil
	case "!=":
		return cmpNE, nil
	}
	return 0, fmt.Errorf("%w: unknown operator %q", ErrParse, text)
}
