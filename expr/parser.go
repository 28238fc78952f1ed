package expr

import (
	"fmt"
	"strconv"
)

// Node is a parsed expression tree node.
type Node interface {
	eval(r Resolver) (any, error)
}

type literalNode struct {
	value any
}

type identNode struct {
	name string
}

type listNode struct {
	items []Node
}

type unaryNode struct {
	op      string
	operand Node
}

type binaryNode struct {
	op    string
	left  Node
	right Node
}

// Operator precedence levels, lowest first.
const (
	precLowest = iota
	precOr
	precAnd
	precNot
	precCompare // == != > >= < <= in matches
	precSum     // + -
	precProduct // * / %
	precUnary
)

// Parser parses assertion expressions into an AST
type Parser struct {
	lexer        *Lexer
	currentToken Token
	peekToken    Token
}

// NewParser creates a new expression parser
func NewParser(input string) *Parser {
	p := &Parser{lexer: NewLexer(input)}
	// Read two tokens to initialize current and peek
	p.nextToken()
	p.nextToken()
	return p
}

// nextToken advances to the next token
func (p *Parser) nextToken() {
	p.currentToken = p.peekToken
	p.peekToken = p.lexer.NextToken()
}

// Parse consumes the whole input and returns the expression tree.
func (p *Parser) Parse() (Node, error) {
	node, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if p.currentToken.Type != TOKEN_EOF {
		return nil, fmt.Errorf("unexpected token %q at position %d", p.currentToken.Literal, p.currentToken.Pos)
	}
	return node, nil
}

func (p *Parser) parseExpression(minPrec int) (Node, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		prec, op, ok := p.infixOperator()
		if !ok || prec < minPrec {
			return left, nil
		}
		p.nextToken() // consume operator
		right, err := p.parseExpression(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &binaryNode{op: op, left: left, right: right}
	}
}

// infixOperator classifies the current token as an infix operator.
func (p *Parser) infixOperator() (int, string, bool) {
	switch p.currentToken.Type {
	case TOKEN_OR:
		return precOr, "or", true
	case TOKEN_AND:
		return precAnd, "and", true
	case TOKEN_IN:
		return precCompare, "in", true
	case TOKEN_MATCHES:
		return precCompare, "matches", true
	case TOKEN_OPERATOR:
		switch p.currentToken.Literal {
		case "==", "!=", ">", ">=", "<", "<=":
			return precCompare, p.currentToken.Literal, true
		case "+", "-":
			return precSum, p.currentToken.Literal, true
		case "*", "/", "%":
			return precProduct, p.currentToken.Literal, true
		}
	}
	return 0, "", false
}

func (p *Parser) parsePrefix() (Node, error) {
	tok := p.currentToken
	switch tok.Type {
	case TOKEN_NUMBER:
		value, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q at position %d", tok.Literal, tok.Pos)
		}
		p.nextToken()
		return &literalNode{value: value}, nil
	case TOKEN_STRING:
		p.nextToken()
		return &literalNode{value: tok.Literal}, nil
	case TOKEN_TRUE:
		p.nextToken()
		return &literalNode{value: true}, nil
	case TOKEN_FALSE:
		p.nextToken()
		return &literalNode{value: false}, nil
	case TOKEN_NIL:
		p.nextToken()
		return &literalNode{value: nil}, nil
	case TOKEN_IDENTIFIER:
		p.nextToken()
		return &identNode{name: tok.Literal}, nil
	case TOKEN_NOT:
		p.nextToken()
		operand, err := p.parseExpression(precNot)
		if err != nil {
			return nil, err
		}
		return &unaryNode{op: "not", operand: operand}, nil
	case TOKEN_OPERATOR:
		if tok.Literal == "-" {
			p.nextToken()
			operand, err := p.parseExpression(precUnary)
			if err != nil {
				return nil, err
			}
			return &unaryNode{op: "-", operand: operand}, nil
		}
	case TOKEN_LPAREN:
		p.nextToken()
		inner, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		if p.currentToken.Type != TOKEN_RPAREN {
			return nil, fmt.Errorf("expected ) at position %d", p.currentToken.Pos)
		}
		p.nextToken()
		return inner, nil
	case TOKEN_LBRACKET:
		return p.parseList()
	case TOKEN_EOF:
		return nil, fmt.Errorf("unexpected end of expression")
	}
	return nil, fmt.Errorf("unexpected token %q at position %d", tok.Literal, tok.Pos)
}

// parseList parses a bracketed list literal.
func (p *Parser) parseList() (Node, error) {
	list := &listNode{}
	p.nextToken() // consume [
	if p.currentToken.Type == TOKEN_RBRACKET {
		p.nextToken()
		return list, nil
	}
	for {
		item, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		list.items = append(list.items, item)
		switch p.currentToken.Type {
		case TOKEN_COMMA:
			p.nextToken()
		case TOKEN_RBRACKET:
			p.nextToken()
			return list, nil
		default:
			return nil, fmt.Errorf("expected , or ] at position %d", p.currentToken.Pos)
		}
	}
}
