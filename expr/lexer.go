// Package expr implements the small expression language used by rule-check
// assertions: boolean and comparison operators, arithmetic, list literals,
// membership and regular-expression matching, evaluated against a chain of
// variable bindings.
package expr

import "strings"

// TokenType represents the type of an expression token
type TokenType int

const (
	// Token types for the expression lexer
	TOKEN_AND TokenType = iota
	TOKEN_OR
	TOKEN_NOT
	TOKEN_IN
	TOKEN_MATCHES
	TOKEN_TRUE
	TOKEN_FALSE
	TOKEN_NIL
	TOKEN_IDENTIFIER
	TOKEN_STRING
	TOKEN_NUMBER
	TOKEN_OPERATOR // ==, !=, >, <, >=, <=, +, -, *, /
	TOKEN_LPAREN
	TOKEN_RPAREN
	TOKEN_LBRACKET
	TOKEN_RBRACKET
	TOKEN_COMMA
	TOKEN_EOF
	TOKEN_ERROR
)

// Token represents a lexical token in an assertion expression
type Token struct {
	Type    TokenType
	Literal string
	Pos     int
}

// Lexer tokenizes assertion expression strings
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte
}

// NewLexer creates a new expression lexer
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// readChar advances to the next character
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // EOF
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

// peekChar looks ahead without advancing
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// skipWhitespace advances past whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readIdentifier reads an identifier or keyword, allowing dotted paths
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' || l.ch == '.' {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads a numeric literal
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) || l.ch == '.' {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readString reads a string literal (single or double quoted)
func (l *Lexer) readString(quote byte) string {
	l.readChar() // skip opening quote
	start := l.position
	for l.ch != quote && l.ch != 0 {
		if l.ch == '\\' {
			l.readChar() // skip escape character
		}
		l.readChar()
	}
	str := l.input[start:l.position]
	l.readChar() // skip closing quote
	return str
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	tok := Token{Pos: l.position}

	switch l.ch {
	case '(':
		tok.Type = TOKEN_LPAREN
		tok.Literal = string(l.ch)
	case ')':
		tok.Type = TOKEN_RPAREN
		tok.Literal = string(l.ch)
	case '[':
		tok.Type = TOKEN_LBRACKET
		tok.Literal = string(l.ch)
	case ']':
		tok.Type = TOKEN_RBRACKET
		tok.Literal = string(l.ch)
	case ',':
		tok.Type = TOKEN_COMMA
		tok.Literal = string(l.ch)
	case '+', '*', '/', '%':
		tok.Type = TOKEN_OPERATOR
		tok.Literal = string(l.ch)
	case '-':
		tok.Type = TOKEN_OPERATOR
		tok.Literal = string(l.ch)
	case '=', '!', '>', '<':
		// Delegate operator parsing to dedicated method
		return l.readOperator()
	case '&':
		if l.peekChar() == '&' {
			l.readChar()
			tok.Type = TOKEN_AND
			tok.Literal = "&&"
		} else {
			tok.Type = TOKEN_ERROR
			tok.Literal = string(l.ch)
		}
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			tok.Type = TOKEN_OR
			tok.Literal = "||"
		} else {
			tok.Type = TOKEN_ERROR
			tok.Literal = string(l.ch)
		}
	case '\'', '"':
		tok.Type = TOKEN_STRING
		tok.Literal = l.readString(l.ch)
		return tok
	case 0:
		tok.Type = TOKEN_EOF
		tok.Literal = ""
		return tok
	default:
		if isLetter(l.ch) || l.ch == '_' {
			literal := l.readIdentifier()
			tok.Type = lookupKeyword(literal)
			tok.Literal = literal
			return tok
		} else if isDigit(l.ch) {
			tok.Type = TOKEN_NUMBER
			tok.Literal = l.readNumber()
			return tok
		} else {
			tok.Type = TOKEN_ERROR
			tok.Literal = string(l.ch)
		}
	}

	l.readChar()
	return tok
}

// readOperator reads comparison operators (==, =, !=, !, >, >=, <, <=)
func (l *Lexer) readOperator() Token {
	tok := Token{Pos: l.position, Type: TOKEN_OPERATOR}

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
		}
		tok.Literal = "==" // a single = is accepted as equality
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok.Literal = "!="
		} else {
			tok.Type = TOKEN_NOT
			tok.Literal = "!"
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok.Literal = ">="
		} else {
			tok.Literal = ">"
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok.Literal = "<="
		} else {
			tok.Literal = "<"
		}
	}

	l.readChar()
	return tok
}

// lookupKeyword maps identifiers to keywords
func lookupKeyword(ident string) TokenType {
	keywords := map[string]TokenType{
		"and":     TOKEN_AND,
		"or":      TOKEN_OR,
		"not":     TOKEN_NOT,
		"in":      TOKEN_IN,
		"matches": TOKEN_MATCHES,
		"true":    TOKEN_TRUE,
		"false":   TOKEN_FALSE,
		"nil":     TOKEN_NIL,
		"null":    TOKEN_NIL,
	}

	if tok, ok := keywords[strings.ToLower(ident)]; ok {
		return tok
	}
	return TOKEN_IDENTIFIER
}

// isLetter returns true if ch is a letter
func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

// isDigit returns true if ch is a digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
