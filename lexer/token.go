package lexer

import (
	"fmt"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Identifiers + literals.
	TokIdentifier
	TokNumber

	// Keywords.
	TokLet
	TokOutput

	// Operators.
	TokEquals
	TokPlus
	TokDash
	TokStar
	TokSlash
	TokColon

	// Delimiters.
	TokWhitespace
	TokComma
	TokSemicolon
	TokParenLeft
	TokParenRight

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	return tokenTypeStrings[tt]
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokIdentifier: "IDENTIFIER",
	TokNumber:     "NUMBER",

	TokLet:    "LET",
	TokOutput: "OUTPUT",

	TokEquals: "EQUALS",
	TokPlus:   "PLUS",
	TokDash:   "DASH",
	TokStar:   "STAR",
	TokSlash:  "SLASH",
	TokColon:  "COLON",

	TokWhitespace: "WHITESPACE",
	TokComma:      "COMMA",
	TokSemicolon:  "SEMICOLON",
	TokParenLeft:  "PAREN_LEFT",
	TokParenRight: "PAREN_RIGHT",
}

// keywords maps reserved words to their token type.
var keywords = map[string]TokenType{
	"let":    TokLet,
	"output": TokOutput,
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// Token represents a lexical token.
type Token struct {
	Type  TokenType
	Value string

	Line int // 1-based line of the first rune of the token.
	Col  int // 1-based column of the first rune of the token.
}

func (t Token) String() string {
	switch {
	case t.Type == TokEOF:
		return "EOF"
	case t.Type == TokError:
		return t.errorString()
	case len(t.Value) > 16:
		return fmt.Sprintf("%s[%d:%d]: %.16q", t.Type, t.Line, t.Col, t.Value)
	}
	return fmt.Sprintf("%s[%d:%d]: %q", t.Type, t.Line, t.Col, t.Value)
}

func (t Token) errorString() string {
	return fmt.Sprintf("ERROR [%d:%d]: %s", t.Line, t.Col, t.Value)
}
