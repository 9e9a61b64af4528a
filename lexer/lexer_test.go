package lexer

import (
	"testing"
)

// Helper function to test the lexer
func testLexer(t *testing.T, input string, expectedTokens []Token) {
	t.Helper()

	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokEOF {
			break
		}
	}
	if len(tokens) != len(expectedTokens) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(expectedTokens), len(tokens), tokens)
	}
	for i, expectedToken := range expectedTokens {
		token := tokens[i]

		if token.Type != expectedToken.Type {
			t.Fatalf("tests[%d] - wrong type. expected=%q (%s), got=%q (%s)",
				i, expectedToken.Type, expectedToken, token.Type, token)
		}

		if expectedToken.Type != TokEOF && token.Value != expectedToken.Value {
			t.Fatalf("tests[%d] - wrong value. expected=%q (%s), got=%q (%s)",
				i, expectedToken.Value, expectedToken, token.Value, token)
		}
	}
}

func TestTokenTypeString(t *testing.T) {
	if len(tokenTypeStrings) != int(FinalToken) {
		t.Fatalf("Expected %d token types in tokenTypeStrings, got %d", FinalToken, len(tokenTypeStrings))
	}
}

func TestLexerDeclaration(t *testing.T) {
	input := "let x = uniform(1,6);"
	expectedTokens := []Token{
		{Type: TokLet, Value: "let"},
		{Type: TokWhitespace, Value: " "},
		{Type: TokIdentifier, Value: "x"},
		{Type: TokWhitespace, Value: " "},
		{Type: TokEquals, Value: "="},
		{Type: TokWhitespace, Value: " "},
		{Type: TokIdentifier, Value: "uniform"},
		{Type: TokParenLeft, Value: "("},
		{Type: TokNumber, Value: "1"},
		{Type: TokComma, Value: ","},
		{Type: TokNumber, Value: "6"},
		{Type: TokParenRight, Value: ")"},
		{Type: TokSemicolon, Value: ";"},
		{Type: TokEOF},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerMethodCall(t *testing.T) {
	input := "output(z:expect(7))"
	expectedTokens := []Token{
		{Type: TokOutput, Value: "output"},
		{Type: TokParenLeft, Value: "("},
		{Type: TokIdentifier, Value: "z"},
		{Type: TokColon, Value: ":"},
		{Type: TokIdentifier, Value: "expect"},
		{Type: TokParenLeft, Value: "("},
		{Type: TokNumber, Value: "7"},
		{Type: TokParenRight, Value: ")"},
		{Type: TokParenRight, Value: ")"},
		{Type: TokEOF},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerArithmetic(t *testing.T) {
	input := "a1*-(b2/3.25)+4"
	expectedTokens := []Token{
		{Type: TokIdentifier, Value: "a1"},
		{Type: TokStar, Value: "*"},
		{Type: TokDash, Value: "-"},
		{Type: TokParenLeft, Value: "("},
		{Type: TokIdentifier, Value: "b2"},
		{Type: TokSlash, Value: "/"},
		{Type: TokNumber, Value: "3.25"},
		{Type: TokParenRight, Value: ")"},
		{Type: TokPlus, Value: "+"},
		{Type: TokNumber, Value: "4"},
		{Type: TokEOF},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerKeywordPrefix(t *testing.T) {
	// Keywords are whole identifiers only.
	input := "letter outputs let"
	expectedTokens := []Token{
		{Type: TokIdentifier, Value: "letter"},
		{Type: TokWhitespace, Value: " "},
		{Type: TokIdentifier, Value: "outputs"},
		{Type: TokWhitespace, Value: " "},
		{Type: TokLet, Value: "let"},
		{Type: TokEOF},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerErrorCases(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "Underscore",
			input: "my_var",
			expected: []Token{
				{Type: TokIdentifier, Value: "my"},
				{Type: TokError, Value: "unexpected character: '_'"},
				{Type: TokEOF},
			},
		},
		{
			name:  "Non-ASCII letter",
			input: "é",
			expected: []Token{
				{Type: TokError, Value: "unexpected character: 'é'"},
				{Type: TokEOF},
			},
		},
		{
			name:  "Non-ASCII digit",
			input: "x٣",
			expected: []Token{
				{Type: TokIdentifier, Value: "x"},
				{Type: TokError, Value: "unexpected character: '٣'"},
				{Type: TokEOF},
			},
		},
		{
			name:  "Dangling dot",
			input: "5.",
			expected: []Token{
				{Type: TokError, Value: `malformed number "5.": expected digit after '.'`},
				{Type: TokEOF},
			},
		},
		{
			name:  "Empty input",
			input: "",
			expected: []Token{
				{Type: TokEOF},
			},
		},
		{
			name:  "Only whitespace",
			input: "   \t   \n   ",
			expected: []Token{
				{Type: TokWhitespace, Value: "   \t   \n   "},
				{Type: TokEOF},
			},
		},
		{
			name:  "Digits then letters",
			input: "12ab",
			expected: []Token{
				{Type: TokNumber, Value: "12"},
				{Type: TokIdentifier, Value: "ab"},
				{Type: TokEOF},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testLexer(t, tt.input, tt.expected)
		})
	}
}

func TestLexerPositions(t *testing.T) {
	l := New("let x;\n  output(x)")
	want := []struct {
		typ       TokenType
		line, col int
	}{
		{TokLet, 1, 1},
		{TokWhitespace, 1, 4},
		{TokIdentifier, 1, 5},
		{TokSemicolon, 1, 6},
		{TokWhitespace, 1, 7},
		{TokOutput, 2, 3},
		{TokParenLeft, 2, 9},
		{TokIdentifier, 2, 10},
		{TokParenRight, 2, 11},
	}
	for i, w := range want {
		tok := l.NextToken()
		if tok.Type != w.typ || tok.Line != w.line || tok.Col != w.col {
			t.Fatalf("tokens[%d] - expected %s at %d:%d, got %s", i, w.typ, w.line, w.col, tok)
		}
	}
	if tok := l.NextToken(); tok.Type != TokEOF {
		t.Fatalf("expected EOF, got %s", tok)
	}
}

func TestLexerErrorPosition(t *testing.T) {
	l := New("x = 1;\ny = #")
	var tok Token
	for tok = l.NextToken(); tok.Type != TokError && tok.Type != TokEOF; tok = l.NextToken() {
	}
	if tok.Type != TokError {
		t.Fatalf("expected error token, got %s", tok)
	}
	if tok.Line != 2 || tok.Col != 5 {
		t.Fatalf("expected error at 2:5, got %d:%d", tok.Line, tok.Col)
	}
	if next := l.NextToken(); next.Type != TokEOF {
		t.Fatalf("expected EOF after error, got %s", next)
	}
}
