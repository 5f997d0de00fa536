/*
File    : pidgin-go/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenize_Arithmetic(t *testing.T) {
	tokens, err := Tokenize("1 + 2 * 3;")
	require.NoError(t, err)

	want := []TokenType{NUMBER, PLUS, NUMBER, STAR, NUMBER, SEMICOLON, EOF}
	require.Len(t, tokens, len(want))
	for i, tt := range want {
		require.Equalf(t, tt, tokens[i].Type, "token %d", i)
	}
}

func TestTokenize_Keywords_CaseInsensitive(t *testing.T) {
	for _, src := range []string{"if", "IF", "If", "iF"} {
		tokens, err := Tokenize(src)
		require.NoError(t, err)
		require.Equal(t, IF, tokens[0].Type)
		require.Equal(t, src, tokens[0].Literal)
	}
}

func TestTokenize_CompoundOperators(t *testing.T) {
	tokens, err := Tokenize("== != <= >= -> <-")
	require.NoError(t, err)
	want := []TokenType{EQ, NOTEQ, LTEQ, GTEQ, ARROW, LARROW, EOF}
	for i, tt := range want {
		require.Equalf(t, tt, tokens[i].Type, "token %d", i)
	}
}

func TestTokenize_StringEscapes(t *testing.T) {
	tokens, err := Tokenize(`"a\nb\tc\\d\"e\qf"`)
	require.NoError(t, err)
	require.Equal(t, STRING, tokens[0].Type)
	require.Equal(t, "a\nb\tc\\d\"e\\qf", tokens[0].Literal)
}

func TestTokenize_UnterminatedString(t *testing.T) {
	_, err := Tokenize(`"abc`)
	require.Error(t, err)
}

func TestTokenize_Comment(t *testing.T) {
	tokens, err := Tokenize("1 // a comment\n+ 2")
	require.NoError(t, err)
	want := []TokenType{NUMBER, NEWLINE, PLUS, NUMBER, EOF}
	for i, tt := range want {
		require.Equalf(t, tt, tokens[i].Type, "token %d", i)
	}
}

func TestTokenize_EmptySource(t *testing.T) {
	tokens, err := Tokenize("")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	require.Equal(t, EOF, tokens[0].Type)
}

func TestTokenize_Positions(t *testing.T) {
	tokens, err := Tokenize("let x\n  = 1;")
	require.NoError(t, err)
	require.Equal(t, 1, tokens[0].Line)
	require.Equal(t, 1, tokens[0].Column)
	// "=" sits on line 2, after two spaces of indentation.
	var eq Token
	for _, tok := range tokens {
		if tok.Type == ASSIGN {
			eq = tok
		}
	}
	require.Equal(t, 2, eq.Line)
	require.Equal(t, 3, eq.Column)
}

func TestTokenize_UnexpectedCharacter(t *testing.T) {
	_, err := Tokenize("1 $ 2")
	require.Error(t, err)
}
