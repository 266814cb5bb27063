// Package chroma provides syntax highlighting using the chroma library.
package chroma

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/unidiff"
)

// Compile-time interface verification.
var _ unidiff.Tokenizer = (*Tokenizer)(nil)

// Tokenizer extracts syntax tokens using chroma.
type Tokenizer struct{}

// NewTokenizer creates a new chroma-based tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize splits source code into syntax-highlighted tokens for the given
// language. Returns nil if the language is not supported or an error occurs,
// and an empty slice for empty source.
func (t *Tokenizer) Tokenize(language, source string) []unidiff.Token {
	if source == "" {
		return []unidiff.Token{}
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}

	// Coalesce merges consecutive tokens of the same type.
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil
	}

	var tokens []unidiff.Token
	for token := iterator(); token != chroma.EOF; token = iterator() {
		tokens = append(tokens, unidiff.Token{
			Text:  token.Value,
			Style: tokenStyle(token.Type),
		})
	}

	return tokens
}

// tokenStyle returns the visual style for a chroma token type. Colors are
// loosely based on the One Dark theme.
func tokenStyle(tt chroma.TokenType) unidiff.Style {
	switch tt {
	// Keywords
	case chroma.Keyword, chroma.KeywordConstant, chroma.KeywordDeclaration,
		chroma.KeywordNamespace, chroma.KeywordPseudo, chroma.KeywordReserved,
		chroma.KeywordType:
		return unidiff.Style{Foreground: "#c678dd", Bold: true}

	// Comments
	case chroma.Comment, chroma.CommentHashbang, chroma.CommentMultiline,
		chroma.CommentPreproc, chroma.CommentPreprocFile, chroma.CommentSingle,
		chroma.CommentSpecial:
		return unidiff.Style{Foreground: "#5c6370", Italic: true}

	// Strings (String* and LiteralString* are aliases, so only use one set)
	case chroma.String, chroma.StringAffix, chroma.StringBacktick, chroma.StringChar,
		chroma.StringDelimiter, chroma.StringDoc, chroma.StringDouble,
		chroma.StringEscape, chroma.StringHeredoc, chroma.StringInterpol,
		chroma.StringOther, chroma.StringRegex, chroma.StringSingle,
		chroma.StringSymbol:
		return unidiff.Style{Foreground: "#98c379"}

	// Numbers
	case chroma.Number, chroma.NumberBin, chroma.NumberFloat, chroma.NumberHex,
		chroma.NumberInteger, chroma.NumberIntegerLong, chroma.NumberOct:
		return unidiff.Style{Foreground: "#d19a66"}

	// Operators
	case chroma.Operator, chroma.OperatorWord:
		return unidiff.Style{Foreground: "#56b6c2"}

	// Builtin names (e.g., println, len, make)
	case chroma.NameBuiltin, chroma.NameBuiltinPseudo:
		return unidiff.Style{Foreground: "#e5c07b"}

	// Function names
	case chroma.NameFunction, chroma.NameFunctionMagic:
		return unidiff.Style{Foreground: "#61afef"}

	default:
		return unidiff.Style{}
	}
}
