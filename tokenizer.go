package unidiff

// Token is a span of source text with a visual style.
type Token struct {
	Text  string
	Style Style
}

// Style describes how a token should be displayed.
type Style struct {
	Foreground string // Hex color, e.g. "#c678dd"; empty for default
	Bold       bool
	Italic     bool
}

// Tokenizer splits source code into syntax-highlighted tokens.
type Tokenizer interface {
	// Tokenize returns tokens for source in the given language, or nil if
	// the language is not supported.
	Tokenize(language, source string) []Token
}

// LanguageDetector maps a file path to a language name usable by a Tokenizer.
type LanguageDetector interface {
	// DetectFromPath returns the language for path, or "" if unknown.
	DetectFromPath(path string) string
}
