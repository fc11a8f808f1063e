package minnow

import "strconv"

// maxLexemeLen is the longest lexeme that will be preserved in a token.
// Identifiers and literals longer than this are truncated, not rejected.
const maxLexemeLen = 255

// tokenClass identifies the kind of a token produced by the lexer.
type tokenClass int

const (
	tcInt tokenClass = iota
	tcPrint
	tcIdentifier
	tcNumber
	tcAssign
	tcPlus
	tcMinus
	tcStar
	tcSlash
	tcLeftParen
	tcRightParen
	tcSemicolon
	tcEndOfText
	tcUnknown
)

// String returns the name of the token class as it should appear in
// diagnostics presented to the user.
func (tc tokenClass) String() string {
	switch tc {
	case tcInt:
		return "keyword 'int'"
	case tcPrint:
		return "keyword 'print'"
	case tcIdentifier:
		return "identifier"
	case tcNumber:
		return "integer literal"
	case tcAssign:
		return "'='"
	case tcPlus:
		return "'+'"
	case tcMinus:
		return "'-'"
	case tcStar:
		return "'*'"
	case tcSlash:
		return "'/'"
	case tcLeftParen:
		return "'('"
	case tcRightParen:
		return "')'"
	case tcSemicolon:
		return "';'"
	case tcEndOfText:
		return "end of file"
	case tcUnknown:
		return "unknown token"
	default:
		return "tokenClass(" + strconv.Itoa(int(tc)) + ")"
	}
}

// token is a single lexical unit scanned from source text. Tokens are created
// once by tokenize and never modified after that.
type token struct {
	class  tokenClass
	lexeme string

	// intVal is only set for tcNumber tokens.
	intVal int

	// line and col are the 1-based source position of the first character of
	// the lexeme. They are used only for diagnostics.
	line int
	col  int
}
