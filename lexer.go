package minnow

// file lexer.go contains the scanner that turns Minnow source text into a
// token sequence. Scanning is a single left-to-right pass with no
// backtracking; the first lexical problem stops the scan entirely.

import "strconv"

func isIdentStart(ch rune) bool {
	return ch == '_' || ('A' <= ch && ch <= 'Z') || ('a' <= ch && ch <= 'z')
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

// tokenize scans the entire source string into a token sequence ending with
// exactly one tcEndOfText token. On a lexical error it returns a nil sequence
// and the diagnostic describing the problem; no partial sequence is produced.
//
// Lines and columns are 1-based. A newline advances the line counter and
// resets the column; every other character, tabs included, counts as one
// column.
func tokenize(s string) ([]token, *Diagnostic) {
	sRunes := []rune(s)

	var tokens []token

	curLine := 1
	curCol := 1

	for i := 0; i < len(sRunes); {
		ch := sRunes[i]

		// whitespace
		if ch == ' ' || ch == '\t' || ch == '\r' {
			curCol++
			i++
			continue
		}
		if ch == '\n' {
			curLine++
			curCol = 1
			i++
			continue
		}

		// line comment; runs through the end of the line. The newline itself
		// is left for the whitespace case so line counting stays in one
		// place.
		if ch == '/' && i+1 < len(sRunes) && sRunes[i+1] == '/' {
			for i < len(sRunes) && sRunes[i] != '\n' {
				i++
				curCol++
			}
			continue
		}

		// identifiers and keywords
		if isIdentStart(ch) {
			start := i
			startCol := curCol
			for i < len(sRunes) && isIdentPart(sRunes[i]) {
				i++
				curCol++
			}

			lexeme := string(sRunes[start:i])
			if len(lexeme) > maxLexemeLen {
				lexeme = lexeme[:maxLexemeLen]
			}

			tok := token{lexeme: lexeme, line: curLine, col: startCol}
			switch lexeme {
			case "int":
				tok.class = tcInt
			case "print":
				tok.class = tcPrint
			default:
				tok.class = tcIdentifier
			}

			tokens = append(tokens, tok)
			continue
		}

		// integer literals
		if isDigit(ch) {
			start := i
			startCol := curCol
			for i < len(sRunes) && isDigit(sRunes[i]) {
				i++
				curCol++
			}

			// a literal runs straight into a letter or underscore; "12abc"
			// is neither a number nor an identifier
			if i < len(sRunes) && isIdentStart(sRunes[i]) {
				d := Diagnostic{
					Category: Lexical,
					Line:     curLine,
					Col:      startCol,
					Message:  "invalid token '" + string(sRunes[i]) + "' after integer literal",
				}
				return nil, &d
			}

			lexeme := string(sRunes[start:i])
			if len(lexeme) > maxLexemeLen {
				lexeme = lexeme[:maxLexemeLen]
			}
			val, _ := strconv.Atoi(lexeme)

			tokens = append(tokens, token{
				class:  tcNumber,
				lexeme: lexeme,
				intVal: val,
				line:   curLine,
				col:    startCol,
			})
			continue
		}

		// single-character tokens
		var class tokenClass
		switch ch {
		case '=':
			class = tcAssign
		case '+':
			class = tcPlus
		case '-':
			class = tcMinus
		case '*':
			class = tcStar
		case '/':
			class = tcSlash
		case '(':
			class = tcLeftParen
		case ')':
			class = tcRightParen
		case ';':
			class = tcSemicolon
		default:
			d := Diagnostic{
				Category: Lexical,
				Line:     curLine,
				Col:      curCol,
				Message:  "unexpected character '" + string(ch) + "'",
			}
			return nil, &d
		}

		tokens = append(tokens, token{
			class:  class,
			lexeme: string(ch),
			line:   curLine,
			col:    curCol,
		})
		i++
		curCol++
	}

	// add special end-of-text token
	tokens = append(tokens, token{
		class:  tcEndOfText,
		lexeme: "EOF",
		line:   curLine,
		col:    curCol,
	})

	return tokens, nil
}
