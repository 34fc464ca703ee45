package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// PathSeparator separates a namespace from a member in a qualified name.
const PathSeparator = "::"

// Token is the identifier-or-path substring ending at the cursor, split on
// the last path separator. Namespace is empty when the raw token is not
// qualified.
type Token struct {
	Raw       string
	Namespace string
	Member    string
}

// Qualified reports whether the raw token contains a path separator.
func (t Token) Qualified() bool {
	return strings.Contains(t.Raw, PathSeparator)
}

func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == ':'
}

// ExtractToken scans backward from pos for the token under or immediately
// before the cursor. The scan never extends past the cursor. It reports false
// when the cursor does not touch any token, or when pos lies outside text.
func ExtractToken(text string, pos Position, unit ColumnUnit) (Token, bool) {
	offset, ok := NewMapper(text, unit).Offset(pos)
	if !ok {
		return Token{}, false
	}
	return ExtractTokenAt(text, offset)
}

// ExtractTokenAt is ExtractToken for an absolute byte offset.
func ExtractTokenAt(text string, offset int) (Token, bool) {
	if offset < 0 || offset > len(text) {
		return Token{}, false
	}
	start := offset
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:start])
		if !isTokenRune(r) {
			break
		}
		start -= size
	}
	raw := text[start:offset]
	if raw == "" {
		return Token{}, false
	}

	tok := Token{Raw: raw, Member: raw}
	if i := strings.LastIndex(raw, PathSeparator); i >= 0 {
		tok.Namespace = raw[:i]
		tok.Member = raw[i+len(PathSeparator):]
	}
	return tok, true
}
