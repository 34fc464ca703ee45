package language

import (
	"fmt"
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokenIdent tokenKind = iota
	tokenNumber
	tokenString
	tokenPunct
	tokenOpen
	tokenClose
)

// scanToken is a lexical token with its span in native (one-based) coords.
type scanToken struct {
	kind  tokenKind
	text  string
	start Location
	end   Location
}

// punctuation accepted by both dialects outside of strings and comments.
// Delimiters are tokenized separately.
const punctRunes = "=;,.+-*/%<>!&|:~?@$"

// scanner walks a text rune by rune, tracking native coordinates.
type scanner struct {
	src    []rune
	pos    int
	line   uint32
	column uint32

	tokens []scanToken
	errors []RawError
}

func newScanner(text string) *scanner {
	return &scanner{src: []rune(text), line: 1, column: 1}
}

func (s *scanner) here() Location {
	return Location{Line: s.line, Column: s.column}
}

func (s *scanner) done() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() rune {
	if s.done() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) advance() rune {
	r := s.src[s.pos]
	s.pos++
	if r == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return r
}

func (s *scanner) emit(kind tokenKind, text string, start Location) {
	s.tokens = append(s.tokens, scanToken{
		kind:  kind,
		text:  text,
		start: start,
		end:   s.here(),
	})
}

func (s *scanner) fail(start Location, callout, hint string) {
	s.errors = append(s.errors, RawError{
		Start:   start,
		End:     s.here(),
		Callout: callout,
		Level:   SeverityError,
		Hint:    hint,
	})
}

// scan tokenizes text. Lexical problems are collected alongside the tokens
// so structural checks can still run over what was recognized.
func scan(text string) ([]scanToken, []RawError) {
	s := newScanner(text)
	for !s.done() {
		start := s.here()
		r := s.peek()
		switch {
		case r == '\n' || unicode.IsSpace(r):
			s.advance()
		case r == '#':
			s.skipComment()
		case r == '"':
			s.scanString(start)
		case r == '_' || unicode.IsLetter(r):
			s.scanIdent(start)
		case unicode.IsDigit(r):
			s.scanNumber(start)
		case strings.ContainsRune("([{", r):
			s.advance()
			s.emit(tokenOpen, string(r), start)
		case strings.ContainsRune(")]}", r):
			s.advance()
			s.emit(tokenClose, string(r), start)
		case strings.ContainsRune(punctRunes, r):
			s.scanPunct(start)
		default:
			s.advance()
			s.fail(start,
				fmt.Sprintf("invalid character `%c`", r),
				"this character cannot appear outside of strings and comments")
		}
	}
	return s.tokens, s.errors
}

func (s *scanner) skipComment() {
	for !s.done() && s.peek() != '\n' {
		s.advance()
	}
}

func (s *scanner) scanIdent(start Location) {
	var b strings.Builder
	for !s.done() {
		r := s.peek()
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		b.WriteRune(s.advance())
	}
	s.emit(tokenIdent, b.String(), start)
}

func (s *scanner) scanNumber(start Location) {
	var b strings.Builder
	seenDot := false
	for !s.done() {
		r := s.peek()
		if r == '.' && !seenDot {
			seenDot = true
		} else if r != '_' && !unicode.IsDigit(r) {
			break
		}
		b.WriteRune(s.advance())
	}
	s.emit(tokenNumber, b.String(), start)
}

// scanPunct recognizes `::` as a single token; everything else in the punct
// set is a one-rune token.
func (s *scanner) scanPunct(start Location) {
	r := s.advance()
	if r == ':' && s.peek() == ':' {
		s.advance()
		s.emit(tokenPunct, "::", start)
		return
	}
	s.emit(tokenPunct, string(r), start)
}

// scanString handles both plain one-line strings and `"""` heredocs.
func (s *scanner) scanString(start Location) {
	s.advance() // opening quote
	if s.peek() == '"' {
		s.advance()
		if s.peek() != '"' {
			// Empty string, not a heredoc opener.
			s.emit(tokenString, "", start)
			return
		}
		s.advance()
		s.scanHeredoc(start)
		return
	}

	var b strings.Builder
	for !s.done() {
		r := s.peek()
		if r == '\n' {
			break
		}
		s.advance()
		if r == '\\' && !s.done() {
			b.WriteRune(s.advance())
			continue
		}
		if r == '"' {
			s.emit(tokenString, b.String(), start)
			return
		}
		b.WriteRune(r)
	}
	s.fail(start,
		"unterminated string literal",
		`close the string with `+"`\"`"+` before the end of the line`)
}

func (s *scanner) scanHeredoc(start Location) {
	var b strings.Builder
	quotes := 0
	for !s.done() {
		r := s.advance()
		if r == '"' {
			quotes++
			if quotes == 3 {
				s.emit(tokenString, b.String(), start)
				return
			}
			continue
		}
		for ; quotes > 0; quotes-- {
			b.WriteRune('"')
		}
		b.WriteRune(r)
	}
	s.fail(start,
		"unterminated heredoc",
		"close the heredoc with `\"\"\"`")
}
