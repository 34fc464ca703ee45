package language

import (
	"fmt"
	"sort"
)

var matching = map[string]string{")": "(", "]": "[", "}": "{"}
var closing = map[string]string{"(": ")", "[": "]", "{": "}"}

// checkDelimiters verifies that (), [] and {} nest properly.
func checkDelimiters(tokens []scanToken) []RawError {
	var errs []RawError
	var stack []scanToken

	for _, tok := range tokens {
		switch tok.kind {
		case tokenOpen:
			stack = append(stack, tok)
		case tokenClose:
			if len(stack) == 0 {
				errs = append(errs, RawError{
					Start:   tok.start,
					End:     tok.end,
					Callout: fmt.Sprintf("unexpected closing delimiter `%s`", tok.text),
					Level:   SeverityError,
					Hint:    "there is no matching opening delimiter",
				})
				continue
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if matching[tok.text] != open.text {
				errs = append(errs, RawError{
					Start:   tok.start,
					End:     tok.end,
					Callout: fmt.Sprintf("found `%s` but expected `%s`", tok.text, closing[open.text]),
					Level:   SeverityError,
					Hint: fmt.Sprintf("to close the `%s` opened at line %d, column %d",
						open.text, open.start.Line, open.start.Column),
				})
			}
		}
	}

	for _, open := range stack {
		errs = append(errs, RawError{
			Start:   open.start,
			End:     open.end,
			Callout: fmt.Sprintf("unclosed delimiter `%s`", open.text),
			Level:   SeverityError,
			Hint:    fmt.Sprintf("expected `%s` before the end of the input", closing[open.text]),
		})
	}
	return errs
}

// statement returns the tokens from index i up to (excluding) the next `;`,
// plus the index just past the statement.
func statement(tokens []scanToken, i int) ([]scanToken, int) {
	for j := i; j < len(tokens); j++ {
		if tokens[j].kind == tokenPunct && tokens[j].text == ";" {
			return tokens[i:j], j + 1
		}
	}
	return tokens[i:], len(tokens)
}

func containsIdent(tokens []scanToken, name string) bool {
	for _, tok := range tokens {
		if tok.kind == tokenIdent && tok.text == name {
			return true
		}
	}
	return false
}

// checkLet flags `let` bindings that never bind: a statement starting with
// `let` must contain an `=` before its terminating `;`.
func checkLet(tokens []scanToken) []RawError {
	var errs []RawError
	for i := 0; i < len(tokens); {
		stmt, next := statement(tokens, i)
		i = next
		if len(stmt) == 0 || stmt[0].kind != tokenIdent || stmt[0].text != "let" {
			continue
		}
		bound := false
		for _, tok := range stmt[1:] {
			if tok.kind == tokenPunct && tok.text == "=" {
				bound = true
				break
			}
		}
		if !bound {
			errs = append(errs, RawError{
				Start:   stmt[0].start,
				End:     stmt[0].end,
				Callout: "`let` binding without `=`",
				Level:   SeverityError,
				Hint:    "bind a value, e.g. `let x = 42`",
			})
		}
	}
	return errs
}

// checkSelect flags `select` statements that lack a `from` or `into` clause.
func checkSelect(tokens []scanToken) []RawError {
	var errs []RawError
	for i := 0; i < len(tokens); {
		stmt, next := statement(tokens, i)
		i = next
		if len(stmt) == 0 || stmt[0].kind != tokenIdent || stmt[0].text != "select" {
			continue
		}
		for _, clause := range []string{"from", "into"} {
			if !containsIdent(stmt[1:], clause) {
				errs = append(errs, RawError{
					Start:   stmt[0].start,
					End:     stmt[0].end,
					Callout: fmt.Sprintf("`select` statement is missing its `%s` clause", clause),
					Level:   SeverityError,
					Hint:    "e.g. `select event from in into out`",
				})
			}
		}
	}
	return errs
}

// sortErrors orders errors by document position, keeping insertion order for
// ties so lexical and structural findings interleave deterministically.
func sortErrors(errs []RawError) []RawError {
	sort.SliceStable(errs, func(i, j int) bool {
		if errs[i].Start.Line != errs[j].Start.Line {
			return errs[i].Start.Line < errs[j].Start.Line
		}
		return errs[i].Start.Column < errs[j].Start.Column
	})
	return errs
}
