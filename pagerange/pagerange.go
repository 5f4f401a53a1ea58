// Package pagerange parses page specification strings such as
// "1-3,5,7-9" into ordered sequences of 1-indexed page numbers.
//
// Parsing is pure: it knows nothing about any particular document, and
// in particular does not bound page numbers against a page count. That
// validation belongs to the caller.
package pagerange

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Sentinel errors for malformed page specifications.
var (
	ErrSyntax = errors.New("pagerange: malformed page specification")
	ErrValue  = errors.New("pagerange: page numbers must be positive integers")
	ErrOrder  = errors.New("pagerange: range start exceeds range end")
)

// Parse expands spec into the sequence of 1-indexed page numbers it
// denotes, preserving token order and duplicates exactly as written:
// "3,1-2,1" yields [3 1 2 1].
//
// The grammar is a comma-separated list of tokens, each either a single
// positive integer or an inclusive range "start-end" with start <= end.
// Whitespace is ignored. An empty spec yields an empty sequence; empty
// tokens ("1,,2") are a syntax error.
func Parse(spec string) ([]int, error) {
	spec = stripSpace(spec)
	if spec == "" {
		return nil, nil
	}

	var pages []int
	for _, token := range strings.Split(spec, ",") {
		expanded, err := expandToken(token)
		if err != nil {
			return nil, err
		}
		pages = append(pages, expanded...)
	}
	return pages, nil
}

func expandToken(token string) ([]int, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: empty token", ErrSyntax)
	}

	switch strings.Count(token, "-") {
	case 0:
		page, err := parsePageNumber(token, token)
		if err != nil {
			return nil, err
		}
		return []int{page}, nil
	case 1:
		startStr, endStr, _ := strings.Cut(token, "-")
		start, err := parsePageNumber(startStr, token)
		if err != nil {
			return nil, err
		}
		end, err := parsePageNumber(endStr, token)
		if err != nil {
			return nil, err
		}
		if start > end {
			return nil, fmt.Errorf("%w: %q (%d > %d)", ErrOrder, token, start, end)
		}
		pages := make([]int, 0, end-start+1)
		for p := start; p <= end; p++ {
			pages = append(pages, p)
		}
		return pages, nil
	default:
		return nil, fmt.Errorf("%w: %q has more than one '-'", ErrSyntax, token)
	}
}

// parsePageNumber parses one side of a token as a base-10 positive
// integer. token is the full token, for error messages.
func parsePageNumber(s, token string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: %q is missing a page number", ErrSyntax, token)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q is not a number in %q", ErrValue, s, token)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: got %q in %q", ErrValue, s, token)
	}
	return n, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
