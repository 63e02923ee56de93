// Package parser turns pasted text into records an operator can review before
// they are saved: free-text help messages become help request candidates and
// shelter roster exports become evacuee records.
//
// Every function in this package is pure. Nothing here logs, touches the
// network or keeps state between calls.
package parser

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/floodrelief/relief-api/schema"
)

// Extractor turns a block of pasted messages into help request candidates
type Extractor interface {
	Extract(ctx context.Context, text string) ([]schema.HelpRequestCandidate, error)
}

// RuleExtractor is the Extractor backed by ParseRequests. It never fails.
type RuleExtractor struct{}

func (RuleExtractor) Extract(_ context.Context, text string) ([]schema.HelpRequestCandidate, error) {
	return ParseRequests(text), nil
}

// prepare brings pasted text into the shape the patterns expect: NFC form,
// LF line endings and plain ASCII spaces.
func prepare(text string) string {
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	return strings.Map(func(r rune) rune {
		if r != ' ' && unicode.Is(unicode.Zs, r) {
			return ' '
		}
		return r
	}, text)
}

func runeLen(s string) int {
	return len([]rune(s))
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
