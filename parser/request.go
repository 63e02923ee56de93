package parser

import (
	"strconv"
	"strings"

	"github.com/floodrelief/relief-api/consts"
	"github.com/floodrelief/relief-api/schema"
)

// minMessageLength is the trimmed length below which a segment is noise
const minMessageLength = 10

// SplitMessages splits pasted text into messages. Messages are separated by
// blank lines or by a line of three or more hyphens.
func SplitMessages(text string) []string {
	segments := messageSeparator.Split(prepare(text), -1)

	messages := make([]string, 0, len(segments))
	for _, s := range segments {
		s = strings.TrimSpace(s)
		if runeLen(s) < minMessageLength {
			continue
		}
		messages = append(messages, s)
	}
	return messages
}

// ParseRequests extracts help request candidates from pasted messages, in the
// order the messages appear. Messages without a name, or without both a phone
// number and an address, are dropped.
func ParseRequests(text string) []schema.HelpRequestCandidate {
	candidates := make([]schema.HelpRequestCandidate, 0)
	for _, msg := range SplitMessages(text) {
		if c, ok := ParseMessage(msg); ok {
			candidates = append(candidates, c)
		}
	}
	return candidates
}

// ParseMessage extracts a candidate from a single message
func ParseMessage(msg string) (schema.HelpRequestCandidate, bool) {
	msg = strings.TrimSpace(prepare(msg))
	if runeLen(msg) < minMessageLength {
		return schema.HelpRequestCandidate{}, false
	}

	d := Draft{
		Priority: schema.PriorityNormal,
		Note:     truncate(msg, consts.NoteMaxLength),
	}

	d.Phone, _ = firstMatch(phoneRules, msg)
	d.Name, _ = firstMatch(nameRules, msg)
	d.Address, _ = extractAddress(msg)

	if count, ok := firstMatch(peopleRules, msg); ok {
		if n, err := strconv.Atoi(count); err == nil {
			d.PeopleCount = n
		}
	}

	d.Needs = extractNeeds(msg)

	if urgencyPattern.MatchString(msg) {
		d.Priority = schema.PriorityHigh
	}

	if !d.Accepted() {
		return schema.HelpRequestCandidate{}, false
	}
	return d.Finalize(), true
}
