package parser

import (
	"regexp"
	"strings"

	"github.com/floodrelief/relief-api/consts"
	"github.com/floodrelief/relief-api/schema"
)

var leadingInteger = regexp.MustCompile(`^[+-]?\d`)

// SplitCSVLine splits one roster line on commas outside double quotes. A
// quote character toggles quoting; there is no escape sequence. Each field is
// trimmed and loses one pair of surrounding quotes.
func SplitCSVLine(line string) []string {
	fields := make([]string, 0, 8)
	start := 0
	inQuotes := false

	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				fields = append(fields, unquoteField(line[start:i]))
				start = i + 1
			}
		}
	}

	return append(fields, unquoteField(line[start:]))
}

func unquoteField(field string) string {
	field = strings.TrimSpace(field)
	if len(field) >= 2 && strings.HasPrefix(field, `"`) && strings.HasSuffix(field, `"`) {
		field = field[1 : len(field)-1]
	}
	return field
}

// rosterOffset finds where the timestamp column starts. Exports come with or
// without a leading index or blank column; the timestamp is recognised by its
// date separator.
func rosterOffset(cols []string) (int, bool) {
	first, second := column(cols, 0), column(cols, 1)

	switch {
	case first == "" && strings.Contains(second, "/"):
		return 1, true
	case strings.Contains(first, "/"):
		return 0, true
	case strings.Contains(second, "/") && leadingInteger.MatchString(first):
		return 1, true
	default:
		return 0, false
	}
}

func column(cols []string, i int) string {
	if i < 0 || i >= len(cols) {
		return ""
	}
	return cols[i]
}

// ParseRosterLine converts one roster line into an evacuee. The second return
// value is false for header rows, malformed rows and rows missing a name.
func ParseRosterLine(line string) (schema.Evacuee, bool) {
	cols := SplitCSVLine(line)

	offset, ok := rosterOffset(cols)
	if !ok {
		return schema.Evacuee{}, false
	}

	firstName := column(cols, offset+2)
	lastName := column(cols, offset+3)
	if firstName == "" || lastName == "" || firstName == consts.RosterNameHeader {
		return schema.Evacuee{}, false
	}

	district, subDistrict := splitDistrict(column(cols, offset+5))

	return schema.Evacuee{
		Timestamp:   column(cols, offset),
		Shelter:     column(cols, offset+1),
		FirstName:   firstName,
		LastName:    lastName,
		Gender:      column(cols, offset+4),
		District:    district,
		SubDistrict: subDistrict,
		Address:     column(cols, offset+6),
		Status:      schema.EvacueeSafe,
	}, true
}

// splitDistrict splits a "district|subdistrict" column
func splitDistrict(field string) (string, string) {
	district, subDistrict := "", ""
	if field != "" {
		parts := strings.Split(field, "|")
		district = strings.TrimSpace(parts[0])
		if len(parts) > 1 {
			subDistrict = strings.TrimSpace(parts[1])
		}
	}

	if district == "" {
		district = consts.UnknownDistrict
	}
	return district, subDistrict
}

// ParseRoster parses every line of a roster export, skipping blank lines and
// lines made of commas only.
func ParseRoster(text string) []schema.Evacuee {
	text = prepare(text)
	evacuees := make([]schema.Evacuee, 0)

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if strings.TrimSpace(strings.ReplaceAll(line, ",", "")) == "" {
			continue
		}

		if e, ok := ParseRosterLine(line); ok {
			evacuees = append(evacuees, e)
		}
	}

	return evacuees
}
