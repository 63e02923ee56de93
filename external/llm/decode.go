package llm

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/floodrelief/relief-api/parser"
	"github.com/floodrelief/relief-api/schema"
)

var (
	phoneSeparators = regexp.MustCompile(`[-\s]`)
	leadingNumber   = regexp.MustCompile(`^\s*[+-]?\d+`)
)

// DecodeCandidates reads the bracketed JSON array out of a model reply. The
// model may wrap the array in commentary; everything outside the outermost
// brackets is ignored. Elements that are not objects are dropped and every
// field of the remaining ones is coerced and defaulted.
func DecodeCandidates(reply string) ([]schema.HelpRequestCandidate, error) {
	start := strings.Index(reply, "[")
	end := strings.LastIndex(reply, "]")
	if start < 0 || end < start {
		return nil, &ParseError{Fragment: fragment(reply), Err: ErrNoJSONArray}
	}

	span := reply[start : end+1]

	d := json.NewDecoder(strings.NewReader(span))
	d.UseNumber()

	var items []interface{}
	if err := d.Decode(&items); err != nil {
		return nil, &ParseError{Fragment: fragment(span), Err: err}
	}

	candidates := make([]schema.HelpRequestCandidate, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		candidates = append(candidates, candidateFromObject(obj))
	}

	return candidates, nil
}

func candidateFromObject(obj map[string]interface{}) schema.HelpRequestCandidate {
	address, lat, lng := coerceLocation(obj["location"])

	c := parser.Draft{
		Name:        coerceString(obj["name"]),
		Phone:       phoneSeparators.ReplaceAllString(coerceString(obj["phone"]), ""),
		Address:     address,
		PeopleCount: coerceInt(obj["peopleCount"]),
		Needs:       coerceStrings(obj["needs"]),
		Note:        coerceString(obj["note"]),
		Priority:    schema.Priority(coerceString(obj["priority"])),
	}.Finalize()

	c.Location.Lat = lat
	c.Location.Lng = lng
	return c
}

func fragment(s string) string {
	r := []rune(s)
	if len(r) > fragmentLength {
		r = r[:fragmentLength]
	}
	return string(r)
}

func coerceString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	default:
		return ""
	}
}

func coerceInt(v interface{}) int {
	switch t := v.(type) {
	case json.Number:
		if f, err := t.Float64(); err == nil && f < math.MaxInt32 {
			return int(f)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(leadingNumber.FindString(t))); err == nil {
			return n
		}
	}
	return 0
}

func coerceFloat(v interface{}) *float64 {
	if n, ok := v.(json.Number); ok {
		if f, err := n.Float64(); err == nil {
			return &f
		}
	}
	return nil
}

func coerceStrings(v interface{}) []string {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}

	values := make([]string, 0, len(list))
	for _, item := range list {
		if s := coerceString(item); s != "" {
			values = append(values, s)
		}
	}
	return values
}

// coerceLocation accepts either a plain address string or an object with an
// address and optional coordinates.
func coerceLocation(v interface{}) (string, *float64, *float64) {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), nil, nil
	case map[string]interface{}:
		return coerceString(t["address"]), coerceFloat(t["lat"]), coerceFloat(t["lng"])
	default:
		return "", nil, nil
	}
}
