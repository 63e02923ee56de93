package parser

import (
	"regexp"
	"strings"

	"github.com/floodrelief/relief-api/consts"
)

// fieldRule extracts one field from a message. Rules of a field are tried in
// order and the first non-empty result wins.
type fieldRule struct {
	name    string
	extract func(msg string) (string, bool)
}

// needRule tags a message with a need when its pattern matches
type needRule struct {
	tag     string
	pattern *regexp.Regexp
}

const localityKeywords = `ม\.|หมู่|ซอย|ถนน|ต\.|ตำบล|แขวง|อ\.|อำเภอ|เขต|จ\.|จังหวัด`

var (
	messageSeparator = regexp.MustCompile(`\n\n+|\n-{3,}\n`)

	phonePattern     = regexp.MustCompile(`0[0-9]{1,2}[-\s]?[0-9]{3,4}[-\s]?[0-9]{4}`)
	phoneSeparators  = regexp.MustCompile(`[-\s]`)
	namePattern      = regexp.MustCompile(`(?:ชื่อ[:\s]+)?([ก-๙a-zA-Z \t]{3,30})`)
	peoplePattern    = regexp.MustCompile(`([0-9]+)\s*(?:คน|ท่าน|ครอบครัว)`)
	urgencyPattern   = regexp.MustCompile(`(?i)ด่วน|เร่งด่วน|ฉุกเฉิน|คริติคอล`)
	addressNoise     = regexp.MustCompile(`(?i)กรุณา|ช่วยด้วย|ด่วน`)
	whitespaceRun    = regexp.MustCompile(`\s+`)
	addressLabel     = regexp.MustCompile(`(?i)(?:ที่อยู่|ที่อยุ่|อยู่|บ้าน|สถานที่)[:\s]+([^\n]+)`)
	houseNumber      = regexp.MustCompile(`(?i)(?:เลขที่|บ้านเลขที่|เลข)\s*[\d/\-]+[^\n]*`)
	localityLines    = regexp.MustCompile(`^(?:\n[^\n]*(?:` + localityKeywords + `)[^\n]*){0,3}`)
	localityAnchor   = regexp.MustCompile(`(?i)(?:ม\.\s*\d+|หมู่\s*\d+|ซอย[^\s,]+|ถนน[^\s,]+)[^\n]*(?:\n(?:ต\.|ตำบล|แขวง|อ\.|อำเภอ|เขต|จ\.|จังหวัด)[^\n]+)*`)
	localityFallback = regexp.MustCompile(`(?i)((?:ซอย|ถนน|ตำบล|อำเภอ|จังหวัด|เขต|แขวง)[^\n]{10,80})`)
)

// labelledFieldPrefixes start a line that belongs to another field, which
// ends a multi-line address.
var labelledFieldPrefixes = []string{"ชื่อ", "เบอร์", "จำนวน", "ต้องการ"}

var phoneRules = []fieldRule{
	{name: "thai_local_number", extract: func(msg string) (string, bool) {
		m := phonePattern.FindString(msg)
		if m == "" {
			return "", false
		}
		return phoneSeparators.ReplaceAllString(m, ""), true
	}},
}

var nameRules = []fieldRule{
	{name: "labelled_or_leading_name", extract: func(msg string) (string, bool) {
		m := namePattern.FindStringSubmatch(msg)
		if m == nil {
			return "", false
		}
		return strings.TrimSpace(m[1]), true
	}},
}

// addressRules capture a raw address which is cleaned and length-checked
// afterwards.
var addressRules = []fieldRule{
	{name: "address_label", extract: labelledAddress},
	{name: "house_number", extract: houseNumberAddress},
	{name: "locality_keyword", extract: func(msg string) (string, bool) {
		m := localityAnchor.FindString(msg)
		return strings.TrimSpace(m), m != ""
	}},
}

// addressFallbackRules run when addressRules found nothing usable
var addressFallbackRules = []fieldRule{
	{name: "locality_span", extract: func(msg string) (string, bool) {
		m := localityFallback.FindStringSubmatch(msg)
		if m == nil {
			return "", false
		}
		return strings.TrimSpace(m[1]), true
	}},
}

var peopleRules = []fieldRule{
	{name: "count_with_unit", extract: func(msg string) (string, bool) {
		m := peoplePattern.FindStringSubmatch(msg)
		if m == nil {
			return "", false
		}
		return m[1], true
	}},
}

var needRules = []needRule{
	{tag: consts.NeedWater, pattern: regexp.MustCompile(`(?i)น้ำ|น้ำดื่ม|น้ำสะอาด`)},
	{tag: consts.NeedFood, pattern: regexp.MustCompile(`(?i)อาหาร|ข้าว|กิน`)},
	{tag: consts.NeedMedical, pattern: regexp.MustCompile(`(?i)ยา|แพทย์|หมอ|เจ็บป่วย`)},
	{tag: consts.NeedTransport, pattern: regexp.MustCompile(`(?i)เรือ|รับ|ไป|ย้าย|อพยพ`)},
	{tag: consts.NeedClothing, pattern: regexp.MustCompile(`(?i)เสื้อผ้า|ผ้า`)},
}

// labelledAddress captures the text after an address label and keeps
// following lines until one starts another labelled field.
func labelledAddress(msg string) (string, bool) {
	loc := addressLabel.FindStringSubmatchIndex(msg)
	if loc == nil {
		return "", false
	}

	var b strings.Builder
	b.WriteString(msg[loc[2]:loc[3]])

	rest := msg[loc[1]:]
	for strings.HasPrefix(rest, "\n") {
		line := rest[1:]
		if i := strings.IndexByte(line, '\n'); i >= 0 {
			line = line[:i]
		}
		if line == "" || startsLabelledField(line) {
			break
		}

		b.WriteString("\n")
		b.WriteString(line)
		rest = rest[1+len(line):]
	}

	address := strings.TrimSpace(b.String())
	return address, address != ""
}

func startsLabelledField(line string) bool {
	for _, p := range labelledFieldPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// houseNumberAddress anchors on a house number and appends up to three
// following lines that mention a sub-area.
func houseNumberAddress(msg string) (string, bool) {
	loc := houseNumber.FindStringIndex(msg)
	if loc == nil {
		return "", false
	}

	address := msg[loc[0]:loc[1]] + localityLines.FindString(msg[loc[1]:])
	address = strings.TrimSpace(address)
	return address, address != ""
}

func firstMatch(rules []fieldRule, msg string) (string, bool) {
	for _, r := range rules {
		if v, ok := r.extract(msg); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

func cleanAddress(address string) string {
	address = addressNoise.ReplaceAllString(address, "")
	address = whitespaceRun.ReplaceAllString(address, " ")
	return strings.TrimSpace(address)
}

// minAddressLength is the length an address must exceed to be trusted
const minAddressLength = 10

func extractAddress(msg string) (string, bool) {
	if raw, ok := firstMatch(addressRules, msg); ok {
		if address := cleanAddress(raw); runeLen(address) > minAddressLength {
			return address, true
		}
	}

	return firstMatch(addressFallbackRules, msg)
}

func extractNeeds(msg string) []string {
	needs := make([]string, 0, len(needRules))
	for _, r := range needRules {
		if r.pattern.MatchString(msg) {
			needs = append(needs, r.tag)
		}
	}
	return needs
}
