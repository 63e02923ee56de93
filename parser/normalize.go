package parser

import (
	"strings"

	"github.com/floodrelief/relief-api/consts"
	"github.com/floodrelief/relief-api/schema"
)

// Draft holds whatever an extractor managed to find in one message. Zero
// values mean "not found".
type Draft struct {
	Name        string
	Phone       string
	Address     string
	PeopleCount int
	Needs       []string
	Note        string
	Priority    schema.Priority
}

// Accepted reports whether the draft has a name and a way to reach the person
func (d Draft) Accepted() bool {
	return d.Name != "" && (d.Phone != "" || d.Address != "")
}

// Finalize fills every missing field of the draft with its default. Rule
// based and AI extracted drafts both go through here.
func (d Draft) Finalize() schema.HelpRequestCandidate {
	c := schema.HelpRequestCandidate{
		Name:        strings.TrimSpace(d.Name),
		Phone:       strings.TrimSpace(d.Phone),
		Location:    schema.Location{Address: strings.TrimSpace(d.Address)},
		PeopleCount: d.PeopleCount,
		Note:        truncate(strings.TrimSpace(d.Note), consts.NoteMaxLength),
		Priority:    schema.PriorityNormal,
	}

	if c.Name == "" {
		c.Name = consts.UnnamedPlaceholder
	}

	if c.Location.Address == "" {
		c.Location.Address = consts.UnknownAddressPlaceholder
	}

	if c.PeopleCount < 1 {
		c.PeopleCount = consts.DefaultPeopleCount
	}

	for _, n := range d.Needs {
		if n = strings.TrimSpace(n); n != "" {
			c.Needs = append(c.Needs, n)
		}
	}
	if len(c.Needs) == 0 {
		c.Needs = []string{consts.NeedOther}
	}

	if d.Priority == schema.PriorityHigh {
		c.Priority = schema.PriorityHigh
	}

	return c
}

// Normalize re-applies the defaults to a candidate that came back from a
// reviewer, keeping coordinates already attached to its location.
func Normalize(c schema.HelpRequestCandidate) schema.HelpRequestCandidate {
	n := Draft{
		Name:        c.Name,
		Phone:       c.Phone,
		Address:     c.Location.Address,
		PeopleCount: c.PeopleCount,
		Needs:       c.Needs,
		Note:        c.Note,
		Priority:    c.Priority,
	}.Finalize()

	n.Location.Lat = c.Location.Lat
	n.Location.Lng = c.Location.Lng
	return n
}
