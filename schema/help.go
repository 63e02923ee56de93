package schema

import (
	"time"
)

const (
	HelpRequestCollection = "requests"
)

const (
	HelpPending    = "pending"
	HelpInProgress = "in-progress"
	HelpCompleted  = "completed"
)

type Priority string

const (
	PriorityNormal Priority = "Normal"
	PriorityHigh   Priority = "High"
)

type Unit string

const (
	UnitMedical     Unit = "Medical"
	UnitWaterRescue Unit = "Water Rescue"
	UnitSupply      Unit = "Supply"
	UnitGeneral     Unit = "General"
)

// Location is where help is needed. Coordinates are only present once the
// address has been geocoded.
type Location struct {
	Address string   `json:"address" bson:"address"`
	Lat     *float64 `json:"lat,omitempty" bson:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty" bson:"lng,omitempty"`
}

// HelpRequestCandidate is a parsed help request waiting for an operator to
// review it.
type HelpRequestCandidate struct {
	Name        string   `json:"name"`
	Phone       string   `json:"phone"`
	Location    Location `json:"location"`
	PeopleCount int      `json:"peopleCount"`
	Needs       []string `json:"needs"`
	Note        string   `json:"note"`
	Priority    Priority `json:"priority"`
}

// HelpRequest is a persisted request handled from the dashboard
type HelpRequest struct {
	ID           string    `json:"id" bson:"id"`
	Name         string    `json:"name" bson:"name"`
	Phone        string    `json:"phone" bson:"phone"`
	Location     Location  `json:"location" bson:"location"`
	PeopleCount  int       `json:"peopleCount" bson:"people_count"`
	Needs        []string  `json:"needs" bson:"needs"`
	Note         string    `json:"note,omitempty" bson:"note,omitempty"`
	Status       string    `json:"status" bson:"status"`
	AssignedUnit Unit      `json:"assignedUnit" bson:"assigned_unit"`
	Priority     Priority  `json:"priority" bson:"priority"`
	Timestamp    time.Time `json:"timestamp" bson:"ts"`
}

// HelpRequestUpdate lists the fields staff may change on a request. Nil
// fields are left untouched.
type HelpRequestUpdate struct {
	Status       *string   `json:"status" bson:"status,omitempty"`
	AssignedUnit *Unit     `json:"assignedUnit" bson:"assigned_unit,omitempty"`
	Priority     *Priority `json:"priority" bson:"priority,omitempty"`
	Note         *string   `json:"note" bson:"note,omitempty"`
	PeopleCount  *int      `json:"peopleCount" bson:"people_count,omitempty"`
	Needs        []string  `json:"needs" bson:"needs,omitempty"`
}

func (u HelpRequestUpdate) Empty() bool {
	return u.Status == nil && u.AssignedUnit == nil && u.Priority == nil &&
		u.Note == nil && u.PeopleCount == nil && u.Needs == nil
}
