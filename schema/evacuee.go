package schema

import (
	"time"

	"github.com/google/uuid"
)

const (
	EvacueeCollection = "evacuees"
)

const (
	EvacueeSafe    = "safe"
	EvacueeDeleted = "deleted"
)

// Evacuee is one person registered at a shelter
type Evacuee struct {
	ID          string     `json:"id,omitempty" bson:"id"`
	Timestamp   string     `json:"timestamp" bson:"timestamp"`
	Shelter     string     `json:"shelter" bson:"shelter"`
	FirstName   string     `json:"firstName" bson:"first_name"`
	LastName    string     `json:"lastName" bson:"last_name"`
	Gender      string     `json:"gender" bson:"gender"`
	District    string     `json:"district" bson:"district"`
	SubDistrict string     `json:"subDistrict" bson:"sub_district"`
	Address     string     `json:"address" bson:"address"`
	Status      string     `json:"status" bson:"status"`
	ImportedAt  *time.Time `json:"importedAt,omitempty" bson:"imported_at,omitempty"`
}

type GenderCount struct {
	Gender string `json:"gender" bson:"_id"`
	Count  int    `json:"count" bson:"count"`
}

type DistrictCount struct {
	District string `json:"district" bson:"_id"`
	Count    int    `json:"count" bson:"count"`
}

// EvacueeStats summarises the registered evacuees
type EvacueeStats struct {
	Total      int             `json:"total"`
	ByGender   []GenderCount   `json:"byGender"`
	ByDistrict []DistrictCount `json:"byDistrict"`
}

// PrepareImport fills the fields the store expects on a newly imported
// evacuee. An existing id and status are kept.
func (e *Evacuee) PrepareImport(now time.Time) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Status == "" {
		e.Status = EvacueeSafe
	}
	e.ImportedAt = &now
}
