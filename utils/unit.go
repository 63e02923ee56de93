package utils

import (
	"github.com/floodrelief/relief-api/consts"
	"github.com/floodrelief/relief-api/schema"
)

// AssignUnit picks the responding unit and priority for a request submitted
// through the form. Medicine outranks evacuation, which outranks supplies.
func AssignUnit(needs []string) (schema.Unit, schema.Priority) {
	var evacuation, supply bool
	for _, n := range needs {
		switch n {
		case consts.FormNeedMedicine:
			return schema.UnitMedical, schema.PriorityHigh
		case consts.FormNeedEvacuation:
			evacuation = true
		case consts.FormNeedFoodAndWater, consts.FormNeedClothing:
			supply = true
		}
	}

	if evacuation {
		return schema.UnitWaterRescue, schema.PriorityHigh
	}
	if supply {
		return schema.UnitSupply, schema.PriorityNormal
	}
	return schema.UnitGeneral, schema.PriorityNormal
}
