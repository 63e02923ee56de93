package consts

// Canonical need tags attached to a help request.
const (
	NeedWater     = "น้ำดื่ม"
	NeedFood      = "อาหาร"
	NeedMedical   = "ยา/การแพทย์"
	NeedTransport = "รับ-ส่ง"
	NeedClothing  = "เสื้อผ้า"
	NeedOther     = "อื่นๆ"
)

// Need options offered by the citizen request form. These drive unit
// auto-assignment and differ from the parser tags above.
const (
	FormNeedMedicine     = "ยารักษาโรค"
	FormNeedEvacuation   = "อพยพ"
	FormNeedFoodAndWater = "อาหารและน้ำดื่ม"
	FormNeedClothing     = "เสื้อผ้า"
)

// Placeholders substituted for fields a candidate is missing.
const (
	UnnamedPlaceholder        = "ไม่ระบุชื่อ"
	UnknownAddressPlaceholder = "ไม่ระบุที่อยู่"
)

const (
	// RosterNameHeader is the first-name column title of a roster export.
	RosterNameHeader = "ชื่อ"
	UnknownDistrict  = "Unknown"

	DefaultPeopleCount = 1
	NoteMaxLength      = 200

	// BulkBatchSize is the number of records inserted concurrently per batch.
	BulkBatchSize = 50

	// EvacueeSearchLimit caps the evacuee search result size.
	EvacueeSearchLimit = 50
)
