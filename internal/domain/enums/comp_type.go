package enums

type CompType string

const (
	CompTypeTFP      CompType = "TFP"
	CompTypePaid     CompType = "PAID"
	CompTypeExpenses CompType = "EXPENSES"
	CompTypeOther    CompType = "OTHER"
)

// FilterAll is the inactive value of every enum-valued gig filter.
const FilterAll = "ALL"

var compTypeLabels = map[CompType]string{
	CompTypeTFP:      "TFP (Trade for Portfolio)",
	CompTypePaid:     "Paid",
	CompTypeExpenses: "Expenses Covered",
	CompTypeOther:    "Other",
}

var compTypeIcons = map[CompType]string{
	CompTypeTFP:      "camera",
	CompTypePaid:     "dollar-sign",
	CompTypeExpenses: "video",
}

func CompTypes() []CompType {
	return []CompType{CompTypeTFP, CompTypePaid, CompTypeExpenses, CompTypeOther}
}

func (c CompType) Valid() bool {
	_, ok := compTypeLabels[c]
	return ok
}

func (c CompType) Label() string {
	if label, ok := compTypeLabels[c]; ok {
		return label
	}
	return humanize(string(c))
}

// Icon falls back to "sparkles" for OTHER and unknown values.
func (c CompType) Icon() string {
	if icon, ok := compTypeIcons[c]; ok {
		return icon
	}
	return "sparkles"
}
