package enums

type Purpose string

const (
	PurposePortfolio    Purpose = "PORTFOLIO"
	PurposeCommercial   Purpose = "COMMERCIAL"
	PurposeEditorial    Purpose = "EDITORIAL"
	PurposeFashion      Purpose = "FASHION"
	PurposeBeauty       Purpose = "BEAUTY"
	PurposeLifestyle    Purpose = "LIFESTYLE"
	PurposeWedding      Purpose = "WEDDING"
	PurposeEvent        Purpose = "EVENT"
	PurposeProduct      Purpose = "PRODUCT"
	PurposeArchitecture Purpose = "ARCHITECTURE"
	PurposeStreet       Purpose = "STREET"
	PurposeConceptual   Purpose = "CONCEPTUAL"
	PurposeOther        Purpose = "OTHER"
)

var purposeOrder = []Purpose{
	PurposePortfolio, PurposeCommercial, PurposeEditorial, PurposeFashion,
	PurposeBeauty, PurposeLifestyle, PurposeWedding, PurposeEvent,
	PurposeProduct, PurposeArchitecture, PurposeStreet, PurposeConceptual,
	PurposeOther,
}

func Purposes() []Purpose {
	out := make([]Purpose, len(purposeOrder))
	copy(out, purposeOrder)
	return out
}

func (p Purpose) Valid() bool {
	for _, known := range purposeOrder {
		if p == known {
			return true
		}
	}
	return false
}

func (p Purpose) Label() string {
	return humanize(string(p))
}
