package dto

type PalettesResponse struct {
	Colors []string `json:"colors"`
}

type TagsResponse struct {
	Style []string `json:"style"`
	Vibe  []string `json:"vibe"`
}

type OptionResponse struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
}

type RoleTypesResponse struct {
	Items []OptionResponse `json:"items"`
}

type SpecializationsResponse struct {
	Items []string `json:"items"`
}

type LabelsResponse struct {
	CompTypes   []OptionResponse `json:"comp_types"`
	Purposes    []OptionResponse `json:"purposes"`
	UsageRights []OptionResponse `json:"usage_rights"`
	LookingFor  []OptionResponse `json:"looking_for"`
}
