package dto

type PresetResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Times       []int  `json:"times"`
	MaxGroup    int    `json:"max_group"`
}

type ListPresetsResponse struct {
	Presets []PresetResponse `json:"presets"`
}
