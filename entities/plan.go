package entities

type PlanStep struct {
	Step        int    `json:"step" yaml:"step"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon,omitempty" yaml:"icon"`
	Timeline    string `json:"timeline" yaml:"timeline"`
}

// CultivationPlan is the fixed step sequence for a crop.
type CultivationPlan struct {
	CropName   string     `json:"cropName"`
	Steps      []PlanStep `json:"steps"`
	Fallback   bool       `json:"fallback,omitempty"`
	SourceCrop string     `json:"source_crop,omitempty"`
}

// SavedPlan is the persisted shape of one entry in the saved-plan list.
type SavedPlan struct {
	CropName string     `json:"cropName"`
	Steps    []PlanStep `json:"steps"`
}
