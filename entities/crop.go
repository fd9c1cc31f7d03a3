package entities

// Range is an inclusive integer interval [Lo, Hi].
type Range struct {
	Lo int `json:"lo" yaml:"lo"`
	Hi int `json:"hi" yaml:"hi"`
}

func (r Range) Valid() bool { return r.Lo <= r.Hi }

func (r Range) Contains(v int) bool { return v >= r.Lo && v <= r.Hi }

// CropCatalogEntry describes one candidate crop and its attribute ranges.
type CropCatalogEntry struct {
	ID             string   `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	Image          string   `json:"image" yaml:"image"`
	Yield          Range    `json:"yield" yaml:"yield"`                     // kg/acre
	Profit         Range    `json:"profit" yaml:"profit"`                   // currency/acre
	GrowthDuration Range    `json:"growth_duration" yaml:"growth_duration"` // days
	SuitableFor    []string `json:"suitable_for" yaml:"suitable_for"`
	Reasons        []string `json:"reasons" yaml:"reasons"`
}

func (e CropCatalogEntry) SuitsSoil(soil string) bool {
	for _, s := range e.SuitableFor {
		if s == soil {
			return true
		}
	}
	return false
}

// CropRecommendation is one ranked, sampled catalog entry.
type CropRecommendation struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Image          string   `json:"image"`
	Suitability    int      `json:"suitability"`
	Reasons        []string `json:"reasons"`
	GrowthDuration int      `json:"growthDuration"`
	YieldPerAcre   int      `json:"yieldPerAcre"`
	ProfitPerAcre  int      `json:"profitPerAcre"`
}
