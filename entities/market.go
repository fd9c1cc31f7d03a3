package entities

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

type RegionalPrice struct {
	Location      string `json:"location"`
	State         string `json:"state"`
	MarketName    string `json:"marketName"`
	Price         int    `json:"price"` // currency/kg
	Trend         Trend  `json:"trend"`
	PercentChange int    `json:"percentChange"`
	Label         string `json:"label,omitempty"` // Highest|Lowest
}

// MarketSnapshot aggregates the synthetic regional prices for one crop.
type MarketSnapshot struct {
	CropName        string          `json:"name"`
	CurrentPrice    int             `json:"currentPrice"` // mean of RegionalPrices, floored
	ExpectedYield   int             `json:"expectedYield"`
	ExpectedRevenue int             `json:"expectedRevenue"`
	ProfitMargin    int             `json:"profitMargin"` // percent
	Profit          int             `json:"profit"`
	Trend           Trend           `json:"trend"`
	RegionalPrices  []RegionalPrice `json:"regionalPrices"`

	// modal view only
	TrendPercentage int    `json:"trendPercentage,omitempty"`
	DemandLevel     string `json:"demandLevel,omitempty"`
	SeasonalFactor  string `json:"seasonalFactor,omitempty"`
}
