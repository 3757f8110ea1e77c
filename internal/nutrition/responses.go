package nutrition

// Nutriments holds the per-100g values the food database reports.
// Only the fields the tracker cares about are mapped.
type Nutriments struct {
	EnergyKcal100g    float64 `json:"energy-kcal_100g"`
	Proteins100g      float64 `json:"proteins_100g"`
	Carbohydrates100g float64 `json:"carbohydrates_100g"`
	Fat100g           float64 `json:"fat_100g"`
}

type Product struct {
	Code        string     `json:"code"`
	ProductName string     `json:"product_name"`
	Brands      string     `json:"brands"`
	Nutriments  Nutriments `json:"nutriments"`
}

type SearchResponse struct {
	Count    int       `json:"count"`
	Products []Product `json:"products"`
}
