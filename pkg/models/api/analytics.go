package api

// Overview is the dataset summary returned by GET /api/v1/overview.
type Overview struct {
	TotalOrders int `json:"total_orders"`
	Platforms   int `json:"platforms"`
	Categories  int `json:"categories"`
}

// StatsRow is one group of an aggregate table.
type StatsRow struct {
	Key    string             `json:"key"`
	Values map[string]float64 `json:"values"`
}

// StatsTable is the wire form of a grouped aggregate. Rows preserve the
// table's key order.
type StatsTable struct {
	GroupColumn string     `json:"group_column"`
	Columns     []string   `json:"columns"`
	Rows        []StatsRow `json:"rows"`
}

// Correlation is the wire form of a correlation matrix.
type Correlation struct {
	Metrics []string    `json:"metrics"`
	Values  [][]float64 `json:"values"`
}

// OrderPoint is one raw order as plotted by the dashboard, with its
// order-value z-score attached.
type OrderPoint struct {
	OrderID      string  `json:"order_id"`
	Platform     string  `json:"platform"`
	Category     string  `json:"category"`
	OrderValue   float64 `json:"order_value"`
	DeliveryTime float64 `json:"delivery_time"`
	Rating       float64 `json:"rating"`
	ValueZScore  float64 `json:"value_z_score"`
}

// Report points at a generated document on disk.
type Report struct {
	Path string `json:"path"`
}
