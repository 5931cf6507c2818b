package domain

// ColumnKind drives the numeric formatting of a metric column.
type ColumnKind string

const (
	ColumnCurrency ColumnKind = "currency"
	ColumnDuration ColumnKind = "duration"
	ColumnRating   ColumnKind = "rating"
	ColumnCount    ColumnKind = "count"
)

// Column describes one metric column of a StatsTable.
type Column struct {
	Name string
	Kind ColumnKind
}

// StatsTable is a grouped aggregate result: one row per group key, one
// column per metric/aggregation pair.
//
// Key order is an explicit contract: Keys returns group keys in insertion
// (first-seen) order and consumers must never re-sort them. Both report
// formats and the dashboard rely on this.
type StatsTable struct {
	GroupColumn string
	Columns     []Column

	keys []string
	rows map[string]map[string]float64
}

func NewStatsTable(groupColumn string, columns ...Column) *StatsTable {
	return &StatsTable{
		GroupColumn: groupColumn,
		Columns:     columns,
		rows:        make(map[string]map[string]float64),
	}
}

// AddRow records the aggregate values for a group key. The first AddRow
// for a key fixes its position in the iteration order.
func (t *StatsTable) AddRow(key string, values map[string]float64) {
	if _, ok := t.rows[key]; !ok {
		t.keys = append(t.keys, key)
		t.rows[key] = make(map[string]float64, len(values))
	}
	for col, v := range values {
		t.rows[key][col] = v
	}
}

// Keys returns the group keys in insertion order.
func (t *StatsTable) Keys() []string {
	return t.keys
}

func (t *StatsTable) Len() int {
	return len(t.keys)
}

// Value returns the aggregate for a key/column pair, zero when absent.
func (t *StatsTable) Value(key, column string) float64 {
	return t.rows[key][column]
}

// Overview summarizes the raw dataset. The counts come straight from the
// dataset, never derived from an aggregate table.
type Overview struct {
	TotalOrders int
	Platforms   int
	Categories  int
}

// CorrelationMatrix holds pairwise correlation coefficients over the
// numeric metrics, Values[i][j] corresponding to Metrics[i] and Metrics[j].
type CorrelationMatrix struct {
	Metrics []string
	Values  [][]float64
}
