package domain

import "time"

// OrderRecord is a single delivery order loaded from the dataset.
type OrderRecord struct {
	OrderID      string
	Platform     string
	Category     string
	OrderValue   float64 // INR
	DeliveryTime float64 // minutes
	Rating       float64
	Timestamp    time.Time // zero when the dataset has no timestamp column
}

// ScoredOrder annotates a record with its order-value z-score relative to
// the whole dataset.
type ScoredOrder struct {
	OrderRecord
	ValueZScore float64
}

// Dataset is an ordered collection of order records. It is immutable for
// the duration of a report run.
type Dataset struct {
	Source  string
	Records []OrderRecord
}

func (d *Dataset) Len() int {
	return len(d.Records)
}

// Platforms returns the distinct platform names in first-seen order.
func (d *Dataset) Platforms() []string {
	return d.distinct(func(r OrderRecord) string { return r.Platform })
}

// Categories returns the distinct product categories in first-seen order.
func (d *Dataset) Categories() []string {
	return d.distinct(func(r OrderRecord) string { return r.Category })
}

func (d *Dataset) distinct(field func(OrderRecord) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range d.Records {
		v := field(r)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
