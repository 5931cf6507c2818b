package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/delivery-atlas/pkg/models/domain"
)

// Required dataset columns. Header matching is case-insensitive and
// ignores surrounding whitespace.
const (
	ColOrderID      = "Order ID"
	ColPlatform     = "Platform"
	ColCategory     = "Product Category"
	ColOrderValue   = "Order Value (INR)"
	ColDeliveryTime = "Delivery Time (Minutes)"
	ColRating       = "Service Rating"
	ColTimestamp    = "Timestamp" // optional
)

var requiredColumns = []string{
	ColOrderID, ColPlatform, ColCategory, ColOrderValue, ColDeliveryTime, ColRating,
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// MissingColumnError reports a required dataset column absent from the
// CSV header. It surfaces before any analytics or report work begins.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("dataset is missing required column %q", e.Column)
}

// LoadDataset reads a delivery-orders CSV into an ordered dataset.
// Record order follows the file.
func LoadDataset(path string) (*domain.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	ds, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset %s: %w", path, err)
	}
	ds.Source = path
	return ds, nil
}

// Read parses CSV content from r. Split out of LoadDataset so uploads and
// tests can feed in-memory data.
func Read(r io.Reader) (*domain.Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[strings.ToLower(col)]; !ok {
			return nil, &MissingColumnError{Column: col}
		}
	}
	tsIdx, hasTimestamp := idx[strings.ToLower(ColTimestamp)]

	field := func(row []string, col string) string {
		return strings.TrimSpace(row[idx[strings.ToLower(col)]])
	}

	ds := &domain.Dataset{}
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		line++

		rec := domain.OrderRecord{
			OrderID:  field(row, ColOrderID),
			Platform: field(row, ColPlatform),
			Category: field(row, ColCategory),
		}
		if rec.OrderValue, err = parseFloat(field(row, ColOrderValue), ColOrderValue, line); err != nil {
			return nil, err
		}
		if rec.DeliveryTime, err = parseFloat(field(row, ColDeliveryTime), ColDeliveryTime, line); err != nil {
			return nil, err
		}
		if rec.Rating, err = parseFloat(field(row, ColRating), ColRating, line); err != nil {
			return nil, err
		}
		if hasTimestamp {
			rec.Timestamp = parseTimestamp(strings.TrimSpace(row[tsIdx]))
		}
		ds.Records = append(ds.Records, rec)
	}

	return ds, nil
}

func parseFloat(s, col string, line int) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid value %q for column %q: %w", line, s, col, err)
	}
	return v, nil
}

// parseTimestamp tries the supported layouts and gives up quietly: the
// timestamp column is optional and a bad cell degrades to a zero time.
func parseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
