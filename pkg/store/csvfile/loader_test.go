package csvfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Order ID,Platform,Product Category,Order Value (INR),Delivery Time (Minutes),Service Rating,Timestamp
ORD-1,Zepto,Grocery,250.50,12,4.5,2025-01-15 10:30:00
ORD-2,Swiggy,Snacks,99.90,25,3.8,2025-01-15 11:00:00
ORD-3,Zepto,Dairy,180.00,15,4.2,2025-01-15 11:30:00
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orders.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDataset(t *testing.T) {
	ds, err := LoadDataset(writeFile(t, sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, []string{"Zepto", "Swiggy"}, ds.Platforms())
	assert.Equal(t, []string{"Grocery", "Snacks", "Dairy"}, ds.Categories())

	first := ds.Records[0]
	assert.Equal(t, "ORD-1", first.OrderID)
	assert.Equal(t, 250.50, first.OrderValue)
	assert.Equal(t, 12.0, first.DeliveryTime)
	assert.Equal(t, 4.5, first.Rating)
	assert.False(t, first.Timestamp.IsZero())
}

func TestLoadDataset_MissingRequiredColumn(t *testing.T) {
	content := strings.Replace(sampleCSV, "Service Rating", "Stars", 1)
	_, err := LoadDataset(writeFile(t, content))
	require.Error(t, err)

	var missing *MissingColumnError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, ColRating, missing.Column)
}

func TestLoadDataset_TimestampOptional(t *testing.T) {
	content := `Order ID,Platform,Product Category,Order Value (INR),Delivery Time (Minutes),Service Rating
ORD-1,Zepto,Grocery,250.50,12,4.5
`
	ds, err := LoadDataset(writeFile(t, content))
	require.NoError(t, err)
	assert.True(t, ds.Records[0].Timestamp.IsZero())
}

func TestLoadDataset_InvalidNumeric(t *testing.T) {
	content := strings.Replace(sampleCSV, "250.50", "abc", 1)
	_, err := LoadDataset(writeFile(t, content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Order Value (INR)")
}

func TestLoadDataset_HeaderMatchingIsCaseInsensitive(t *testing.T) {
	content := strings.ToLower(sampleCSV)
	_, err := LoadDataset(writeFile(t, content))
	assert.NoError(t, err)
}

func TestLoadDataset_MissingFile(t *testing.T) {
	_, err := LoadDataset(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
