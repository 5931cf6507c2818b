package charts

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/delivery-atlas/pkg/models/domain"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func testDataset() *domain.Dataset {
	return &domain.Dataset{
		Records: []domain.OrderRecord{
			{OrderID: "1", Platform: "Zepto", Category: "Grocery", OrderValue: 100, DeliveryTime: 10, Rating: 4.5},
			{OrderID: "2", Platform: "Swiggy", Category: "Snacks", OrderValue: 220, DeliveryTime: 25, Rating: 3.9},
			{OrderID: "3", Platform: "Zepto", Category: "Dairy", OrderValue: 150, DeliveryTime: 14, Rating: 4.1},
			{OrderID: "4", Platform: "Blinkit", Category: "Grocery", OrderValue: 90, DeliveryTime: 9, Rating: 4.8},
			{OrderID: "5", Platform: "Swiggy", Category: "Grocery", OrderValue: 310, DeliveryTime: 32, Rating: 3.5},
		},
	}
}

func TestRenderAll(t *testing.T) {
	r := NewRenderer(testDataset())

	artifacts, err := r.RenderAll()
	require.NoError(t, err)
	require.Len(t, artifacts, len(domain.ChartKinds()))

	for i, kind := range domain.ChartKinds() {
		assert.Equal(t, kind, artifacts[i].Kind)
		assert.Equal(t, string(kind), artifacts[i].Name)
		assert.NotEmpty(t, artifacts[i].Title)
		assert.NotNil(t, artifacts[i].Figure)
	}
}

func TestRender_EmptyDataset(t *testing.T) {
	r := NewRenderer(&domain.Dataset{})

	for _, kind := range domain.ChartKinds() {
		_, err := r.Render(kind)
		assert.Error(t, err, "kind %s", kind)
	}
}

func TestRender_UnsupportedKind(t *testing.T) {
	r := NewRenderer(testDataset())

	_, err := r.Render(domain.ChartKind("pie_in_the_sky"))
	assert.Error(t, err)
}

func TestExport_WritesPNG(t *testing.T) {
	r := NewRenderer(testDataset())

	for _, kind := range domain.ChartKinds() {
		artifact, err := r.Render(kind)
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), artifact.Name+".png")
		require.NoError(t, r.Export(artifact, path))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(content, pngMagic), "chart %s is not a PNG", kind)
	}
}

func TestExport_MissingFigure(t *testing.T) {
	r := NewRenderer(testDataset())
	path := filepath.Join(t.TempDir(), "broken.png")

	err := r.Export(domain.ChartArtifact{Name: "broken"}, path)
	require.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestExportTo_Buffer(t *testing.T) {
	r := NewRenderer(testDataset())

	artifact, err := r.Render(domain.ChartValueScatter)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.ExportTo(artifact, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}
