package importer_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/growlocal360/maxx-energy/internal/importer"
)

func workbook(t *testing.T, rows [][]string) io.Reader {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	for r, row := range rows {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, val))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return bytes.NewReader(buf.Bytes())
}

func TestParseItems(t *testing.T) {
	t.Parallel()

	r := workbook(t, [][]string{
		{"Family", "Chemical / Trade Name", "UOM", "Packing"},
		{"Friction Reducers", "FR-100", "gal", "275 gal tote"},
		{"", "", "", ""},
		{"Biocides", "", "lb", ""},
		{"  Surfactants ", " NE-20 ", "", "drum"},
	})

	result, err := importer.ParseItems(r)
	require.NoError(t, err)

	require.Len(t, result.Rows, 2)
	assert.Equal(t, importer.ItemRow{
		Row: 2, Family: "Friction Reducers", TradeName: "FR-100", UOM: "gal", Packing: "275 gal tote",
	}, result.Rows[0])
	assert.Equal(t, 5, result.Rows[1].Row)
	assert.Equal(t, "Surfactants", result.Rows[1].Family)
	assert.Equal(t, "NE-20", result.Rows[1].TradeName)

	assert.Equal(t, []importer.ImportError{{Row: 4, Error: "trade name is required"}}, result.Errors)
}

func TestParseItems_ColumnOrderFromHeader(t *testing.T) {
	t.Parallel()

	r := workbook(t, [][]string{
		{"packing", "trade_name", "family"},
		{"bag", "Guar", "Gelling Agents"},
	})

	result, err := importer.ParseItems(r)
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "Gelling Agents", result.Rows[0].Family)
	assert.Equal(t, "Guar", result.Rows[0].TradeName)
	assert.Equal(t, "bag", result.Rows[0].Packing)
	assert.Empty(t, result.Rows[0].UOM)
}

func TestParseItems_MissingColumns(t *testing.T) {
	t.Parallel()

	r := workbook(t, [][]string{{"name", "uom"}, {"x", "y"}})
	_, err := importer.ParseItems(r)
	require.ErrorIs(t, err, importer.ErrMissingColumns)
}

func TestParseItems_NotAWorkbook(t *testing.T) {
	t.Parallel()

	_, err := importer.ParseItems(strings.NewReader("family,trade name\n"))
	require.Error(t, err)
}

func TestValidateRow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		row  importer.ItemRow
		want string
	}{
		{"valid", importer.ItemRow{Family: "A", TradeName: "B"}, ""},
		{"no family", importer.ItemRow{TradeName: "B"}, "family is required"},
		{"long uom", importer.ItemRow{Family: "A", TradeName: "B", UOM: strings.Repeat("x", 51)},
			"uom must be at most 50 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, importer.ValidateRow(tt.row))
		})
	}
}

func TestItemRow_Values(t *testing.T) {
	t.Parallel()

	v := importer.ItemRow{Family: "A", TradeName: "B", UOM: "gal"}.Values(3)
	assert.Equal(t, map[string]any{
		"family": "A", "trade_name": "B", "uom": "gal", "packing": "", "display_order": 3,
	}, v)
}
