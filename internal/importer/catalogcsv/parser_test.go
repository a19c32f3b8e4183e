package catalogcsv_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/bundakue/titipan/internal/importer/catalogcsv"
)

func TestParser_Semicolon(t *testing.T) {
	csv := `Katalog Kue - Agustus 2026
Toko;Kue Bunda

Nama;Harga;Kategori
CALA ISI;2.500;Gorengan
ZEBRA;Rp 2.000;Bolu

Total;13 produk
`

	p := catalogcsv.New()
	products, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "CALA ISI", products[0].Name)
	assert.Equal(t, int64(2500), products[0].Price)
	assert.Equal(t, "Gorengan", products[0].Category)

	assert.Equal(t, "ZEBRA", products[1].Name)
	assert.Equal(t, int64(2000), products[1].Price)
	assert.Equal(t, "Bolu", products[1].Category)
}

func TestParser_CommaNoCategory(t *testing.T) {
	csv := `Nama,Harga
RISOLES,3000
NAGASARI BANDUNG,2000
`

	p := catalogcsv.New()
	products, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "RISOLES", products[0].Name)
	assert.Equal(t, int64(3000), products[0].Price)
	assert.Empty(t, products[0].Category)
}

func TestParser_EnglishHeaders(t *testing.T) {
	csv := `Name,Price,Category
Pudding,2500,Dessert
`

	p := catalogcsv.New()
	products, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Pudding", products[0].Name)
	assert.Equal(t, int64(2500), products[0].Price)
	assert.Equal(t, "Dessert", products[0].Category)
}

func TestParser_Windows1252(t *testing.T) {
	// Sheets saved by older Excel versions arrive in Windows-1252.
	enc := charmap.Windows1252.NewEncoder()
	raw, err := enc.Bytes([]byte("Nama;Harga\nKué Lapis;2.500\n"))
	require.NoError(t, err)

	p := catalogcsv.New()
	products, err := p.Parse(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Kué Lapis", products[0].Name)
	assert.Equal(t, int64(2500), products[0].Price)
}

func TestParser_BadPrice(t *testing.T) {
	csv := `Nama;Harga
CALA ISI;dua ribu
`

	p := catalogcsv.New()
	_, err := p.Parse(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestParser_NoMatchingHeader(t *testing.T) {
	csv := `Produk;Nilai
CALA ISI;2500
`

	p := catalogcsv.New()
	_, err := p.Parse(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no matching catalog format")
}
