package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bundakue/titipan/internal/encoding"
)

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	// Valid UTF-8 should pass through unchanged.
	input := "Nama;Harga;Kategori\nKué Lapis;2.500;Basah\n"
	r, err := encoding.NewUTF8Reader(bytes.NewReader([]byte(input)))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, input, string(got))
}

func TestNewUTF8Reader_Windows1252(t *testing.T) {
	// Windows-1252 encoded "Kué Lapis;2.500\n".
	// In Windows-1252: é = 0xE9
	cpBytes := []byte{
		'K', 'u', 0xE9, ' ', 'L', 'a', 'p', 'i', 's', ';',
		'2', '.', '5', '0', '0', '\n',
	}

	r, err := encoding.NewUTF8Reader(bytes.NewReader(cpBytes))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Kué Lapis;2.500\n", string(got))
}

func TestNewUTF8Reader_UTF8BOM(t *testing.T) {
	// UTF-8 BOM (0xEF 0xBB 0xBF) should be stripped.
	bom := []byte{0xEF, 0xBB, 0xBF}
	content := []byte("Nama;Harga\nKué Lapis;2.500\n")
	input := append(bom, content...)

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Nama;Harga\nKué Lapis;2.500\n", string(got))
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	// UTF-16 LE with BOM.
	input := []byte{0xFF, 0xFE}
	for _, c := range "Nama;Harga\n" {
		input = append(input, byte(c), 0x00)
	}

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Nama;Harga\n", string(got))
}
