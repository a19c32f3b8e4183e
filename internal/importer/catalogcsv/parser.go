package catalogcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/bundakue/titipan/internal/catalog"
	enc "github.com/bundakue/titipan/internal/encoding"
)

// Parser reads product catalog spreadsheets exported as CSV and produces
// product params. It auto-detects the delimiter and matches column headers
// against known profiles, so the same upload form accepts sheets from Excel,
// LibreOffice, and Google Sheets.
type Parser struct{}

func New() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]catalog.ProductParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	raw, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(string(raw)))
	reader.Comma = sniffDelimiter(string(raw))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, colMap, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching catalog format found: expected Nama and Harga columns")
	}

	return parseRows(profile, colMap, rows[headerIdx+1:], headerIdx+1)
}

// sniffDelimiter picks the separator by counting candidates over the whole
// sheet. Excel exports with regional settings set to Indonesian use ';'.
func sniffDelimiter(content string) rune {
	if strings.Count(content, ";") > strings.Count(content, ",") {
		return ';'
	}

	return ','
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
// Returns the matched profile, column index map, and header row index.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[strings.ToLower(name)] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

// matchesProfile checks if all required columns of a profile are present.
func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts products from data rows using the matched profile.
// headerRowNum is the 0-based index of the header in the original file (for error messages).
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]catalog.ProductParams, error) {
	nameIdx := cols[p.NameCol]
	priceIdx := cols[p.PriceCol]

	categoryIdx := -1
	if p.CategoryCol != "" {
		if i, ok := cols[p.CategoryCol]; ok {
			categoryIdx = i
		}
	}

	var products []catalog.ProductParams

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, skipping header

		name := cellValue(row, nameIdx)
		if name == "" {
			// Blank and footer rows are skipped, not errors.
			continue
		}

		price, err := parsePrice(cellValue(row, priceIdx))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad price %q: %w", rowNum, cellValue(row, priceIdx), err)
		}

		products = append(products, catalog.ProductParams{
			Name:     name,
			Price:    price,
			Category: cellValue(row, categoryIdx),
		})
	}

	return products, nil
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
