package importer

import (
	"io"

	"github.com/bundakue/titipan/internal/catalog"
)

type Format string

const (
	FormatCatalogCSV Format = "catalog-csv"
)

type Importer interface {
	Parse(r io.Reader) ([]catalog.ProductParams, error)
}
