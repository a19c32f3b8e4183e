package importer

import (
	"fmt"
	"io"

	"github.com/bundakue/titipan/internal/catalog"
	"github.com/bundakue/titipan/internal/importer/catalogcsv"
)

type Service struct {
	catalogImporter Importer
}

func NewService() *Service {
	return &Service{
		catalogImporter: catalogcsv.New(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]catalog.ProductParams, error) {
	var importer Importer

	switch format {
	case FormatCatalogCSV:
		importer = s.catalogImporter
	default:
		return nil, fmt.Errorf("unknown import format: %s", format)
	}

	return importer.Parse(r)
}
