package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bundakue/titipan/internal/catalog"
	"github.com/bundakue/titipan/internal/importer"
)

type Handler struct {
	importSvc  *importer.Service
	catalogSvc *catalog.Service
}

func NewHandler(importSvc *importer.Service, catalogSvc *catalog.Service) *Handler {
	return &Handler{
		importSvc:  importSvc,
		catalogSvc: catalogSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/products", h.importProducts)
}

type productResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Price    int64     `json:"price"`
	Category string    `json:"category"`
}

type importSuccessResponse struct {
	Imported int               `json:"imported"`
	Products []productResponse `json:"products"`
}

func (h *Handler) importProducts(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(importer.FormatCatalogCSV, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	products := make([]productResponse, 0, len(params))

	for _, p := range params {
		created, err := h.catalogSvc.AddProduct(r.Context(), p)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		products = append(products, productResponse{
			ID:       created.ID,
			Name:     created.Name,
			Price:    created.Price,
			Category: created.Category,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(importSuccessResponse{
		Imported: len(products),
		Products: products,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
