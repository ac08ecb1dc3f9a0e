package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/siamlex/gazette-search-service/common/models"
	"github.com/siamlex/gazette-search-service/common/utils"
	trg "github.com/siamlex/gazette-search-service/crawlers/thai-royal-gazette"
)

// GazetteSearcher is the search surface the handler drives. It is
// satisfied by *trg.Service.
type GazetteSearcher interface {
	CategorySearch(ctx context.Context, q trg.CategoryQuery) ([]trg.ResultRecord, error)
	AdvancedSearch(ctx context.Context, q trg.AdvancedQuery) ([]trg.ResultRecord, error)
}

type SearchHandler struct {
	searcher GazetteSearcher
	router   *chi.Mux
	validate *validator.Validate
}

func NewSearchHandler(searcher GazetteSearcher) *SearchHandler {
	router := chi.NewRouter()

	h := &SearchHandler{
		searcher: searcher,
		router:   router,
		validate: validator.New(),
	}

	router.Get("/search", h.handleCategorySearch)
	router.Get("/search1", h.handleAdvancedSearch)
	return h
}

func (h *SearchHandler) Router() *chi.Mux {
	return h.router
}

// CategorySearchParams are the query parameters of the category search.
type CategorySearchParams struct {
	Category string `validate:"required,oneof=1 2 3 4 5"`
	DateFrom string
	DateTo   string
}

// @Summary Search gazette entries by category
// @Description Drives the portal's by-category search form and returns every record of the paginated result set
// @Tags search
// @Produce json
// @Param category query string true "Category code (1-5)"
// @Param date-from query string false "Publication date lower bound, as expected by the form"
// @Param date-to query string false "Publication date upper bound, as expected by the form"
// @Success 200 {object} models.SearchResponse
// @Router /api/search [get]
func (h *SearchHandler) handleCategorySearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := CategorySearchParams{
		Category: q.Get("category"),
		DateFrom: q.Get("date-from"),
		DateTo:   q.Get("date-to"),
	}

	if p.Category == "" {
		utils.WriteError(w, http.StatusBadRequest, "ต้องระบุพารามิเตอร์ category (1-5)")
		return
	}
	if err := h.validate.Struct(p); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "category ต้องเป็น 1-5 เท่านั้น")
		return
	}

	records, err := h.searcher.CategorySearch(r.Context(), trg.CategoryQuery{
		Category: p.Category,
		DateFrom: p.DateFrom,
		DateTo:   p.DateTo,
	})
	h.writeSearchResult(w, records, err)
}

// @Summary Advanced gazette search
// @Description Drives the portal's free-form search tab; at least one parameter is required
// @Tags search
// @Produce json
// @Param title query string false "Title keywords"
// @Param type query []string false "Document type values, repeatable"
// @Param bookNo query string false "Volume number"
// @Param part query string false "Issue number"
// @Param partExtra query string false "Special issue number"
// @Param dateBegin query string false "Publication date lower bound"
// @Param dateEnd query string false "Publication date upper bound"
// @Success 200 {object} models.SearchResponse
// @Router /api/search1 [get]
func (h *SearchHandler) handleAdvancedSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := trg.AdvancedQuery{
		Title:       q.Get("title"),
		Types:       q["type"],
		BookNo:      q.Get("bookNo"),
		Part:        q.Get("part"),
		PartExtra:   q.Get("partExtra"),
		DateBegin:   q.Get("dateBegin"),
		DateEnd:     q.Get("dateEnd"),
		SearchField: q.Get("searchField"),
	}

	if query.IsEmpty() {
		utils.WriteError(w, http.StatusBadRequest, "กรุณาระบุอย่างน้อยหนึ่งพารามิเตอร์ เช่น ?title=...")
		return
	}

	records, err := h.searcher.AdvancedSearch(r.Context(), query)
	h.writeSearchResult(w, records, err)
}

func (h *SearchHandler) writeSearchResult(w http.ResponseWriter, records []trg.ResultRecord, err error) {
	switch {
	case errors.Is(err, trg.ErrNoResults):
		utils.WriteJSON(w, http.StatusNotFound, models.ErrorResponse{
			Status: http.StatusNotFound,
			Error:  "ไม่พบข้อมูล",
		})
	case err != nil:
		log.Error().Err(err).Msg("Gazette search failed")
		utils.WriteErrorDetail(w, http.StatusInternalServerError, "เกิดข้อผิดพลาดจากฝั่งเซิร์ฟเวอร์", err.Error())
	default:
		utils.WriteJSON(w, http.StatusOK, models.SearchResponse{
			Status:    http.StatusOK,
			TotalItem: len(records),
			Records:   records,
		})
	}
}
