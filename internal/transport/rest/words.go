package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/vocabkit/internal/adapter/vocabfile"
	"github.com/heartmarshall/vocabkit/internal/domain"
	"github.com/heartmarshall/vocabkit/internal/service/wordfilter"
)

type wordFilter interface {
	Filter(ctx context.Context, words []domain.Word, p wordfilter.Predicates) ([]domain.Word, error)
	Include(ctx context.Context, words []domain.Word, p wordfilter.Predicates) ([]domain.Word, error)
}

// WordHandler serves the predicate endpoints.
type WordHandler struct {
	filter wordFilter
	log    *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(filter wordFilter, logger *slog.Logger) *WordHandler {
	return &WordHandler{filter: filter, log: logger.With("handler", "words")}
}

type predicatesRequest struct {
	Numeric        bool `json:"numeric"`
	BNCThreshold   *int `json:"bncThreshold"`
	FRQThreshold   *int `json:"frqThreshold"`
	BNCZero        bool `json:"bncZero"`
	FRQZero        bool `json:"frqZero"`
	ReplaceToLemma bool `json:"replaceToLemma"`
	BatchSource    bool `json:"batchSource"`
}

func (p predicatesRequest) toPredicates() wordfilter.Predicates {
	return wordfilter.Predicates{
		Numeric:        p.Numeric,
		BNCThreshold:   p.BNCThreshold,
		FRQThreshold:   p.FRQThreshold,
		BNCZero:        p.BNCZero,
		FRQZero:        p.FRQZero,
		ReplaceToLemma: p.ReplaceToLemma,
		BatchSource:    p.BatchSource,
	}
}

type wordsRequest struct {
	Words      []vocabfile.WordRecord `json:"words"`
	Predicates predicatesRequest      `json:"predicates"`
}

type wordsResponse struct {
	Size  int                    `json:"size"`
	Words []vocabfile.WordRecord `json:"words"`
}

// Filter handles POST /api/v1/words/filter.
func (h *WordHandler) Filter(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, h.filter.Filter)
}

// Include handles POST /api/v1/words/include.
func (h *WordHandler) Include(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, h.filter.Include)
}

type selectFunc func(ctx context.Context, words []domain.Word, p wordfilter.Predicates) ([]domain.Word, error)

func (h *WordHandler) run(w http.ResponseWriter, r *http.Request, fn selectFunc) {
	var req wordsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	out, err := fn(r.Context(), vocabfile.ToWords(req.Words), req.Predicates.toPredicates())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, wordsResponse{Size: len(out), Words: vocabfile.FromWords(out)})
}
