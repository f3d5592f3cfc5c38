package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/vocabkit/internal/adapter/vocabfile"
	"github.com/heartmarshall/vocabkit/internal/domain"
	"github.com/heartmarshall/vocabkit/internal/service/preview"
	"github.com/heartmarshall/vocabkit/pkg/ctxutil"
)

type previewRunner interface {
	Run(ctx context.Context, req preview.Request) (preview.Result, error)
}

// PreviewHandler serves the preview pipeline.
type PreviewHandler struct {
	svc previewRunner
	dir dataDir
	log *slog.Logger
}

// NewPreviewHandler creates a PreviewHandler. Vocabulary and reference files
// are read under dir.
func NewPreviewHandler(svc previewRunner, dir string, logger *slog.Logger) *PreviewHandler {
	return &PreviewHandler{svc: svc, dir: dataDir(dir), log: logger.With("handler", "preview")}
}

type referenceRequest struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

type previewRequest struct {
	Words           []vocabfile.WordRecord `json:"words"`
	Mode            string                 `json:"mode"`
	Predicates      predicatesRequest      `json:"predicates"`
	VocabularyFiles []string               `json:"vocabularyFiles"`
	Removed         []string               `json:"removed"`
	Sort            string                 `json:"sort"`
	References      []referenceRequest     `json:"references"`
}

type summaryItem struct {
	Name    string `json:"name"`
	Count   int    `json:"count"`
	Missing bool   `json:"missing"`
}

type previewResponse struct {
	RunID    string                 `json:"runId"`
	Size     int                    `json:"size"`
	Words    []vocabfile.WordRecord `json:"words"`
	Summary  []summaryItem          `json:"summary"`
	Failures []fileFailure          `json:"failures"`
}

// Run handles POST /api/v1/preview. The request id, when present, doubles
// as the run id.
func (h *PreviewHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	files, err := h.dir.resolveAll("vocabularyFiles", req.VocabularyFiles)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	refPaths := make([]string, 0, len(req.References))
	for _, ref := range req.References {
		refPaths = append(refPaths, ref.Path)
	}
	resolved, err := h.dir.resolveAll("references", refPaths)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	refs := make([]preview.Reference, 0, len(req.References))
	for i, ref := range req.References {
		refs = append(refs, preview.Reference{Name: ref.Name, Path: resolved[i]})
	}

	res, err := h.svc.Run(r.Context(), preview.Request{
		RunID:           ctxutil.RequestIDFromCtx(r.Context()),
		Parsed:          vocabfile.ToWords(req.Words),
		Mode:            domain.SelectMode(req.Mode),
		Predicates:      req.Predicates.toPredicates(),
		VocabularyFiles: files,
		Removed:         req.Removed,
		Sort:            domain.SortMode(req.Sort),
		References:      refs,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	summary := make([]summaryItem, 0, len(res.Summary))
	for _, s := range res.Summary {
		summary = append(summary, summaryItem{Name: s.Name, Count: s.Count, Missing: s.Missing})
	}

	writeJSON(w, http.StatusOK, previewResponse{
		RunID:    res.RunID,
		Size:     len(res.Words),
		Words:    vocabfile.FromWords(res.Words),
		Summary:  summary,
		Failures: h.dir.failures(res.Failures),
	})
}
