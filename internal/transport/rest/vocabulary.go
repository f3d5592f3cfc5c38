package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/vocabkit/internal/adapter/vocabfile"
	"github.com/heartmarshall/vocabkit/internal/domain"
	"github.com/heartmarshall/vocabkit/internal/service/match"
	"github.com/heartmarshall/vocabkit/internal/service/merge"
)

type vocabularyMerger interface {
	MergeFiles(ctx context.Context, paths []string, opts merge.Options) (merge.Result, error)
}

type vocabularyMatcher interface {
	MatchFiles(ctx context.Context, baselinePath, comparisonPath string, opts match.Options) (domain.Vocabulary, error)
}

type vocabularySaver interface {
	Save(ctx context.Context, v domain.Vocabulary, path string) error
}

// VocabularyHandler serves merge and match over vocabulary files.
type VocabularyHandler struct {
	merger    vocabularyMerger
	matcher   vocabularyMatcher
	saver     vocabularySaver
	mergeOpts merge.Options
	matchOpts match.Options
	dir       dataDir
	log       *slog.Logger
}

// NewVocabularyHandler creates a VocabularyHandler. mergeOpts and matchOpts
// carry the server defaults; requests may override name, lemma and stem
// fallback. Every file a request names is read or written under dataDir.
func NewVocabularyHandler(
	merger vocabularyMerger,
	matcher vocabularyMatcher,
	saver vocabularySaver,
	mergeOpts merge.Options,
	matchOpts match.Options,
	dir string,
	logger *slog.Logger,
) *VocabularyHandler {
	return &VocabularyHandler{
		merger:    merger,
		matcher:   matcher,
		saver:     saver,
		mergeOpts: mergeOpts,
		matchOpts: matchOpts,
		dir:       dataDir(dir),
		log:       logger.With("handler", "vocabulary"),
	}
}

type mergeRequest struct {
	Paths  []string `json:"paths"`
	Name   string   `json:"name"`
	Output string   `json:"output"`
}

type matchRequest struct {
	Baseline     string `json:"baseline"`
	Comparison   string `json:"comparison"`
	Lemma        bool   `json:"lemma"`
	StemFallback *bool  `json:"stemFallback"`
	Output       string `json:"output"`
}

type vocabularyResponse struct {
	Vocabulary vocabfile.VocabularyRecord `json:"vocabulary"`
	Failures   []fileFailure              `json:"failures"`
	Saved      string                     `json:"saved,omitempty"`
}

// Merge handles POST /api/v1/vocabularies/merge.
func (h *VocabularyHandler) Merge(w http.ResponseWriter, r *http.Request) {
	var req mergeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	opts := h.mergeOpts
	if req.Name != "" {
		opts.Name = req.Name
	}

	paths, err := h.dir.resolveAll("paths", req.Paths)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	output, err := h.output(req.Output)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.merger.MergeFiles(r.Context(), paths, opts)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.respond(w, r, res.Vocabulary, res.Failures, req.Output, output)
}

// Match handles POST /api/v1/vocabularies/match.
func (h *VocabularyHandler) Match(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	opts := h.matchOpts
	opts.Lemma = req.Lemma
	if req.StemFallback != nil {
		opts.StemFallback = *req.StemFallback
	}

	baseline, err := h.dir.resolve("baseline", req.Baseline)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	comparison, err := h.dir.resolve("comparison", req.Comparison)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	output, err := h.output(req.Output)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	v, err := h.matcher.MatchFiles(r.Context(), baseline, comparison, opts)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.respond(w, r, v, nil, req.Output, output)
}

// output resolves the optional output name. Empty means no file is written.
func (h *VocabularyHandler) output(name string) (string, error) {
	if name == "" {
		return "", nil
	}
	return h.dir.resolve("output", name)
}

func (h *VocabularyHandler) respond(w http.ResponseWriter, r *http.Request, v domain.Vocabulary, failures []domain.FileError, name, path string) {
	if path != "" {
		if err := h.saver.Save(r.Context(), v, path); err != nil {
			handleError(h.log, w, r, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, vocabularyResponse{
		Vocabulary: vocabfile.FromVocabulary(v),
		Failures:   h.dir.failures(failures),
		Saved:      name,
	})
}
