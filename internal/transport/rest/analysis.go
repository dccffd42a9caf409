package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordlens/internal/domain"
	"github.com/heartmarshall/wordlens/internal/service/analysis"
)

// maxBodyBytes bounds request bodies; a sentence is never this long.
const maxBodyBytes = 64 << 10

// analysisService defines the minimal interface needed by AnalysisHandler.
type analysisService interface {
	Analyze(ctx context.Context, sess *analysis.Session, text string) (*analysis.Result, error)
	Click(ctx context.Context, sess *analysis.Session, offset int) (*analysis.Definition, error)
	Define(ctx context.Context, word string) (*analysis.Definition, error)
}

// sessionRegistry defines the minimal interface needed to manage sessions.
type sessionRegistry interface {
	Create() (*analysis.Session, error)
	Get(id uuid.UUID) (*analysis.Session, error)
	Delete(id uuid.UUID) bool
}

// AnalysisHandler serves the session, analyze, click and define endpoints.
type AnalysisHandler struct {
	svc      analysisService
	sessions sessionRegistry
	log      *slog.Logger
}

// NewAnalysisHandler creates an AnalysisHandler.
func NewAnalysisHandler(svc analysisService, sessions sessionRegistry, logger *slog.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		svc:      svc,
		sessions: sessions,
		log:      logger.With("handler", "analysis"),
	}
}

type analyzeRequest struct {
	Text string `json:"text"`
}

type clickRequest struct {
	Offset *int `json:"offset"`
}

type sessionResponse struct {
	ID string `json:"id"`
}

type tokenResponse struct {
	Text   string `json:"text"`
	Offset int    `json:"offset"`
	Key    string `json:"key"`
	Tier   string `json:"tier"`
}

type analyzeResponse struct {
	Rendered string          `json:"rendered"`
	Tokens   []tokenResponse `json:"tokens"`
}

type spanResponse struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Key   string `json:"key"`
}

type definitionResponse struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
	Found      bool   `json:"found"`
}

// CreateSession handles POST /api/v1/sessions.
func (h *AnalysisHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Create()
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse{ID: sess.ID.String()})
}

// DeleteSession handles DELETE /api/v1/sessions/{id}.
func (h *AnalysisHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if !h.sessions.Delete(id) {
		h.handleError(w, r, analysis.ErrSessionNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Analyze handles POST /api/v1/sessions/{id}/analyze.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req analyzeRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	result, err := h.svc.Analyze(r.Context(), sess, req.Text)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAnalyzeResponse(result))
}

// Words handles GET /api/v1/sessions/{id}/words: the clickable spans of
// the last analysis.
func (h *AnalysisHandler) Words(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	entries := sess.Index().Entries()
	spans := make([]spanResponse, 0, len(entries))
	for _, e := range entries {
		spans = append(spans, spanResponse{Start: e.Start, End: e.End(), Key: e.Key})
	}
	writeJSON(w, http.StatusOK, spans)
}

// Click handles POST /api/v1/sessions/{id}/click.
func (h *AnalysisHandler) Click(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req clickRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if req.Offset == nil {
		h.handleError(w, r, domain.NewValidationError("offset", "required"))
		return
	}

	def, err := h.svc.Click(r.Context(), sess, *req.Offset)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeDefinition(w, def)
}

// Define handles GET /api/v1/define/{word}.
func (h *AnalysisHandler) Define(w http.ResponseWriter, r *http.Request) {
	def, err := h.svc.Define(r.Context(), r.PathValue("word"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeDefinition(w, def)
}

func (h *AnalysisHandler) session(w http.ResponseWriter, r *http.Request) (*analysis.Session, bool) {
	id, err := sessionID(r)
	if err != nil {
		h.handleError(w, r, err)
		return nil, false
	}
	sess, err := h.sessions.Get(id)
	if err != nil {
		h.handleError(w, r, err)
		return nil, false
	}
	return sess, true
}

func (h *AnalysisHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, analysis.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "session not found")
	case errors.Is(err, analysis.ErrNoWordAtOffset):
		writeError(w, http.StatusNotFound, "no marked word at offset")
	case errors.Is(err, analysis.ErrTooManySessions):
		writeError(w, http.StatusServiceUnavailable, "too many sessions")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "request cancelled")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func sessionID(r *http.Request) (uuid.UUID, error) {
	raw := r.PathValue("id")
	if raw == "" {
		return uuid.Nil, domain.NewValidationError("id", "required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a UUID")
	}
	return id, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return domain.NewValidationError("body", "invalid JSON")
	}
	return nil
}

// writeDefinition answers 404 with the not-found message when no
// definition could be produced.
func writeDefinition(w http.ResponseWriter, def *analysis.Definition) {
	status := http.StatusOK
	if !def.Found {
		status = http.StatusNotFound
	}
	writeJSON(w, status, definitionResponse{
		Word:       def.Word,
		Definition: def.Text,
		Found:      def.Found,
	})
}

func toAnalyzeResponse(result *analysis.Result) analyzeResponse {
	tokens := make([]tokenResponse, len(result.Tokens))
	for i, t := range result.Tokens {
		tokens[i] = tokenResponse{
			Text:   t.Raw,
			Offset: t.Offset,
			Key:    t.Key,
			Tier:   t.Tier.String(),
		}
	}
	return analyzeResponse{Rendered: result.Rendered, Tokens: tokens}
}
