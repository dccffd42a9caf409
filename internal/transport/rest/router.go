package rest

import "net/http"

// NewRouter registers every REST endpoint on a new ServeMux.
func NewRouter(analysis *AnalysisHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("POST /api/v1/sessions", analysis.CreateSession)
	mux.HandleFunc("DELETE /api/v1/sessions/{id}", analysis.DeleteSession)
	mux.HandleFunc("POST /api/v1/sessions/{id}/analyze", analysis.Analyze)
	mux.HandleFunc("GET /api/v1/sessions/{id}/words", analysis.Words)
	mux.HandleFunc("POST /api/v1/sessions/{id}/click", analysis.Click)
	mux.HandleFunc("GET /api/v1/define/{word}", analysis.Define)

	return mux
}
