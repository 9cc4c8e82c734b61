package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/twquant/warroom/internal/dashboard"
	"github.com/twquant/warroom/internal/types"
	"github.com/twquant/warroom/pkg/errors"
)

// symbolInfo is one entry of the symbol listing.
type symbolInfo struct {
	Ticker   string `json:"ticker"`
	Name     string `json:"name"`
	Provider string `json:"provider,omitempty"`
}

// dashboardResponse is the per-symbol payload consumed by the renderer.
type dashboardResponse struct {
	Quote     types.Quote     `json:"quote"`
	Chart     dashboard.Chart `json:"chart"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// refreshResponse summarizes a refresh cycle. Failures are reported as
// user-facing notices; a partly failed refresh is still a 200 because the
// healthy symbols carry on.
type refreshResponse struct {
	Refreshed []string          `json:"refreshed"`
	Failures  map[string]string `json:"failures,omitempty"`
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Code    errors.ErrorCode `json:"code"`
	Message string           `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSymbols(w http.ResponseWriter, _ *http.Request) {
	symbols := s.service.Symbols()
	out := make([]symbolInfo, 0, len(symbols))

	for _, symbol := range symbols {
		out = append(out, symbolInfo{
			Ticker:   symbol.Ticker,
			Name:     symbol.Name,
			Provider: string(symbol.Provider),
		})
	}

	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ticker := mux.Vars(r)["symbol"]

	snapshot, err := s.service.Snapshot(r.Context(), ticker)
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, dashboardResponse{
		Quote:     snapshot.Quote,
		Chart:     dashboard.BuildChart(snapshot.Ticker, snapshot.Name, snapshot.Bars),
		FetchedAt: snapshot.FetchedAt,
	})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	results := s.service.Refresh(r.Context())

	response := refreshResponse{Refreshed: make([]string, 0, len(results))}

	for _, result := range results {
		if result.Err != nil {
			if response.Failures == nil {
				response.Failures = make(map[string]string)
			}

			response.Failures[result.Ticker] = result.Err.Error()

			continue
		}

		response.Refreshed = append(response.Refreshed, result.Ticker)
	}

	s.writeJSON(w, http.StatusOK, response)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
	}
}

// writeError maps structured error codes to HTTP statuses. Upstream data
// problems surface as 502 so the renderer can show a non-fatal notice while
// other symbols keep working.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)

	status := http.StatusInternalServerError

	switch code {
	case errors.ErrCodeSymbolNotConfigured:
		status = http.StatusNotFound
	case errors.ErrCodeFetchFailed, errors.ErrCodeNoDataFound, errors.ErrCodeParseFailed:
		status = http.StatusBadGateway
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidParameter, errors.ErrCodeInvalidSymbol:
		status = http.StatusBadRequest
	}

	s.writeJSON(w, status, errorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
