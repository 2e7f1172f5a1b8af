package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	gerr "github.com/jekabolt/grbpwr-dashboard/internal/errors"
	"github.com/jekabolt/grbpwr-dashboard/internal/export"
	"github.com/jekabolt/grbpwr-dashboard/internal/period"
)

const maxInsightBody = 1 << 16

type errorResponse struct {
	Error string `json:"error"`
}

// insightsRequest selects the dashboard insights are generated for. Without a period
// or bounds the latest dashboard of the view is reused when there is one.
type insightsRequest struct {
	View   string `json:"view"`
	Period string `json:"period"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		if err := s.health.Ping(r.Context()); err != nil {
			slog.Default().ErrorContext(r.Context(), "health check failed", slog.String("err", err.Error()))
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) getDashboard(w http.ResponseWriter, r *http.Request) {
	q, err := s.parseQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	d, err := s.reports.Build(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) exportDashboard(w http.ResponseWriter, r *http.Request) {
	q, err := s.parseQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	d, err := s.reports.Build(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, d); err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(d)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) postInsights(w http.ResponseWriter, r *http.Request) {
	var req insightsRequest
	body, err := io.ReadAll(io.LimitReader(r.Body, maxInsightBody))
	if err != nil {
		writeError(w, r, gerr.NewValidationError("body", "can't read request body"))
		return
	}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			writeError(w, r, gerr.NewValidationError("body", "malformed json: %v", err))
			return
		}
	}

	d, ok := s.reports.Latest(viewOrDefault(req.View))
	if req.Period != "" || req.Start != "" || req.End != "" || !ok {
		v := url.Values{}
		v.Set("view", req.View)
		v.Set("period", req.Period)
		v.Set("start", req.Start)
		v.Set("end", req.End)
		q, err := s.parseQuery(v)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if d, err = s.reports.Build(r.Context(), q); err != nil {
			writeError(w, r, err)
			return
		}
	}

	rec, err := s.insights.Recommend(r.Context(), d)
	if err != nil {
		if errors.Is(err, gerr.ErrInsightsDisabled) {
			writeError(w, r, err)
			return
		}
		writeErrorStatus(w, r, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func viewOrDefault(view string) string {
	if view == "" {
		return entity.DefaultView
	}
	return view
}

func (s *Server) parseQuery(v url.Values) (entity.ReportQuery, error) {
	start, err := period.ParseBound("start", v.Get("start"), s.loc)
	if err != nil {
		return entity.ReportQuery{}, err
	}
	end, err := period.ParseBound("end", v.Get("end"), s.loc)
	if err != nil {
		return entity.ReportQuery{}, err
	}
	p, err := period.InferPeriod(v.Get("period"), start, end)
	if err != nil {
		return entity.ReportQuery{}, err
	}
	q := entity.ReportQuery{
		View:   v.Get("view"),
		Period: p,
		Start:  start,
		End:    end,
	}
	if top := v.Get("top"); top != "" {
		n, err := strconv.Atoi(top)
		if err != nil || n < 0 {
			return entity.ReportQuery{}, gerr.NewValidationError("top", "must be a non-negative integer, got %q", top)
		}
		q.TopProducts = n
	}
	return q, nil
}

func statusFor(err error) int {
	switch {
	case gerr.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, gerr.ErrSuperseded):
		return http.StatusConflict
	case errors.Is(err, gerr.ErrInsightsDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	writeErrorStatus(w, r, statusFor(err), err)
}

func writeErrorStatus(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		slog.Default().ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.String("err", err.Error()),
		)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("can't encode response", slog.String("err", err.Error()))
	}
}
