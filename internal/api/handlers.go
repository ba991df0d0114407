package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/domain"
)

// errorBody is the JSON shape of every non-2xx reply.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    contract.ErrorCode `json:"code"`
	Message string             `json:"message"`
}

func (s *Server) handleExecutionScore(w http.ResponseWriter, r *http.Request) {
	req := contract.NewScoreRequest(r.URL.Query().Get("user"))
	var err error
	if req.WindowDays, err = queryInt(r, "days", req.WindowDays); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Now, err = queryTime(r, "now"); err != nil {
		s.writeError(w, r, err)
		return
	}

	score, err := s.analytics.ExecutionScore(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, score)
}

func (s *Server) handleVelocity(w http.ResponseWriter, r *http.Request) {
	req := contract.NewVelocityRequest(r.URL.Query().Get("user"))
	var err error
	if req.WindowDays, err = queryInt(r, "days", req.WindowDays); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Now, err = queryTime(r, "now"); err != nil {
		s.writeError(w, r, err)
		return
	}

	metrics, err := s.analytics.Velocity(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}

func (s *Server) handleBottlenecks(w http.ResponseWriter, r *http.Request) {
	req := contract.NewBottleneckRequest(r.URL.Query().Get("user"))
	var err error
	if req.Now, err = queryTime(r, "now"); err != nil {
		s.writeError(w, r, err)
		return
	}

	found, err := s.analytics.Bottlenecks(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if found == nil {
		found = []contract.Bottleneck{}
	}
	writeJSON(w, http.StatusOK, found)
}

func (s *Server) handleWorkload(w http.ResponseWriter, r *http.Request) {
	req := contract.NewWorkloadRequest(r.URL.Query().Get("team"))
	var err error
	if req.PeriodDays, err = queryInt(r, "days", req.PeriodDays); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Now, err = queryTime(r, "now"); err != nil {
		s.writeError(w, r, err)
		return
	}

	workload, err := s.analytics.Workload(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, workload)
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, contract.NewRequestError(contract.ErrCodeInvalidRequest,
			"query parameter '"+key+"' must be a positive integer")
	}
	return v, nil
}

func queryTime(r *http.Request, key string) (*time.Time, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	if ts := domain.ParseTime(raw); ts != nil {
		return ts, nil
	}
	return nil, contract.NewRequestError(contract.ErrCodeInvalidRequest,
		"query parameter '"+key+"' must be a timestamp")
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var reqErr *contract.RequestError
	if errors.As(err, &reqErr) {
		status := http.StatusBadRequest
		switch reqErr.Code {
		case contract.ErrCodeUnknownUser, contract.ErrCodeUnknownTeam:
			status = http.StatusNotFound
		case contract.ErrCodeStoreFailure:
			status = http.StatusInternalServerError
		}
		writeJSON(w, status, errorBody{Error: errorDetail{Code: reqErr.Code, Message: reqErr.Message}})
		return
	}

	s.logger.Error("request failed", "path", r.URL.Path, "error", err.Error())
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: errorDetail{
		Code:    contract.ErrCodeStoreFailure,
		Message: "internal error",
	}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
