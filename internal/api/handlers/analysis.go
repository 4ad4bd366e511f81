package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/MikeZhang69/fund-growth-insight/internal/analyzer"
	"github.com/MikeZhang69/fund-growth-insight/internal/portfolio"
	"github.com/MikeZhang69/fund-growth-insight/pkg/logger"
)

// AnalysisHandler handles portfolio analysis API endpoints
// ⭐ SSOT: 분석 API 핸들러는 이 구조체에서만
type AnalysisHandler struct {
	service      *analyzer.Service
	maxBodyBytes int64
	logger       *logger.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(service *analyzer.Service, maxBodyBytes int64, log *logger.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		service:      service,
		maxBodyBytes: maxBodyBytes,
		logger:       log,
	}
}

// errorResponse is the JSON error envelope
type errorResponse struct {
	Error string `json:"error"`
}

// Analyze runs the full analysis over an uploaded CSV
// POST /api/analyze
// 본문은 text/csv 원문이거나 multipart/form-data의 "file" 필드
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	raw, err := h.readCSV(r)
	if err != nil {
		h.logger.WithError(err).Warn("Failed to read analysis request body")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	report, err := h.service.Analyze(raw)
	if err != nil {
		// 파싱 오류는 클라이언트 잘못, 나머지는 서버 오류
		if errors.Is(err, portfolio.ErrInvalidData) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		h.logger.WithError(err).Error("Analysis failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "analysis failed"})
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// readCSV extracts the raw CSV text from the request
func (h *AnalysisHandler) readCSV(r *http.Request) (string, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		file, _, err := r.FormFile("file")
		if err != nil {
			return "", errors.New(`multipart request must carry a "file" field`)
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", errors.New("request body is empty")
	}
	return string(data), nil
}

// writeJSON writes a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
