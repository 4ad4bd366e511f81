package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeZhang69/fund-growth-insight/internal/analyzer"
	"github.com/MikeZhang69/fund-growth-insight/pkg/logger"
)

const sampleCSV = `Fund Growth History
date,benchmarkA,benchmarkB,benchmarkC,shares,shareValue,gainLoss,dailyGain,marketValue,principal
01/06/2021,3580.50,14520.30,5210.10,1000,1.0000,0.00,0.00,1000.00,1000.00
02/06/2021,3590.20,14600.80,5230.40,1000,1.1000,100.00,100.00,1100.00,1000.00
03/06/2021,3610.00,14700.00,5300.00,1000,1.2000,200.00,100.00,1200.00,1000.00`

func newTestHandler() *AnalysisHandler {
	svc := analyzer.New(0.03, logger.Nop())
	return NewAnalysisHandler(svc, 1<<20, logger.Nop())
}

func TestAnalyze_RawBody(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(sampleCSV))
	req.Header.Set("Content-Type", "text/csv")
	rec := httptest.NewRecorder()

	handler.Analyze(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var report analyzer.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 3, report.RecordCount)
	assert.Equal(t, 20.00, report.Summary.TotalReturn)
	assert.Len(t, report.Benchmarks, 3)
}

func TestAnalyze_MultipartUpload(t *testing.T) {
	handler := newTestHandler()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "portfolio.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(sampleCSV))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()

	handler.Analyze(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var report analyzer.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 3, report.RecordCount)
}

func TestAnalyze_InvalidCSVIsBadRequest(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/analyze",
		strings.NewReader("Fund Growth History\nheader only"))
	rec := httptest.NewRecorder()

	handler.Analyze(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "insufficient rows")
}

func TestAnalyze_EmptyBodyIsBadRequest(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(""))
	rec := httptest.NewRecorder()

	handler.Analyze(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyze_MultipartWithoutFileField(t *testing.T) {
	handler := newTestHandler()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("data", "not a file"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()

	handler.Analyze(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
