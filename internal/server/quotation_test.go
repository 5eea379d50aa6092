package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	quotationdomain "github.com/turingco/quotation/internal/quotation/domain"
	"go.uber.org/zap"
)

type stubQuotationService struct {
	quotation *quotationdomain.Quotation
	issue     *quotationdomain.IssueResult
	err       error
}

func (s *stubQuotationService) Create(context.Context, quotationdomain.CreateRequest) (*quotationdomain.Quotation, error) {
	return s.quotation, s.err
}

func (s *stubQuotationService) Get(context.Context, string) (*quotationdomain.Quotation, error) {
	return s.quotation, s.err
}

func (s *stubQuotationService) List(context.Context, quotationdomain.ListOptions) (*quotationdomain.ListResult, error) {
	return &quotationdomain.ListResult{}, s.err
}

func (s *stubQuotationService) ComputeAmounts(context.Context, string) (*quotationdomain.AmountsResult, error) {
	return &quotationdomain.AmountsResult{}, s.err
}

func (s *stubQuotationService) Issue(context.Context, string) (*quotationdomain.IssueResult, error) {
	return s.issue, s.err
}

func newTestServer(svc quotationdomain.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	s := &Server{
		engine:       engine,
		log:          zap.NewNop(),
		quotationSvc: svc,
	}
	s.RegisterRoutes()
	return engine
}

func TestCreateQuotationRejectsMalformedBody(t *testing.T) {
	engine := newTestServer(&stubQuotationService{})

	req := httptest.NewRequest(http.MethodPost, "/v1/quotations", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_request")
}

func TestCreateQuotationMapsValidationErrors(t *testing.T) {
	engine := newTestServer(&stubQuotationService{err: quotationdomain.ErrInvalidSchoolName})

	req := httptest.NewRequest(http.MethodPost, "/v1/quotations", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation_failed")
}

func TestGetQuotationNotFound(t *testing.T) {
	engine := newTestServer(&stubQuotationService{err: quotationdomain.ErrNotFound})

	req := httptest.NewRequest(http.MethodGet, "/v1/quotations/123", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIssueQuotationServesPDF(t *testing.T) {
	engine := newTestServer(&stubQuotationService{
		issue: &quotationdomain.IssueResult{
			DocumentNumber: "2025-001",
			IssuedAt:       time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
			PDF:            []byte("%PDF-stub"),
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/quotations/123/issue", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "2025-001", rec.Header().Get("X-Document-Number"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "quotation-2025-001.pdf")
	assert.Equal(t, "%PDF-stub", rec.Body.String())
}
