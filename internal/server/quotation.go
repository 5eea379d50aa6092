package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	quotationdomain "github.com/turingco/quotation/internal/quotation/domain"
)

// @Summary      Create Quotation
// @Description  Create a new quotation draft
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        request body quotationdomain.CreateRequest true "Create Quotation Request"
// @Success      200  {object}  DataResponse
// @Router       /quotations [post]
func (s *Server) CreateQuotation(c *gin.Context) {
	var req quotationdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.quotationSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

// @Summary      List Quotations
// @Description  List quotations, newest first
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        school_name  query  string  false  "School Name filter"
// @Param        page_token   query  string  false  "Page Token"
// @Param        page_size    query  int     false  "Page Size"
// @Success      200  {object}  ListResponse
// @Router       /quotations [get]
func (s *Server) ListQuotations(c *gin.Context) {
	var query quotationdomain.ListOptions
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.quotationSvc.List(c.Request.Context(), query)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondList(c, resp.Quotations, &resp.PageInfo)
}

// @Summary      Get Quotation
// @Description  Get quotation by ID
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Quotation ID"
// @Success      200  {object}  DataResponse
// @Router       /quotations/{id} [get]
func (s *Server) GetQuotation(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.quotationSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

// @Summary      Get Quotation Amounts
// @Description  Recompute billing period and priced amounts for a quotation
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Quotation ID"
// @Success      200  {object}  DataResponse
// @Router       /quotations/{id}/amounts [get]
func (s *Server) GetQuotationAmounts(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.quotationSvc.ComputeAmounts(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

// @Summary      Issue Quotation
// @Description  Allocate a document number and download the rendered PDF
// @Tags         quotations
// @Accept       json
// @Produce      application/pdf
// @Param        id   path      string  true  "Quotation ID"
// @Success      200  {file}    binary
// @Router       /quotations/{id}/issue [post]
func (s *Server) IssueQuotation(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.quotationSvc.Issue(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("X-Document-Number", resp.DocumentNumber)
	c.Header("Content-Disposition",
		fmt.Sprintf(`attachment; filename="quotation-%s.pdf"`, resp.DocumentNumber))
	c.Data(http.StatusOK, "application/pdf", resp.PDF)
}
