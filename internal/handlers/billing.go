package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jestatech/jts-site/internal/dto"
	apierrors "github.com/jestatech/jts-site/internal/errors"
	"github.com/jestatech/jts-site/internal/services"
)

// BillingHandler serves the admin billing API and invoice downloads.
type BillingHandler struct {
	billingService *services.BillingService
	pdfService     *services.InvoicePdfService
}

// NewBillingHandler creates a new BillingHandler.
func NewBillingHandler(billingService *services.BillingService, pdfService *services.InvoicePdfService) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
		pdfService:     pdfService,
	}
}

// ListBillings returns every billing record.
func (h *BillingHandler) ListBillings(c *gin.Context) {
	billings, err := h.billingService.GetAllBillings()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch billing records")
		return
	}
	c.JSON(http.StatusOK, billings)
}

// GetBilling returns one billing record by ID.
func (h *BillingHandler) GetBilling(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	billing, err := h.billingService.GetBillingByID(id)
	if err != nil {
		respondBillingError(c, err)
		return
	}
	c.JSON(http.StatusOK, billing)
}

// CreateBilling creates a billing record.
func (h *BillingHandler) CreateBilling(c *gin.Context) {
	var req dto.CreateBillingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	billing, err := h.billingService.CreateBilling(req.ToModel())
	if err != nil {
		apierrors.BadRequest(c, "Failed to create billing record")
		return
	}
	c.JSON(http.StatusOK, billing)
}

// UpdateBilling merges the non-null body fields onto a stored record.
func (h *BillingHandler) UpdateBilling(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	var patch dto.BillingPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	billing, err := h.billingService.UpdateBilling(id, patch)
	if err != nil {
		respondBillingError(c, err)
		return
	}
	c.JSON(http.StatusOK, billing)
}

// DeleteBilling removes a billing record by ID.
func (h *BillingHandler) DeleteBilling(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	if err := h.billingService.DeleteBilling(id); err != nil {
		respondBillingError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// DownloadInvoicePdf renders a billing record's invoice and serves it as an
// attachment named after the invoice number.
func (h *BillingHandler) DownloadInvoicePdf(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	billing, err := h.billingService.GetBillingByID(id)
	if err != nil {
		respondBillingError(c, err)
		return
	}

	pdfBytes, err := h.pdfService.GenerateInvoicePdf(billing)
	if err != nil {
		apierrors.InternalError(c, "Failed to generate invoice")
		return
	}

	filename := fmt.Sprintf("invoice-%d.pdf", billing.ID)
	if billing.InvoiceNumber != nil && *billing.InvoiceNumber != "" {
		filename = *billing.InvoiceNumber + ".pdf"
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Cache-Control", "must-revalidate, post-check=0, pre-check=0")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func respondBillingError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrBillingNotFound) {
		apierrors.NotFound(c, err.Error())
		return
	}
	apierrors.InternalError(c, "")
}
