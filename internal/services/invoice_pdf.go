package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jestatech/jts-site/internal/models"
	"github.com/jung-kurt/gofpdf"
)

const invoiceDateFormat = "02 Jan 2006"

// InvoicePdfService renders a billing record as a PDF invoice. The layout is
// fixed: letterhead, title, details table, bill-to block, one line item,
// totals, optional payment line, footer.
type InvoicePdfService struct{}

// NewInvoicePdfService creates a new InvoicePdfService.
func NewInvoicePdfService() *InvoicePdfService {
	return &InvoicePdfService{}
}

// GenerateInvoicePdf renders the invoice for one billing record.
func (s *InvoicePdfService) GenerateInvoicePdf(billing *models.Billing) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	contentWidth := pageWidth - left - right

	// Letterhead
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(37, 99, 235)
	pdf.CellFormat(contentWidth, 12, "Jesta Tech Solutions", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(107, 114, 128)
	pdf.MultiCell(contentWidth, 5,
		"Anantapur, Andhra Pradesh 515001\nPhone: +91 8520999351\nEmail: jestatechsolutions@gmail.com",
		"", "L", false)

	// Title
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 26)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(contentWidth, 12, "INVOICE", "", 1, "R", false, 0, "")

	// Details table
	pdf.Ln(6)
	invoiceNumber := "N/A"
	if billing.InvoiceNumber != nil {
		invoiceNumber = *billing.InvoiceNumber
	}
	status := billing.Status
	if status == "" {
		status = "PENDING"
	}
	details := [][2]string{
		{"Invoice Number:", invoiceNumber},
		{"Invoice Date:", formatInvoiceDate(&billing.CreatedAt)},
		{"Due Date:", formatInvoiceDate(billing.DueDate)},
		{"Status:", status},
	}
	labelWidth := contentWidth * 2 / 5
	for _, row := range details {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(labelWidth, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(contentWidth-labelWidth, 8, row[1], "1", 1, "L", false, 0, "")
	}

	// Bill to
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentWidth, 8, "Bill To:", "", 1, "L", false, 0, "")
	clientName := billing.ClientName
	if clientName == "" {
		clientName = "N/A"
	}
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(contentWidth, 8, clientName, "", 1, "L", false, 0, "")

	// Line item table
	pdf.Ln(6)
	colWidths := []float64{contentWidth / 2, contentWidth / 6, contentWidth / 6, contentWidth / 6}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(37, 99, 235)
	pdf.SetTextColor(255, 255, 255)
	headers := []string{"Description", "Quantity", "Rate", "Amount"}
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 10, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	description := strings.TrimSpace(billing.Notes)
	if description == "" {
		description = "Professional Services"
	}
	amount := formatCurrency(billing.Amount)

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(colWidths[0], 9, description, "1", 0, "L", false, 0, "")
	pdf.CellFormat(colWidths[1], 9, "1", "1", 0, "C", false, 0, "")
	pdf.CellFormat(colWidths[2], 9, amount, "1", 0, "R", false, 0, "")
	pdf.CellFormat(colWidths[3], 9, amount, "1", 1, "R", false, 0, "")

	// Subtotal, tax and total. Tax is fixed at zero, so the total always
	// equals the amount.
	totals := []struct {
		label string
		value string
		fill  bool
	}{
		{"Subtotal:", amount, false},
		{"Tax (0%):", formatCurrency(0), false},
		{"Total:", amount, true},
	}
	for _, row := range totals {
		pdf.CellFormat(colWidths[0], 9, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 9, "", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(colWidths[2], 9, row.label, "", 0, "R", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		if row.fill {
			pdf.SetFillColor(243, 244, 246)
			pdf.SetFont("Helvetica", "B", 12)
		}
		pdf.CellFormat(colWidths[3], 9, row.value, "1", 1, "R", row.fill, 0, "")
	}

	// Payment line
	if billing.PaidDate != nil {
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(16, 185, 129)
		pdf.CellFormat(contentWidth, 8,
			"Payment Received: "+billing.PaidDate.Format(invoiceDateFormat),
			"", 1, "L", false, 0, "")
	}

	// Footer
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(107, 114, 128)
	pdf.MultiCell(contentWidth, 5,
		"Thank you for your business!\n\n"+
			"Terms & Conditions:\n"+
			"Payment must be completed within the timeline mentioned in this invoice.\n"+
			"Jesta Tech Solutions is not responsible for delays caused by client inputs or third-party services.",
		"", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice: %w", err)
	}
	return buf.Bytes(), nil
}

func formatInvoiceDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "N/A"
	}
	return t.Format(invoiceDateFormat)
}

// formatCurrency renders an amount with thousands grouping and two decimals.
// The letterhead currency is the rupee; the PDF core fonts cannot encode the
// rupee sign, so the Rs. prefix stands in.
func formatCurrency(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	whole := fmt.Sprintf("%.2f", amount)
	dot := strings.Index(whole, ".")
	intPart, fracPart := whole[:dot], whole[dot:]

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return "Rs. " + sign + grouped.String() + fracPart
}
