package invoice

import (
	"bytes"
	"fmt"

	"github.com/Circulx/Fathom-Legal-sub001/models"
	"github.com/Circulx/Fathom-Legal-sub001/pay"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// Generate renders a PDF invoice for a paid order. The QR encodes the order
// number plus its payment signature chain so the document can be checked
// against the stored order later.
func Generate(order *models.Order, secret string) ([]byte, error) {
	qrPayload := fmt.Sprintf("%s|%s|%s", order.OrderNumber, order.RazorpayPaymentID,
		pay.ComputeSignature(secret, order.RazorpayOrderID, order.RazorpayPaymentID))

	qrPNG, err := qrcode.Encode(qrPayload, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("generate qr: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(40, 10, "Fathom Legal")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, "Tax Invoice")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Invoice No: %s", order.OrderNumber))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Date: %s", order.CreatedAt.Format("02 Jan 2006")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Billed To: %s <%s>", order.Customer.Name, order.Customer.Email))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("%s, %s, %s %s", order.Customer.Address, order.Customer.City,
		order.Customer.State, order.Customer.Pincode))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(100, 8, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Price", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, item := range order.Items {
		title := item.Title
		if item.IsCustom && item.CustomOptionName != "" {
			title += " (" + item.CustomOptionName + ")"
		}
		pdf.CellFormat(100, 8, title, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("Rs. %.2f", item.Price), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(120, 8, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(35, 8, fmt.Sprintf("Rs. %.2f", order.Total), "1", 1, "R", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Payment: %s (%s)", order.PaymentMethod, order.PaymentStatus))

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 160, 20, 35, 35, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
