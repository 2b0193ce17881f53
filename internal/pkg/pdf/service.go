// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/retailpos-backend/internal/config"
	"github.com/your-org/retailpos-backend/internal/domain/sale"
)

// Service handles PDF generation
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// GenerateReceipt generates a PDF receipt for a committed sale
func (s *Service) GenerateReceipt(sl *sale.Sale) (*bytes.Buffer, error) {
	data := ReceiptData{
		Sale:     sl,
		Payments: sale.DisplayPayments(sl),
		Company: CompanyInfo{
			Name:    s.config.Business.CompanyName,
			Address: s.config.Business.CompanyAddress,
			Phone:   s.config.Business.CompanyPhone,
			TaxID:   s.config.Business.CompanyTaxID,
		},
	}
	if sl.Customer != nil {
		data.CustomerName = sl.Customer.Name
	}

	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(true)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	err = pdfg.Create()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// generateHTML generates HTML content from template
func (s *Service) generateHTML(data ReceiptData) (string, error) {
	tmpl := template.Must(template.New("receipt").Parse(receiptTemplate))

	var buf bytes.Buffer
	err := tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// ReceiptData represents the data passed to the receipt template
type ReceiptData struct {
	Sale         *sale.Sale            `json:"sale"`
	Payments     []sale.DisplayPayment `json:"payments"`
	CustomerName string                `json:"customer_name"`
	Company      CompanyInfo           `json:"company"`
}

// CompanyInfo represents company information
type CompanyInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	TaxID   string `json:"tax_id"`
}

// Receipt HTML template, sized for thermal printer paper
const receiptTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Receipt {{.Sale.Number}}</title>
    <style>
        body {
            font-family: "Courier New", monospace;
            margin: 0;
            padding: 10px;
            font-size: 12px;
            color: #000;
        }
        .header {
            text-align: center;
            border-bottom: 1px dashed #000;
            padding-bottom: 8px;
            margin-bottom: 8px;
        }
        .header h1 {
            font-size: 16px;
            margin: 0 0 4px 0;
        }
        .header p {
            margin: 2px 0;
        }
        .meta {
            margin-bottom: 8px;
        }
        .meta p {
            margin: 2px 0;
        }
        .items-table {
            width: 100%;
            border-collapse: collapse;
            margin-bottom: 8px;
        }
        .items-table th,
        .items-table td {
            padding: 2px 4px;
            text-align: left;
        }
        .items-table th {
            border-bottom: 1px solid #000;
        }
        .items-table .num {
            text-align: right;
        }
        .totals {
            border-top: 1px dashed #000;
            padding-top: 6px;
        }
        .totals table {
            width: 100%;
        }
        .totals .label {
            text-align: left;
        }
        .totals .amount {
            text-align: right;
        }
        .totals .grand {
            font-weight: bold;
            font-size: 14px;
        }
        .payments {
            border-top: 1px dashed #000;
            margin-top: 6px;
            padding-top: 6px;
        }
        .footer {
            margin-top: 10px;
            text-align: center;
            border-top: 1px dashed #000;
            padding-top: 6px;
        }
    </style>
</head>
<body>
    <div class="header">
        <h1>{{.Company.Name}}</h1>
        <p>{{.Company.Address}}</p>
        <p>Tel: {{.Company.Phone}}</p>
        {{if .Company.TaxID}}<p>RIF: {{.Company.TaxID}}</p>{{end}}
    </div>

    <div class="meta">
        <p><strong>Receipt:</strong> {{.Sale.Number}}</p>
        <p><strong>Date:</strong> {{.Sale.CreatedAt.Format "02/01/2006 15:04"}}</p>
        {{if .CustomerName}}<p><strong>Customer:</strong> {{.CustomerName}}</p>{{end}}
        <p><strong>Rate:</strong> {{printf "%.2f" .Sale.ExchangeRate}} Bs/$</p>
    </div>

    <table class="items-table">
        <thead>
            <tr>
                <th>Item</th>
                <th class="num">Qty</th>
                <th class="num">Price</th>
                <th class="num">Total</th>
            </tr>
        </thead>
        <tbody>
            {{range .Sale.Items}}
            <tr>
                <td>{{.Name}}</td>
                <td class="num">{{.Quantity}}</td>
                <td class="num">${{printf "%.2f" .UnitPriceUSD}}</td>
                <td class="num">${{printf "%.2f" .LineTotalUSD}}</td>
            </tr>
            {{end}}
        </tbody>
    </table>

    <div class="totals">
        <table>
            <tr>
                <td class="label">Subtotal:</td>
                <td class="amount">${{printf "%.2f" .Sale.SubtotalUSD}}</td>
            </tr>
            {{if gt .Sale.DiscountUSD 0.0}}
            <tr>
                <td class="label">Discount ({{printf "%.0f" .Sale.DiscountPercent}}%):</td>
                <td class="amount">-${{printf "%.2f" .Sale.DiscountUSD}}</td>
            </tr>
            {{end}}
            {{if gt .Sale.PointsRedeemed 0}}
            <tr>
                <td class="label">Points ({{.Sale.PointsRedeemed}}):</td>
                <td class="amount">-${{printf "%.2f" .Sale.PointsValueUSD}}</td>
            </tr>
            {{end}}
            <tr class="grand">
                <td class="label">TOTAL:</td>
                <td class="amount">${{printf "%.2f" .Sale.NetTotalUSD}}</td>
            </tr>
            <tr class="grand">
                <td class="label">TOTAL Bs:</td>
                <td class="amount">{{printf "%.2f" .Sale.TotalVES}}</td>
            </tr>
        </table>
    </div>

    <div class="payments">
        <table>
            {{range .Payments}}
            <tr>
                <td class="label">{{.Channel}} ({{.Currency}}):</td>
                <td class="amount">{{printf "%.2f" .Amount}}</td>
            </tr>
            {{end}}
            {{if gt .Sale.DebtUSD 0.0}}
            <tr>
                <td class="label"><strong>Pending:</strong></td>
                <td class="amount"><strong>${{printf "%.2f" .Sale.DebtUSD}}</strong></td>
            </tr>
            {{end}}
        </table>
    </div>

    <div class="footer">
        <p>Thank you for your purchase!</p>
    </div>
</body>
</html>
`
