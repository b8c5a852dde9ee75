// Package receipt renders bills as printable HTML sized for thermal
// receipt printers.
package receipt

import (
	"html/template"
	"strings"

	"github.com/tandoorlabs/pos-backend/internal/core/domain"
)

const receiptTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8" />
  <title>Bill {{.Bill.BillNumber}}</title>
  <style>
    @page { size: {{.Width}} auto; margin: 0; }
    body {
      font-family: Arial, sans-serif;
      font-size: 14px;
      font-weight: 600;
      padding: 10px;
      width: {{.Width}};
    }
    .header { text-align:center; border-bottom:2px dashed #000; padding-bottom:10px; }
    .shop-name { font-size:20px; font-weight:900; }
    .order-type {
      font-size:18px;
      font-weight:900;
      text-align:center;
      margin:10px 0;
      padding:5px 0;
      border:2px solid #000;
    }
    .item-row {
      display:flex;
      justify-content:space-between;
      margin:6px 0;
    }
  </style>
</head>
<body>
  <div class="header">
    <div class="shop-name">{{.Settings.ShopName}}</div>
    <div>{{.Settings.ShopAddress}}</div>
    {{if .Settings.ShopGST}}<div>GSTIN: {{.Settings.ShopGST}}</div>{{end}}
  </div>

  <div class="order-type">{{.OrderTypeLabel}}</div>

  <div>
    <div><strong>Bill No:</strong> {{.Bill.BillNumber}}</div>
    <div><strong>Date:</strong> {{.FormattedDate}}</div>
    <div><strong>Cashier:</strong> {{.Bill.CreatedByName}}</div>
    {{if .Bill.CustomerName}}<div><strong>Customer:</strong> {{.Bill.CustomerName}}</div>{{end}}
  </div>

  <div style="border-top:1px dashed #000; border-bottom:1px dashed #000; margin:10px 0; padding:10px 0;">
    <div style="display:flex; justify-content:space-between; border-bottom:1px solid #000; padding-bottom:5px;">
      <div style="flex:2;">Item</div>
      <div style="width:40px;text-align:center;">Qty</div>
      <div style="width:70px;text-align:right;">Price</div>
      <div style="width:70px;text-align:right;">Amount</div>
    </div>
    {{range .Bill.Items}}
    <div class="item-row">
      <div style="flex:2;">{{.Name}}</div>
      <div style="width:40px;text-align:center;">{{.Quantity}}</div>
      <div style="width:70px;text-align:right;">{{.Price.StringFixed 2}}</div>
      <div style="width:70px;text-align:right;">{{.Subtotal.StringFixed 2}}</div>
    </div>
    {{end}}
  </div>

  <div>
    <div class="item-row"><span>Subtotal:</span><span>{{.Settings.Currency}}{{.Bill.Subtotal.StringFixed 2}}</span></div>
    <div class="item-row"><span>CGST:</span><span>{{.Settings.Currency}}{{.Bill.CGST.StringFixed 2}}</span></div>
    <div class="item-row"><span>SGST:</span><span>{{.Settings.Currency}}{{.Bill.SGST.StringFixed 2}}</span></div>
    <div class="item-row" style="border-top:2px solid #000; padding-top:5px; font-size:18px; font-weight:900;">
      <span>GRAND TOTAL:</span>
      <span>{{.Settings.Currency}}{{.Bill.Total.StringFixed 2}}</span>
    </div>
  </div>

  <div style="text-align:center; margin-top:15px;">
    <div style="font-size:15px; font-weight:900;">Thank You! Visit Again!</div>
  </div>
</body>
</html>
`

var tmpl = template.Must(template.New("receipt").Parse(receiptTemplate))

type templateData struct {
	Bill           *domain.Bill
	Settings       *domain.AppSettings
	Width          string
	OrderTypeLabel string
	FormattedDate  string
}

// Render produces the printable HTML for a bill. The page width follows
// the printer format in settings (58mm or 80mm).
func Render(bill *domain.Bill, settings *domain.AppSettings) (string, error) {
	width := "80mm"
	if settings.PrinterFormat == domain.Printer58mm {
		width = "58mm"
	}

	label := "DINE-IN"
	if bill.OrderType == domain.Parcel {
		label = "PARCEL"
	}

	var sb strings.Builder
	err := tmpl.Execute(&sb, templateData{
		Bill:           bill,
		Settings:       settings,
		Width:          width,
		OrderTypeLabel: label,
		FormattedDate:  bill.CreatedAt.Format("02/01/2006, 3:04 PM"),
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}
