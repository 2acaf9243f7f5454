package email

import (
	"fmt"
	"html/template"
	"math"
	"strings"

	"cottage-store/internal/model"
)

// orderTemplate renders the order-confirmation body sent to the store
// mailbox after a web checkout.
var orderTemplate = template.Must(template.New("order").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; line-height: 1.6; color: #2C1810; background-color: #FFF8DC; margin: 0; padding: 0; }
    .container { max-width: 600px; margin: 0 auto; background: #ffffff; border-radius: 16px; overflow: hidden; }
    .header { background: #2C1810; padding: 40px 20px; text-align: center; color: #FFF8DC; }
    .content { padding: 40px 30px; }
    .order-info { background: #FFF8F0; border: 1px solid #EFEBE9; border-radius: 12px; padding: 20px; margin-bottom: 30px; }
    .items { width: 100%; border-collapse: collapse; margin-bottom: 30px; }
    .items th { text-align: left; padding: 12px; border-bottom: 2px solid #EFEBE9; color: #8B4513; font-size: 12px; text-transform: uppercase; }
    .items td { padding: 16px 12px; border-bottom: 1px solid #F5F5F5; font-size: 14px; }
    .total { text-align: right; font-size: 24px; font-weight: bold; color: #FF9933; }
    .footer { background: #FDFBF7; padding: 30px; text-align: center; font-size: 12px; color: #8D6E63; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>{{.StoreName}}</h1>
    </div>
    <div class="content">
      <p>Namaste <strong>{{.Name}}</strong>, we are delighted to confirm your order.</p>
      <div class="order-info">
        <p><strong>Mobile:</strong> {{.Mobile}}</p>
        <p><strong>Delivery Address:</strong><br>{{.Address}}</p>
      </div>
      <table class="items">
        <thead>
          <tr><th>Item</th><th style="text-align: center;">Qty</th><th style="text-align: right;">Price</th></tr>
        </thead>
        <tbody>
          {{range .Items}}<tr><td>{{.Name}}</td><td style="text-align: center;">x{{.Quantity}}</td><td style="text-align: right;">{{.Price}}</td></tr>
          {{end}}
        </tbody>
      </table>
      <p style="text-align: right; margin: 0; font-size: 14px; color: #666;">Total Amount</p>
      <div class="total">&#8377;{{.Total}}</div>
    </div>
    <div class="footer">
      <p>{{.StoreName}} order notification</p>
    </div>
  </div>
</body>
</html>`))

type orderEmailData struct {
	StoreName string
	Name      string
	Mobile    string
	Address   string
	Items     []model.CheckoutItem
	Total     string
}

// RenderOrderConfirmation builds the HTML body for a web-checkout
// confirmation.
func RenderOrderConfirmation(storeName string, req *model.CheckoutRequest) (string, error) {
	var buf strings.Builder
	err := orderTemplate.Execute(&buf, orderEmailData{
		StoreName: storeName,
		Name:      req.Name,
		Mobile:    req.Mobile,
		Address:   req.Address,
		Items:     req.Items,
		Total:     FormatIndian(req.Total),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render order email: %w", err)
	}
	return buf.String(), nil
}

// FormatIndian formats an amount with Indian digit grouping: the last three
// digits form one group, every two digits after that another
// (1234567 -> "12,34,567"). Fractions keep two decimal places when present.
func FormatIndian(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	// Round to paise first so a fraction carrying into the next rupee
	// (999.999) regroups as 1,000 rather than rendering as 999.00.
	paise := int64(math.Round(amount * 100))
	whole := paise / 100
	frac := paise % 100

	digits := fmt.Sprintf("%d", whole)
	var grouped string
	if len(digits) <= 3 {
		grouped = digits
	} else {
		head := digits[:len(digits)-3]
		tail := digits[len(digits)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		parts = append([]string{head}, parts...)
		grouped = strings.Join(parts, ",") + "," + tail
	}

	if frac > 0 {
		grouped += fmt.Sprintf(".%02d", frac)
	}
	if neg {
		grouped = "-" + grouped
	}
	return grouped
}
