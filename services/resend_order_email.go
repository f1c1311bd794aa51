package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
)

// ResendClient handles email sending via Resend API
type ResendClient struct {
	apiKey string
	from   string
}

// NewResendClient creates a new Resend client
func NewResendClient() *ResendClient {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		log.Fatal("RESEND_API_KEY environment variable not set")
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "noreply@viragweb.hu" // Default from address
	}

	return &ResendClient{
		apiKey: apiKey,
		from:   from,
	}
}

// OrderInvoiceEmailData holds data for the order invoice email
type OrderInvoiceEmailData struct {
	CustomerName  string
	CustomerEmail string
	OrderID       string
	OrderDate     string
	Items         []OrderInvoiceItem
	TotalPrice    int
	PDFContent    []byte
}

// OrderInvoiceItem represents a line item in an invoice
type OrderInvoiceItem struct {
	ProductName string
	Quantity    int
	Price       int
	Subtotal    int
}

// SendOrderInvoiceEmail sends an order invoice with HTML preview + PDF
// attachment via Resend
func (r *ResendClient) SendOrderInvoiceEmail(data OrderInvoiceEmailData) error {
	// Build invoice items HTML rows
	var itemsRows strings.Builder
	for _, item := range data.Items {
		itemsRows.WriteString(fmt.Sprintf(`
      <tr>
        <td style="padding: 8px 0; font-size: 14px; color: #262622;">%s</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #262622;">%d</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #262622;">%d Ft</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; font-weight: 600; color: #262622;">%d Ft</td>
      </tr>
    `, item.ProductName, item.Quantity, item.Price, item.Subtotal))
	}

	// Build full HTML with inline styles
	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html lang="hu">
<head>
  <meta charset="UTF-8">
  <title>Invoice - %s</title>
</head>
<body style="margin: 0; padding: 16px; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif; background-color: #fafaf7; line-height: 1.5;">
  <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width: 900px; margin: auto; background: #ffffff; padding: 24px;">
    <tr>
      <td style="border-bottom: 1px solid #e5e5e0; padding-bottom: 16px;">
        <h1 style="margin: 0; font-size: 30px; font-weight: bold; color: #262622;">SZÁMLA</h1>
        <h2 style="margin: 8px 0 0 0; font-size: 24px; font-weight: bold; color: #2e5d34;">VIRÁGWEB</h2>
      </td>
    </tr>
    <tr>
      <td style="padding: 16px 0;">
        <p style="margin: 0; font-size: 14px; font-weight: bold; color: #262622;">%s</p>
        <p style="margin: 4px 0; font-size: 14px; color: #79776d;">%s</p>
        <p style="margin: 4px 0; font-size: 14px; color: #79776d;">Rendelés: %s · %s</p>
      </td>
    </tr>
    <tr>
      <td style="padding: 16px 0; border-top: 1px solid #e5e5e0; border-bottom: 1px solid #e5e5e0;">
        <table width="100%%" cellpadding="0" cellspacing="0" border="0">
          <thead>
            <tr>
              <th style="text-align: left; font-size: 12px; text-transform: uppercase; color: #262622; padding-bottom: 8px;">Termék</th>
              <th style="text-align: right; font-size: 12px; text-transform: uppercase; color: #262622; padding-bottom: 8px;">Db</th>
              <th style="text-align: right; font-size: 12px; text-transform: uppercase; color: #262622; padding-bottom: 8px;">Egységár</th>
              <th style="text-align: right; font-size: 12px; text-transform: uppercase; color: #262622; padding-bottom: 8px;">Összesen</th>
            </tr>
          </thead>
          <tbody>
            %s
          </tbody>
        </table>
      </td>
    </tr>
    <tr>
      <td style="padding: 16px 0;">
        <p style="text-align: right; font-size: 16px; font-weight: bold; color: #262622;">Végösszeg: %d Ft</p>
        <p style="font-size: 14px; color: #79776d;">Köszönjük a vásárlást!</p>
      </td>
    </tr>
  </table>
</body>
</html>
`, data.OrderID,
		data.CustomerName, data.CustomerEmail,
		data.OrderID, data.OrderDate,
		itemsRows.String(),
		data.TotalPrice,
	)

	// Encode PDF to base64
	pdfBase64 := base64.StdEncoding.EncodeToString(data.PDFContent)

	payload := map[string]interface{}{
		"from":    r.from,
		"to":      data.CustomerEmail,
		"subject": fmt.Sprintf("Számla a(z) %s rendelésről", data.OrderID),
		"html":    htmlBody,
		"attachments": []map[string]interface{}{
			{
				"filename": fmt.Sprintf("invoice-%s.pdf", data.OrderID),
				"content":  pdfBase64,
			},
		},
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[resend] failed to marshal payload: %v", err)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		log.Printf("[resend] failed to create request: %v", err)
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.apiKey))
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("[resend] failed to send request: %v", err)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[resend] failed to read response: %v", err)
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Printf("[resend] api returned status %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("resend api error: status %d", resp.StatusCode)
	}

	log.Printf("[resend] order invoice email sent to %s for order %s", data.CustomerEmail, data.OrderID)
	return nil
}
