package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// DefaultPayCodeGenerator renders a QR code pointing the guest at the
// platform's payment page for one order.
type DefaultPayCodeGenerator struct {
	BaseURL string
}

func (g DefaultPayCodeGenerator) Generate(orderID string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/pay.html?order_id=%s", g.BaseURL, orderID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
