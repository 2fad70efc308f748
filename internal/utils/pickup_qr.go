package utils

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/skip2/go-qrcode"
)

// GeneratePickupQR génère le QR présenté au comptoir de retrait, en
// base64 prêt à mettre dans <img src="...">
func GeneratePickupQR(orderID string, pickupTime time.Time) (string, error) {
	payload := fmt.Sprintf("FRESHMART\n%s\n%s", orderID, pickupTime.Format(time.RFC3339))

	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
