package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// ErrInvalidQRData is returned when scanned text is not a valid payload.
var ErrInvalidQRData = errors.New("invalid QR code data format")

// QRData is the denormalized snapshot embedded in a purchase's QR symbol.
// It is frozen at encode time: the shop name, dates and amounts reflect the
// purchase as it was created, while a live lookup by ID returns current state.
// There is no version field; any field added later must stay optional so old
// symbols keep decoding.
type QRData struct {
	ID            string   `json:"id"`
	SerialNumbers []string `json:"serial_numbers"`
	ShopName      string   `json:"shop_name"`
	Date          string   `json:"date"`
	Category      string   `json:"category"`
	ItemType      string   `json:"item_type"`
	ProductName   string   `json:"product_name,omitempty"`
	Brand         string   `json:"brand,omitempty"`
	ModelCode     string   `json:"model_code,omitempty"`
	TotalAmount   float64  `json:"total_amount,omitempty"`
}

// Encode renders the payload as the JSON document embedded in the QR symbol.
func (q QRData) Encode() (string, error) {
	b, err := json.Marshal(q)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeQRData parses scanned text. The parse is strict: anything that is not
// a JSON object carrying an id fails with ErrInvalidQRData and no partial
// result is returned.
func DecodeQRData(data string) (*QRData, error) {
	var q QRData
	if err := json.Unmarshal([]byte(data), &q); err != nil {
		return nil, ErrInvalidQRData
	}
	if q.ID == "" {
		return nil, ErrInvalidQRData
	}
	return &q, nil
}

func (q QRData) Value() (driver.Value, error) {
	b, err := json.Marshal(q)
	return string(b), err
}

func (q *QRData) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, q)
	case string:
		return json.Unmarshal([]byte(v), q)
	default:
		return errors.New("unsupported type for QRData")
	}
}
