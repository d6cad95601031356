package models

import "time"

// Invoice is the record returned by the payment collaborator once a
// booking descriptor has been handed off.
type Invoice struct {
	InvoiceID    string    `json:"invoiceId"`
	UserID       string    `json:"userId"`
	Amount       float64   `json:"amount"`
	Currency     string    `json:"currency"`
	Status       string    `json:"status"`
	PaymentID    string    `json:"paymentId,omitempty"`
	ClientSecret string    `json:"clientSecret,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
