package dto

import "pineus/types"

// InvoiceResponse là DTO cho response của invoice
type InvoiceResponse struct {
	ID          uint                      `json:"id"`
	InvoiceCode string                    `json:"invoiceCode"`
	BookingID   uint                      `json:"bookingId"`
	TotalAmount float64                   `json:"totalAmount"`
	PaymentDate string                    `json:"paymentDate"`
	CreatedAt   string                    `json:"createdAt"`
	User        types.InvoiceUserResponse `json:"user"`
}
