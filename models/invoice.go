package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Invoice struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	InvoiceCode string    `json:"invoiceCode" gorm:"unique;size:20"` // Mã hóa đơn duy nhất
	BookingID   uint      `json:"bookingId"`
	Booking     Booking   `json:"booking" gorm:"foreignKey:BookingID"`
	TotalAmount float64   `json:"totalAmount"` // Tổng số tiền từ Booking
	PaymentDate time.Time `json:"paymentDate"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (invoice *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	invoice.InvoiceCode = fmt.Sprintf("PNT%d", time.Now().Unix())

	var count int64
	if err := tx.Model(&Invoice{}).Where("invoice_code = ?", invoice.InvoiceCode).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("InvoiceCode đã tồn tại, hãy thử lại")
	}
	return nil
}
