package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// BookingPaidBuilder dựng thông báo khi một booking được thanh toán thành công
type BookingPaidBuilder struct {
	bookingID   uint
	campsite    string
	totalAmount float64
}

func NewBookingPaidBuilder(bookingID uint, campsite string, totalAmount float64) *BookingPaidBuilder {
	return &BookingPaidBuilder{
		bookingID:   bookingID,
		campsite:    campsite,
		totalAmount: totalAmount,
	}
}

func (b *BookingPaidBuilder) Build() string {
	return fmt.Sprintf("🔔 Booking #%d (%s) đã được thanh toán %.0f VND.", b.bookingID, b.campsite, b.totalAmount)
}
