package builders

import (
	"testing"
	"time"

	"pineus/models"
)

func TestBookingBuilder(t *testing.T) {
	checkIn := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)

	booking := NewBookingBuilder().
		WithUser(7).
		WithCampsite(3).
		WithDates(checkIn, checkOut).
		WithStatus(models.BookingStatusPending).
		WithTotalPrice(300000).
		Build()

	if booking.UserID != 7 {
		t.Errorf("UserID = %d, muốn 7", booking.UserID)
	}
	if booking.CampsiteID != 3 {
		t.Errorf("CampsiteID = %d, muốn 3", booking.CampsiteID)
	}
	if !booking.CheckIn.Equal(checkIn) || !booking.CheckOut.Equal(checkOut) {
		t.Error("ngày nhận/trả chỗ không khớp")
	}
	if booking.Duration != 3 {
		t.Errorf("Duration = %d, muốn 3", booking.Duration)
	}
	if booking.Status != models.BookingStatusPending {
		t.Errorf("Status = %d, muốn %d", booking.Status, models.BookingStatusPending)
	}
	if booking.TotalPrice != 300000 {
		t.Errorf("TotalPrice = %v, muốn 300000", booking.TotalPrice)
	}
}
