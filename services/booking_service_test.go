package services

import (
	"errors"
	"testing"

	apperrors "pineus/errors"
	"pineus/models"
)

func TestEnsureBookingOwner(t *testing.T) {
	booking := models.Booking{ID: 1, UserID: 7}

	if err := EnsureBookingOwner(&booking, 7); err != nil {
		t.Errorf("chủ sở hữu phải được truy cập: %v", err)
	}

	err := EnsureBookingOwner(&booking, 8)
	if !errors.Is(err, apperrors.ErrBookingNotOwned) {
		t.Errorf("user khác phải bị từ chối với ErrBookingNotOwned, nhận %v", err)
	}
}

func TestEnsureBookingOwnerEveryStatus(t *testing.T) {
	// Sai chủ sở hữu bị từ chối ở mọi trạng thái, không phụ thuộc bước nào
	statuses := []int{
		models.BookingStatusPending,
		models.BookingStatusConfirmed,
		models.BookingStatusPaid,
		models.BookingStatusCancelled,
	}

	for _, status := range statuses {
		booking := models.Booking{ID: 1, UserID: 7, Status: status}

		if err := EnsureBookingOwner(&booking, 7); err != nil {
			t.Errorf("trạng thái %d: chủ sở hữu phải được truy cập: %v", status, err)
		}
		if err := EnsureBookingOwner(&booking, 99); !errors.Is(err, apperrors.ErrBookingNotOwned) {
			t.Errorf("trạng thái %d: user khác phải bị từ chối, nhận %v", status, err)
		}
	}
}
