package constants

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// Campsite status
const (
	CampsiteStatusAvailable   = 0
	CampsiteStatusOccupied    = 1
	CampsiteStatusMaintenance = 2
)
