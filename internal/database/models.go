package database

// UserLocation is the last known location for a Telegram user. One row
// per user; every new location fully replaces the previous one.
type UserLocation struct {
	UserID    int64
	Lat       float64
	Lon       float64
	City      string
	Address   string
	UpdatedAt int64
}
