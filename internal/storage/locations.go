package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/maxreelchp-lab/telegram-food-bot/internal/database"
)

// SaveUserLocation writes or fully replaces the location row for userID,
// stamping the current time. A single upsert statement keeps the write
// atomic; storage errors always propagate to the caller.
func SaveUserLocation(db *sql.DB, userID int64, lat, lon float64, city, address string) error {
	query := `
INSERT INTO users (user_id, lat, lon, city, address, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(user_id) DO UPDATE SET
    lat=excluded.lat,
    lon=excluded.lon,
    city=excluded.city,
    address=excluded.address,
    updated_at=excluded.updated_at`

	_, err := db.Exec(query, userID, lat, lon, city, address, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("saving location for user %d: %w", userID, err)
	}
	return nil
}

// GetUserLocation returns the stored location for userID, or nil when the
// user has never shared one. A missing row is a normal outcome, not an
// error.
func GetUserLocation(db *sql.DB, userID int64) (*database.UserLocation, error) {
	query := "SELECT user_id, lat, lon, city, address, updated_at FROM users WHERE user_id = ?"
	var loc database.UserLocation
	err := db.QueryRow(query, userID).Scan(&loc.UserID, &loc.Lat, &loc.Lon, &loc.City, &loc.Address, &loc.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &loc, nil
}
