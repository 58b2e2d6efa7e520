package storage

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxreelchp-lab/telegram-food-bot/internal/database"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestInitDB_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db1, err := database.InitDB(path)
	require.NoError(t, err)
	db1.Close()

	// A second init against the same file must not fail.
	db2, err := database.InitDB(path)
	require.NoError(t, err)
	db2.Close()
}

func TestSaveAndGetUserLocation(t *testing.T) {
	db := testDB(t)

	err := SaveUserLocation(db, 123, 1.1, 2.2, "CityX", "AddrY")
	require.NoError(t, err)

	loc, err := GetUserLocation(db, 123)
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, int64(123), loc.UserID)
	assert.InDelta(t, 1.1, loc.Lat, 1e-9)
	assert.InDelta(t, 2.2, loc.Lon, 1e-9)
	assert.Equal(t, "CityX", loc.City)
	assert.Equal(t, "AddrY", loc.Address)
	assert.InDelta(t, time.Now().Unix(), loc.UpdatedAt, 5)
}

func TestGetUserLocation_Absent(t *testing.T) {
	db := testDB(t)

	loc, err := GetUserLocation(db, 999)
	assert.NoError(t, err)
	assert.Nil(t, loc)
}

func TestSaveUserLocation_UpsertReplacesRow(t *testing.T) {
	db := testDB(t)

	require.NoError(t, SaveUserLocation(db, 123, 1.1, 2.2, "CityX", "AddrY"))
	require.NoError(t, SaveUserLocation(db, 123, 35.7, 51.4, "Tehran", "Azadi Tower"))

	loc, err := GetUserLocation(db, 123)
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.InDelta(t, 35.7, loc.Lat, 1e-9)
	assert.InDelta(t, 51.4, loc.Lon, 1e-9)
	assert.Equal(t, "Tehran", loc.City)
	assert.Equal(t, "Azadi Tower", loc.Address)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM users WHERE user_id = ?", 123).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestSaveUserLocation_EmptyCityAndAddress(t *testing.T) {
	db := testDB(t)

	// Geocoding failures store empty strings, not NULLs.
	require.NoError(t, SaveUserLocation(db, 7, 0, 0, "", ""))

	loc, err := GetUserLocation(db, 7)
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, "", loc.City)
	assert.Equal(t, "", loc.Address)
}

func TestSaveUserLocation_IndependentUsers(t *testing.T) {
	db := testDB(t)

	require.NoError(t, SaveUserLocation(db, 1, 10, 20, "A", "a"))
	require.NoError(t, SaveUserLocation(db, 2, 30, 40, "B", "b"))

	first, err := GetUserLocation(db, 1)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "A", first.City)

	second, err := GetUserLocation(db, 2)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, "B", second.City)
}
