package knowledgebase

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRestaurantConfig = `{
  "restaurant": {
    "name": "Konoba Test",
    "tagline": "test tagline",
    "description": "test description"
  },
  "contact": { "phone": "+385 21 555 014", "email": "test@test.hr" },
  "address": { "full_address": "Obala 1, Split" },
  "operating_hours": {
    "timezone": "UTC",
    "monday": { "is_closed": true },
    "tuesday": { "open": "12:00", "close": "23:00" },
    "wednesday": { "open": "12:00", "close": "23:00" },
    "thursday": { "open": "12:00", "close": "23:00" },
    "friday": { "open": "12:00", "close": "00:00" },
    "saturday": { "open": "12:00", "close": "00:00" },
    "sunday": { "open": "12:00", "close": "17:00" },
    "special_notes": "Kitchen closes an hour earlier."
  },
  "reservation_settings": {
    "min_guests": 2,
    "max_guests": 12,
    "default_time_slot_hours": 1.5,
    "advance_booking_hours": 3
  }
}`

const testMenu = `{
  "currency": "EUR",
  "categories": [
    {
      "name": "Mains",
      "description": "From the grill",
      "items": [
        { "name": "Grilled sea bass", "description": "Whole fish with chard", "price": 26.0 },
        { "name": "Black risotto", "description": "Cuttlefish risotto", "price": 18.0 }
      ]
    }
  ],
  "tasting_menu": { "available": false }
}`

func writeTestKB(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "restaurant_config.json"), []byte(testRestaurantConfig), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "menu.json"), []byte(testMenu), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "about_us.json"), []byte(`{}`), 0o644))
	return dir
}

func TestNewManagerMissingConfig(t *testing.T) {
	_, err := NewManager(t.TempDir())
	require.Error(t, err)
}

func TestGetPolicyWeekdayMapping(t *testing.T) {
	m, err := NewManager(writeTestKB(t))
	require.NoError(t, err)

	policy, err := m.GetPolicy()
	require.NoError(t, err)

	assert.Equal(t, 2, policy.MinGuests)
	assert.Equal(t, 12, policy.MaxGuests)
	assert.Equal(t, 3, policy.AdvanceBookingHours)
	require.NotNil(t, policy.Location)
	assert.Equal(t, "UTC", policy.Location.String())

	// The config file lists days Monday-first; time.Weekday starts at Sunday.
	assert.True(t, policy.HoursByWeekday[time.Monday].IsClosed)
	assert.Equal(t, "17:00", policy.HoursByWeekday[time.Sunday].Close)
	assert.Equal(t, "00:00", policy.HoursByWeekday[time.Friday].Close)
	assert.Equal(t, "12:00", policy.HoursByWeekday[time.Tuesday].Open)
}

func TestReservationSettingsDefaults(t *testing.T) {
	m, err := NewManager(writeTestKB(t))
	require.NoError(t, err)

	s := m.GetReservationSettings()
	assert.Equal(t, 1.5, s.DefaultTimeSlotHours)
	// Unset values are backfilled.
	assert.Equal(t, 60, s.MaxAdvanceBookingDays)
}

func TestIsOpenNow(t *testing.T) {
	m, err := NewManager(writeTestKB(t))
	require.NoError(t, err)

	// Tuesday 2026-01-06.
	open, msg := m.IsOpenNow(time.Date(2026, time.January, 6, 14, 0, 0, 0, time.UTC))
	assert.True(t, open)
	assert.Contains(t, msg, "open until 23:00")

	open, msg = m.IsOpenNow(time.Date(2026, time.January, 6, 9, 0, 0, 0, time.UTC))
	assert.False(t, open)
	assert.Contains(t, msg, "open today at 12:00")

	// Monday is closed.
	open, msg = m.IsOpenNow(time.Date(2026, time.January, 5, 14, 0, 0, 0, time.UTC))
	assert.False(t, open)
	assert.Contains(t, msg, "closed on Mondays")

	// Friday closes at "00:00": still open late in the evening.
	open, _ = m.IsOpenNow(time.Date(2026, time.January, 9, 23, 30, 0, 0, time.UTC))
	assert.True(t, open)
}

func TestSearchMenu(t *testing.T) {
	m, err := NewManager(writeTestKB(t))
	require.NoError(t, err)

	results := m.SearchMenu("risotto")
	require.Len(t, results, 1)
	assert.Equal(t, "Black risotto", results[0].Name)

	assert.Empty(t, m.SearchMenu("pizza"))
}

func TestRestaurantInfo(t *testing.T) {
	m, err := NewManager(writeTestKB(t))
	require.NoError(t, err)

	info := m.RestaurantInfo(time.Date(2026, time.January, 6, 14, 0, 0, 0, time.UTC))
	assert.Equal(t, "Konoba Test", info.Name)
	assert.Equal(t, "Obala 1, Split", info.FullAddress)
	assert.True(t, info.IsCurrentlyOpen)
	assert.Equal(t, "12:00 - 23:00", info.CurrentDayHours)
	assert.Contains(t, info.OperatingHoursSummary, "Monday: Closed")
	assert.Contains(t, info.ReservationRules, "Guests: 2-12")
}
