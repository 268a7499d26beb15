package knowledgebase

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"konoba/config"
	"konoba/models"
	"konoba/utils"

	"go.uber.org/zap"
)

// Manager loads and serves the restaurant knowledge base: configuration,
// menu and about-us content from JSON files on disk.
type Manager struct {
	mu       sync.RWMutex
	path     string
	cfg      restaurantConfig
	hours    map[string]models.OperatingHours
	timezone string
	notes    string
	menu     menuData
	about    aboutUsData
	location *time.Location
}

var (
	defaultManager *Manager
	once           sync.Once
)

// GetManager returns the process-wide knowledge base manager, loading it on
// first use from the configured path.
func GetManager() *Manager {
	once.Do(func() {
		m, err := NewManager(config.AppConfig.KnowledgeBasePath)
		if err != nil {
			utils.GetLogger().Warn("knowledge base load failed, using defaults", zap.Error(err))
			m = &Manager{path: config.AppConfig.KnowledgeBasePath}
			m.applyDefaults()
		}
		defaultManager = m
	})
	return defaultManager
}

// NewManager loads the knowledge base from the given directory.
func NewManager(path string) (*Manager, error) {
	m := &Manager{path: path}
	if err := m.Reload(); err != nil {
		return nil, err
	}
	return m, nil
}

// Reload re-reads all knowledge base files, useful after admin updates.
func (m *Manager) Reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var cfg restaurantConfig
	if err := loadJSONFile(filepath.Join(m.path, "restaurant_config.json"), &cfg); err != nil {
		return fmt.Errorf("failed to load restaurant config: %w", err)
	}
	m.cfg = cfg

	m.hours = make(map[string]models.OperatingHours, len(weekdayKeys))
	for _, day := range weekdayKeys {
		raw, ok := cfg.OperatingHours[day]
		if !ok {
			m.hours[day] = models.OperatingHours{IsClosed: true}
			continue
		}
		var oh models.OperatingHours
		if err := json.Unmarshal(raw, &oh); err != nil {
			return fmt.Errorf("failed to parse hours for %s: %w", day, err)
		}
		m.hours[day] = oh
	}
	if raw, ok := cfg.OperatingHours["timezone"]; ok {
		_ = json.Unmarshal(raw, &m.timezone)
	}
	if raw, ok := cfg.OperatingHours["special_notes"]; ok {
		_ = json.Unmarshal(raw, &m.notes)
	}
	if m.timezone == "" {
		m.timezone = config.AppConfig.RestaurantTZ
	}
	loc, err := time.LoadLocation(m.timezone)
	if err != nil {
		return fmt.Errorf("invalid restaurant timezone %q: %w", m.timezone, err)
	}
	m.location = loc

	m.applySettingsDefaults()

	// Menu and about-us are optional; an empty file just degrades the
	// responder's context.
	if err := loadJSONFile(filepath.Join(m.path, "menu.json"), &m.menu); err != nil {
		utils.GetLogger().Warn("menu.json not loaded", zap.Error(err))
		m.menu = menuData{}
	}
	if err := loadJSONFile(filepath.Join(m.path, "about_us.json"), &m.about); err != nil {
		utils.GetLogger().Warn("about_us.json not loaded", zap.Error(err))
		m.about = aboutUsData{}
	}

	return nil
}

func loadJSONFile(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (m *Manager) applyDefaults() {
	m.hours = make(map[string]models.OperatingHours)
	for _, day := range weekdayKeys {
		m.hours[day] = models.OperatingHours{Open: "10:00", Close: "23:00"}
	}
	m.timezone = config.AppConfig.RestaurantTZ
	if loc, err := time.LoadLocation(m.timezone); err == nil {
		m.location = loc
	} else {
		m.location = time.UTC
	}
	m.applySettingsDefaults()
}

func (m *Manager) applySettingsDefaults() {
	s := &m.cfg.ReservationSettings
	if s.MinGuests == 0 {
		s.MinGuests = 1
	}
	if s.MaxGuests == 0 {
		s.MaxGuests = 20
	}
	if s.DefaultTimeSlotHours == 0 {
		s.DefaultTimeSlotHours = 2
	}
	if s.AdvanceBookingHours == 0 {
		s.AdvanceBookingHours = 1
	}
	if s.MaxAdvanceBookingDays == 0 {
		s.MaxAdvanceBookingDays = 60
	}
}

// GetPolicy flattens the knowledge base into the validator's policy shape.
func (m *Manager) GetPolicy() (models.BookingPolicy, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	byWeekday := make(map[time.Weekday]models.OperatingHours, len(weekdayKeys))
	for i, day := range weekdayKeys {
		// weekdayKeys starts at Monday; time.Weekday starts at Sunday.
		byWeekday[time.Weekday((i+1)%7)] = m.hours[day]
	}

	return models.BookingPolicy{
		MinGuests:           m.cfg.ReservationSettings.MinGuests,
		MaxGuests:           m.cfg.ReservationSettings.MaxGuests,
		AdvanceBookingHours: m.cfg.ReservationSettings.AdvanceBookingHours,
		HoursByWeekday:      byWeekday,
		Location:            m.location,
	}, nil
}

// GetReservationSettings returns the full reservation settings block.
func (m *Manager) GetReservationSettings() models.ReservationSettings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg.ReservationSettings
}

// RestaurantName returns the configured name, with a fallback.
func (m *Manager) RestaurantName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.cfg.Restaurant.Name == "" {
		return "Our Restaurant"
	}
	return m.cfg.Restaurant.Name
}

// OperatingHoursFormatted renders all weekly hours as display text.
func (m *Manager) OperatingHoursFormatted() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var lines []string
	for _, day := range weekdayKeys {
		oh := m.hours[day]
		title := strings.ToUpper(day[:1]) + day[1:]
		if oh.IsClosed {
			lines = append(lines, fmt.Sprintf("%s: Closed", title))
		} else {
			lines = append(lines, fmt.Sprintf("%s: %s - %s", title, oh.Open, oh.Close))
		}
	}
	if m.notes != "" {
		lines = append(lines, "", "Note: "+m.notes)
	}
	return strings.Join(lines, "\n")
}

// IsOpenNow checks the clock against today's hours. Returns the open flag
// and a human message.
func (m *Manager) IsOpenNow(now time.Time) (bool, string) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	local := now.In(m.location)
	day := strings.ToLower(local.Weekday().String())
	oh, ok := m.hours[day]
	if !ok || oh.IsClosed {
		return false, fmt.Sprintf("We are closed on %ss.", local.Weekday())
	}

	current := local.Format("15:04")
	closeTime := oh.Close
	if closeTime == "00:00" {
		closeTime = "24:00"
	}

	switch {
	case current >= oh.Open && current < closeTime:
		return true, fmt.Sprintf("We are currently open until %s.", oh.Close)
	case current < oh.Open:
		return false, fmt.Sprintf("We open today at %s.", oh.Open)
	default:
		return false, fmt.Sprintf("We are closed for today. We were open until %s.", oh.Close)
	}
}

// SearchMenu returns menu items whose name or description contains the query.
func (m *Manager) SearchMenu(query string) []models.MenuItem {
	m.mu.RLock()
	defer m.mu.RUnlock()

	q := strings.ToLower(query)
	var results []models.MenuItem
	for _, cat := range m.menu.Categories {
		for _, item := range cat.Items {
			if strings.Contains(strings.ToLower(item.Name), q) ||
				strings.Contains(strings.ToLower(item.Description), q) {
				results = append(results, item)
			}
		}
	}
	return results
}

// MenuFormatted renders the menu as display text for the responder context.
func (m *Manager) MenuFormatted() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	currency := m.menu.Currency
	if currency == "" {
		currency = "EUR"
	}

	var sb strings.Builder
	for _, cat := range m.menu.Categories {
		sb.WriteString(fmt.Sprintf("\n=== %s ===\n%s\n", strings.ToUpper(cat.Name), cat.Description))
		for _, item := range cat.Items {
			sb.WriteString(fmt.Sprintf("* %s - %s %.2f\n  %s\n", item.Name, currency, item.Price, item.Description))
		}
	}
	if m.menu.TastingMenu.Available {
		sb.WriteString("\n=== CHEF'S TASTING MENU ===\n")
		sb.WriteString(m.menu.TastingMenu.Description + "\n")
		sb.WriteString(fmt.Sprintf("Price: %s %.2f (wine pairing +%s %.2f)\n",
			currency, m.menu.TastingMenu.Price, currency, m.menu.TastingMenu.WinePairingFee))
	}
	return sb.String()
}

// RestaurantInfo builds the summary block handed to the responder.
func (m *Manager) RestaurantInfo(now time.Time) models.RestaurantInfo {
	isOpen, _ := m.IsOpenNow(now)

	m.mu.RLock()
	defer m.mu.RUnlock()

	local := now.In(m.location)
	day := strings.ToLower(local.Weekday().String())
	oh := m.hours[day]
	currentDay := "Closed"
	if !oh.IsClosed {
		currentDay = fmt.Sprintf("%s - %s", oh.Open, oh.Close)
	}

	s := m.cfg.ReservationSettings
	rules := fmt.Sprintf(
		"Guests: %d-%d. Default time slot: %.1f hours. Book at least %d hour(s) in advance. %s",
		s.MinGuests, s.MaxGuests, s.DefaultTimeSlotHours, s.AdvanceBookingHours, s.LargePartyNote,
	)

	return models.RestaurantInfo{
		Name:                  m.cfg.Restaurant.Name,
		Tagline:               m.cfg.Restaurant.Tagline,
		Description:           m.cfg.Restaurant.Description,
		FullAddress:           m.cfg.Address.FullAddress,
		Phone:                 m.cfg.Contact.Phone,
		Email:                 m.cfg.Contact.Email,
		Website:               m.cfg.Contact.Website,
		OperatingHoursSummary: m.operatingHoursFormattedLocked(),
		IsCurrentlyOpen:       isOpen,
		CurrentDayHours:       currentDay,
		ReservationRules:      rules,
	}
}

func (m *Manager) operatingHoursFormattedLocked() string {
	var lines []string
	for _, day := range weekdayKeys {
		oh := m.hours[day]
		title := strings.ToUpper(day[:1]) + day[1:]
		if oh.IsClosed {
			lines = append(lines, fmt.Sprintf("%s: Closed", title))
		} else {
			lines = append(lines, fmt.Sprintf("%s: %s - %s", title, oh.Open, oh.Close))
		}
	}
	return strings.Join(lines, "\n")
}
