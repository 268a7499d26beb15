package knowledgebase

import (
	"encoding/json"

	"konoba/models"
)

// weekdayKeys in JSON order, lowercase, as the config file spells them.
var weekdayKeys = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// restaurantConfig mirrors knowledgebase/restaurant_config.json. The
// operating_hours object mixes day entries with timezone and special_notes,
// so it is kept raw and split while loading.
type restaurantConfig struct {
	Restaurant struct {
		Name        string `json:"name"`
		Tagline     string `json:"tagline"`
		Description string `json:"description"`
	} `json:"restaurant"`
	Contact             models.Contact             `json:"contact"`
	Address             models.Address             `json:"address"`
	OperatingHours      map[string]json.RawMessage `json:"operating_hours"`
	ReservationSettings models.ReservationSettings `json:"reservation_settings"`
}

// menuData mirrors knowledgebase/menu.json.
type menuData struct {
	Currency    string                `json:"currency"`
	Categories  []models.MenuCategory `json:"categories"`
	TastingMenu struct {
		Available      bool    `json:"available"`
		Description    string  `json:"description"`
		Price          float64 `json:"price"`
		WinePairingFee float64 `json:"wine_pairing_price"`
	} `json:"tasting_menu"`
}

// aboutUsData mirrors knowledgebase/about_us.json.
type aboutUsData struct {
	Story struct {
		Paragraphs []string `json:"paragraphs"`
	} `json:"story"`
	Chef   map[string]string   `json:"chef"`
	Values []map[string]string `json:"values"`
}
