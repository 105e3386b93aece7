package domain

import "time"

type BusinessType string

const (
	BusinessTypeRestaurant BusinessType = "restaurant"
	BusinessTypeHostel     BusinessType = "hostel"
)

// ReferencePrefix is the booking reference prefix for this business type.
func (t BusinessType) ReferencePrefix() string {
	switch t {
	case BusinessTypeRestaurant:
		return "RST"
	case BusinessTypeHostel:
		return "HST"
	default:
		return "BKG"
	}
}

type ChannelKind string

const (
	ChannelTelegram ChannelKind = "telegram"
	ChannelWhatsApp ChannelKind = "whatsapp"
)

// WorkingHours maps weekday keys ("mon".."sun") to [open, close] pairs.
// An absent or empty entry means the business is closed that day.
type WorkingHours map[string][]string

// HoursFor returns the open/close pair for a weekday key.
// Malformed entries (anything but exactly two values) count as closed.
func (wh WorkingHours) HoursFor(key string) (open, closeAt string, ok bool) {
	hours, found := wh[key]
	if !found || len(hours) != 2 {
		return "", "", false
	}
	return hours[0], hours[1], true
}

type Business struct {
	ID                  string       `json:"id"`
	Name                string       `json:"name"`
	Type                BusinessType `json:"type"`
	TelegramGroupID     string       `json:"telegram_group_id,omitempty"`
	WorkingHours        WorkingHours `json:"working_hours"`
	SlotDurationMinutes int          `json:"slot_duration_minutes"`
	Timezone            string       `json:"timezone"`
	Location            string       `json:"location,omitempty"`
	Phone               string       `json:"phone,omitempty"`
	FAQ                 string       `json:"faq,omitempty"`
	ActiveChannel       ChannelKind  `json:"active_channel"`
	IsActive            bool         `json:"is_active"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
}
