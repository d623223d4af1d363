package domain

import "time"

// VenueSettingsID is the fixed identity of the singleton settings row.
const VenueSettingsID = "default"

// VenueSettings holds the venue contact card and branding. Exactly one row
// exists (id = "default"); saves overwrite the whole record, never append.
type VenueSettings struct {
	ID            string    `gorm:"primaryKey;size:32" json:"id" form:"id"`
	BarName       string    `json:"bar_name" form:"bar_name"`
	InstagramURL  string    `gorm:"size:512" json:"instagram_url" form:"instagram_url"`
	FacebookURL   string    `gorm:"size:512" json:"facebook_url" form:"facebook_url"`
	WebsiteURL    string    `gorm:"size:512" json:"website_url" form:"website_url"`
	Address       string    `json:"address" form:"address"`
	Phone         string    `json:"phone" form:"phone"`
	Email         string    `json:"email" form:"email"`
	Hours         string    `json:"hours" form:"hours"`
	GoogleMapsURL string    `gorm:"size:1024" json:"google_maps_url" form:"google_maps_url"`
	EmbedURL      string    `gorm:"size:1024" json:"embed_url" form:"embed_url"`
	ShowMapEmbed  bool      `json:"show_map_embed" form:"show_map_embed"`
	LogoURL       string    `gorm:"size:1024" json:"logo_url" form:"logo_url"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (VenueSettings) TableName() string {
	return "venue_settings"
}
