package queries

import (
	"time"

	"coworking-booking/internal/domain/product"
)

type CountryView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CityView struct {
	ID      int64       `json:"id"`
	Name    string      `json:"name"`
	Country CountryView `json:"country"`
}

type AmenityView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// SpaceView represents read-optimized space data; Amenities is filled by the query layer.
type SpaceView struct {
	ID                  int64         `json:"id"`
	UserID              int64         `json:"user_id"`
	Name                string        `json:"name"`
	Subdomain           string        `json:"subdomain"`
	Street              string        `json:"street"`
	Latitude            string        `json:"latitude"`
	Longitude           string        `json:"longitude"`
	Phone               string        `json:"phone"`
	HasWhatsapp         bool          `json:"has_whatsapp"`
	WhatsappGroupURL    *string       `json:"whatsapp_group_url"`
	Email               *string       `json:"email"`
	FacebookMessenger   *string       `json:"facebook_messenger"`
	Slogan              *string       `json:"slogan"`
	Description         *string       `json:"description"`
	TotalHotDesks       int           `json:"total_hot_desks"`
	TotalDedicatedDesks int           `json:"total_dedicated_desks"`
	TotalPrivateOffices int           `json:"total_private_offices"`
	TotalMeetingRooms   int           `json:"total_meeting_rooms"`
	Logo                *string       `json:"logo"`
	CoverPhoto          string        `json:"cover_photo"`
	Directions          *string       `json:"directions"`
	DirectionsPhoto     *string       `json:"directions_photo"`
	WifiNetwork         *string       `json:"wifi_network"`
	WifiPassword        *string       `json:"wifi_password"`
	Amenities           []AmenityView `json:"amenities"`
	Website             *string       `json:"website"`
	Facebook            *string       `json:"facebook"`
	Instagram           *string       `json:"instagram"`
	Linkedin            *string       `json:"linkedin"`
	Twitter             *string       `json:"twitter"`
	VerifiedAt          *time.Time    `json:"verified_at"`
	PublishedAt         *time.Time    `json:"published_at"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
	Country             CountryView   `json:"country"`
	City                CityView      `json:"city"`
}

// SpaceHourView leaves OpenTime and CloseTime nil on closed and non-stop days.
type SpaceHourView struct {
	ID        int64     `json:"id"`
	Weekday   int       `json:"weekday"`
	OpenTime  *string   `json:"open_time"`
	CloseTime *string   `json:"close_time"`
	Closed    bool      `json:"closed"`
	NonStop   bool      `json:"non_stop"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SpacePhotoView struct {
	ID            int64     `json:"id"`
	OriginalPath  string    `json:"original_path"`
	ThumbnailPath string    `json:"thumbnail_path"`
	MediumPath    string    `json:"medium_path"`
	Order         int       `json:"order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type MeetingRoomFeatures struct {
	HasWhiteboard              bool `json:"has_whiteboard"`
	HasProjector               bool `json:"has_projector"`
	HasMonitor                 bool `json:"has_monitor"`
	HasAudioConferencingSystem bool `json:"has_audio_conferencing_system"`
	HasVideoConferencingSystem bool `json:"has_video_conferencing_system"`
	HasCatering                bool `json:"has_catering"`
	HasTeaCoffee               bool `json:"has_tea_coffee"`
	HasPrivacyScreen           bool `json:"has_privacy_screen"`
	HasAirConditioning         bool `json:"has_air_conditioning"`
	HasHeating                 bool `json:"has_heating"`
	HasSecurityLock            bool `json:"has_security_lock"`
	HasNaturalLight            bool `json:"has_natural_light"`
}

type MeetingRoomView struct {
	ID            int64               `json:"id"`
	Name          string              `json:"name"`
	Capacity      int                 `json:"capacity"`
	Photo         *string             `json:"photo"`
	Description   *string             `json:"description"`
	AvailableFrom string              `json:"available_from"`
	AvailableTo   string              `json:"available_to"`
	Features      MeetingRoomFeatures `json:"features"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

type SeatingOptionView struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ProductView struct {
	ID               int64             `json:"id"`
	Name             string            `json:"name"`
	Price            string            `json:"price"`
	Photo            *string           `json:"photo"`
	Description      *string           `json:"description"`
	Disclaimer       *string           `json:"disclaimer"`
	Settings         product.Settings  `json:"settings"`
	AccessType       string            `json:"access_type"`
	AccessibleSpaces []int64           `json:"accessible_spaces"`
	AvailableFrom    *string           `json:"available_from"`
	IsPromotion      bool              `json:"is_promotion"`
	IsOffer          bool              `json:"is_offer"`
	IsPublished      bool              `json:"is_published"`
	Position         int               `json:"position"`
	SeatingOption    SeatingOptionView `json:"seating_option"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

type SpaceLegalView struct {
	ID                  int64   `json:"id"`
	Terms               *string `json:"terms"`
	PrivacyPolicy       *string `json:"privacy_policy"`
	CookiesPolicy       *string `json:"cookies_policy"`
	InternalRegulations *string `json:"internal_regulations"`
}
