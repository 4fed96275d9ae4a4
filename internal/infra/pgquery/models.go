package pgquery

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Customer struct {
	ID              int64
	SpaceID         int64
	FirstName       string
	LastName        string
	Email           string
	Phone           pgtype.Text
	PasswordHash    string
	EmailVerifiedAt pgtype.Timestamptz
	DeletedAt       pgtype.Timestamptz
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

type Amenity struct {
	ID   int64
	Name string
	Icon string
}

type SpaceHour struct {
	ID        int64
	Weekday   int16
	OpenTime  pgtype.Time
	CloseTime pgtype.Time
	Closed    bool
	NonStop   bool
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type SpacePhoto struct {
	ID            int64
	OriginalPath  string
	ThumbnailPath string
	MediumPath    string
	Order         int32
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type SpaceLegal struct {
	ID                  int64
	Terms               pgtype.Text
	PrivacyPolicy       pgtype.Text
	CookiesPolicy       pgtype.Text
	InternalRegulations pgtype.Text
}

type MeetingRoom struct {
	ID                         int64
	SpaceID                    int64
	Name                       string
	Capacity                   int32
	Photo                      pgtype.Text
	Description                pgtype.Text
	AvailableFrom              pgtype.Time
	AvailableTo                pgtype.Time
	HasWhiteboard              bool
	HasProjector               bool
	HasMonitor                 bool
	HasAudioConferencingSystem bool
	HasVideoConferencingSystem bool
	HasCatering                bool
	HasTeaCoffee               bool
	HasPrivacyScreen           bool
	HasAirConditioning         bool
	HasHeating                 bool
	HasSecurityLock            bool
	HasNaturalLight            bool
	CreatedAt                  pgtype.Timestamptz
	UpdatedAt                  pgtype.Timestamptz
}

type Product struct {
	ID               int64
	SpaceID          int64
	Name             string
	Price            string
	Photo            pgtype.Text
	Description      pgtype.Text
	Disclaimer       pgtype.Text
	SeatingOptionID  int16
	Settings         []byte
	AccessType       string
	AccessibleSpaces []int64
	AvailableFrom    pgtype.Date
	IsPromotion      bool
	IsOffer          bool
	IsPublished      bool
	Position         int32
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}
