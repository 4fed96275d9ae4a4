package product

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	ErrMissingAccessibleSpaces = errors.New("selected_spaces access requires accessible spaces")
	ErrEmptyName               = errors.New("product name is required")
)

type Product struct {
	id               int64
	spaceID          int64
	name             string
	price            string
	photo            *string
	description      *string
	disclaimer       *string
	seatingOption    SeatingOption
	settings         Settings
	accessType       AccessType
	accessibleSpaces []int64
	availableFrom    *time.Time
	isPromotion      bool
	isOffer          bool
	isPublished      bool
	position         int
	createdAt        time.Time
	updatedAt        time.Time
}

// Params is the untyped shape a product is loaded from.
type Params struct {
	ID               int64
	SpaceID          int64
	Name             string
	Price            string
	Photo            *string
	Description      *string
	Disclaimer       *string
	SeatingOptionID  int
	Settings         json.RawMessage
	AccessType       string
	AccessibleSpaces []int64
	AvailableFrom    *time.Time
	IsPromotion      bool
	IsOffer          bool
	IsPublished      bool
	Position         int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewProduct validates p. selected_spaces without a list is rejected; a list on any
// other access type is dropped.
func NewProduct(p Params) (*Product, error) {
	if p.Name == "" {
		return nil, ErrEmptyName
	}
	option, err := NewSeatingOption(p.SeatingOptionID)
	if err != nil {
		return nil, err
	}
	settings, err := DecodeSettings(option, p.Settings)
	if err != nil {
		return nil, err
	}
	access, err := NewAccessType(p.AccessType)
	if err != nil {
		return nil, err
	}

	spaces := p.AccessibleSpaces
	if access == AccessSelectedSpaces {
		if spaces == nil {
			return nil, ErrMissingAccessibleSpaces
		}
	} else {
		spaces = nil
	}

	return &Product{
		id:               p.ID,
		spaceID:          p.SpaceID,
		name:             p.Name,
		price:            p.Price,
		photo:            p.Photo,
		description:      p.Description,
		disclaimer:       p.Disclaimer,
		seatingOption:    option,
		settings:         settings,
		accessType:       access,
		accessibleSpaces: spaces,
		availableFrom:    p.AvailableFrom,
		isPromotion:      p.IsPromotion,
		isOffer:          p.IsOffer,
		isPublished:      p.IsPublished,
		position:         p.Position,
		createdAt:        p.CreatedAt,
		updatedAt:        p.UpdatedAt,
	}, nil
}

func (p *Product) ID() int64                    { return p.id }
func (p *Product) SpaceID() int64               { return p.spaceID }
func (p *Product) Name() string                 { return p.name }
func (p *Product) Price() string                { return p.price }
func (p *Product) Photo() *string               { return p.photo }
func (p *Product) Description() *string         { return p.description }
func (p *Product) Disclaimer() *string          { return p.disclaimer }
func (p *Product) SeatingOption() SeatingOption { return p.seatingOption }
func (p *Product) Settings() Settings           { return p.settings }
func (p *Product) AccessType() AccessType       { return p.accessType }
func (p *Product) AccessibleSpaces() []int64    { return p.accessibleSpaces }
func (p *Product) AvailableFrom() *time.Time    { return p.availableFrom }
func (p *Product) IsPromotion() bool            { return p.isPromotion }
func (p *Product) IsOffer() bool                { return p.isOffer }
func (p *Product) IsPublished() bool            { return p.isPublished }
func (p *Product) Position() int                { return p.position }
func (p *Product) CreatedAt() time.Time         { return p.createdAt }
func (p *Product) UpdatedAt() time.Time         { return p.updatedAt }

func (p *Product) BelongsTo(spaceID int64) bool {
	return p.spaceID == spaceID
}

func (p *Product) IsMeetingRoom() bool {
	return p.seatingOption == MeetingRoom
}

// MeetingRoomID is zero for products not tied to a room.
func (p *Product) MeetingRoomID() int64 {
	if s, ok := p.settings.(MeetingRoomSettings); ok {
		return s.MeetingRoomID
	}
	return 0
}

// AvailableOn reports whether the product may start on date (compared by calendar day).
func (p *Product) AvailableOn(date time.Time) bool {
	if p.availableFrom == nil {
		return true
	}
	ay, am, ad := p.availableFrom.Date()
	dy, dm, dd := date.Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	on := time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)
	return !on.Before(from)
}
