package response

import (
	"time"

	"coworking-booking/internal/domain/accesscode"
	"coworking-booking/internal/domain/customer"
	"coworking-booking/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

type CustomerResponse struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
}

// AccessCodeResponse: subscription_id is null for standalone codes.
type AccessCodeResponse struct {
	ID             string           `json:"id"`
	CustomerID     int64            `json:"customer_id"`
	CustomerType   string           `json:"customer_type"`
	SpaceID        int64            `json:"space_id"`
	SubscriptionID *int64           `json:"subscription_id"`
	ValidFrom      time.Time        `json:"valid_from"`
	ValidTo        time.Time        `json:"valid_to"`
	IsPrimary      bool             `json:"is_primary"`
	UniqueScans    int              `json:"unique_scans"`
	TotalScans     int              `json:"total_scans"`
	Status         string           `json:"status"`
	QRCodeURL      string           `json:"qr_code_download_url"`
	Customer       CustomerResponse `json:"customer"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

type AccessCodeEnvelope struct {
	Data *AccessCodeResponse `json:"data"`
}

// FromAccessCode copies the entity getters into the wire shape.
func FromAccessCode(code *accesscode.AccessCode, c *customer.Customer) (*AccessCodeResponse, error) {
	if code == nil || c == nil {
		return nil, errs.New("access code response needs a code and its customer")
	}

	var res AccessCodeResponse
	if err := copier.Copy(&res, code); err != nil {
		return nil, errs.Wrap(err, "copy access code")
	}
	if err := copier.Copy(&res.Customer, c); err != nil {
		return nil, errs.Wrap(err, "copy customer")
	}
	return &res, nil
}
