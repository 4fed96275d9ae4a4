//go:build e2e

package space_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	resdto "coworking-booking/internal/handler/dto/response"
	"coworking-booking/internal/usecase/queries"
	"coworking-booking/tests/common/authtest"
	"coworking-booking/tests/common/builder"
	"coworking-booking/tests/common/dbtest"
	"coworking-booking/tests/common/httptest"
	"coworking-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	spaceURL        = "/api/v1/space"
	availabilityURL = "/api/v1/space/meeting-room-availability?date=%s&product_id=%d"
	bookingURL      = "/api/v1/meeting-room-booking"
)

type SpaceSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *SpaceSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func TestSpaceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(SpaceSuite))
}

func futureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format("2006-01-02")
}

func (s *SpaceSuite) TestGetSpace() {
	s.Run("returns the space bound to the token", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, dbtest.SpaceID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, spaceURL, nil, token)

		var res resdto.DataEnvelope[queries.SpaceView]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, "Harbor Works", res.Data.Name)
		assert.Equal(t, "Lisbon", res.Data.City.Name)
		assert.Equal(t, "Portugal", res.Data.Country.Name)
		assert.NotNil(t, res.Data.Amenities)
	})

	s.Run("rejects missing and expired tokens", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, spaceURL, nil, "")
		httptest.AssertErrorCode(t, w, http.StatusUnauthorized, "UNAUTHORIZED")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, spaceURL, nil, s.jwt.CreateExpiredToken(t, dbtest.SpaceID))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("unknown space is not found", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, 999)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, spaceURL, nil, token)

		httptest.AssertErrorCode(t, w, http.StatusNotFound, "SPACE_NOT_FOUND")
	})
}

func (s *SpaceSuite) TestSpaceDetails() {
	s.Run("hours cover the whole week", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, dbtest.SpaceID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, spaceURL+"/hours", nil, token)

		var res resdto.DataEnvelope[[]queries.SpaceHourView]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Len(t, res.Data, 7)
		require.NotNil(t, res.Data[0].OpenTime)
		assert.Equal(t, "08:00:00", *res.Data[0].OpenTime)
		assert.Equal(t, "20:00:00", *res.Data[0].CloseTime)
		for _, day := range res.Data[2:] {
			assert.True(t, day.Closed, "weekday %d", day.Weekday)
		}
	})

	s.Run("products are the space catalogue in position order", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, dbtest.SpaceID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, spaceURL+"/products", nil, token)

		var res resdto.DataEnvelope[[]struct {
			ID            int64                     `json:"id"`
			SeatingOption queries.SeatingOptionView `json:"seating_option"`
			Settings      map[string]any            `json:"settings"`
		}]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		ids := make([]int64, 0, len(res.Data))
		for _, p := range res.Data {
			ids = append(ids, p.ID)
		}
		want := []int64{dbtest.HotDeskProductID, dbtest.MeetingRoomProductID, dbtest.UnpublishedProductID}
		if diff := cmp.Diff(want, ids); diff != "" {
			t.Errorf("product ids mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, float64(dbtest.MeetingRoomID), res.Data[1].Settings["meeting_room_id"])
	})

	s.Run("meeting rooms list the seeded room", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, dbtest.SpaceID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, spaceURL+"/meeting-rooms", nil, token)

		var res resdto.DataEnvelope[[]queries.MeetingRoomView]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Len(t, res.Data, 1)
		assert.Equal(t, "Board Room", res.Data[0].Name)
		assert.True(t, res.Data[0].Features.HasWhiteboard)
	})

	s.Run("legal documents exist only where stored", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, spaceURL+"/legal", nil, s.jwt.GenerateToken(t, dbtest.SpaceID))
		var res resdto.DataEnvelope[queries.SpaceLegalView]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.NotNil(t, res.Data.Terms)
		assert.Equal(t, "Be kind.", *res.Data.Terms)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, spaceURL+"/legal", nil, s.jwt.GenerateToken(t, dbtest.OtherSpaceID))
		httptest.AssertErrorCode(t, w, http.StatusNotFound, "LEGAL_NOT_FOUND")
	})

	s.Run("empty collections render as empty arrays", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, dbtest.SpaceID)

		for _, path := range []string{"/photos", "/amenities"} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, spaceURL+path, nil, token)
			assert.Equal(t, http.StatusOK, w.Code, path)
			assert.JSONEq(t, `{"data":[]}`, w.Body.String(), path)
		}
	})
}

func (s *SpaceSuite) TestMeetingRoomAvailability() {
	s.Run("a free day lists every room hour", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, dbtest.SpaceID)
		url := fmt.Sprintf(availabilityURL, futureDate(3), dbtest.MeetingRoomProductID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)

		var res resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		want := []string{
			"09:00 - 10:00", "10:00 - 11:00", "11:00 - 12:00", "12:00 - 13:00",
			"13:00 - 14:00", "14:00 - 15:00", "15:00 - 16:00", "16:00 - 17:00",
		}
		if diff := cmp.Diff(want, res.AvailableSlots); diff != "" {
			t.Errorf("slots mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("booked slots disappear", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, dbtest.SpaceID)
		date := futureDate(4)
		req := builder.NewBookingRequestBuilder().With(func(b *builder.BookingRequestBuilder) {
			b.Date = date
			b.SelectedSlots = []string{"10:00 - 11:00", "14:00 - 15:00"}
		}).BuildRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingURL, req, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(availabilityURL, date, dbtest.MeetingRoomProductID), nil, token)

		var res resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Len(t, res.AvailableSlots, 6)
		assert.NotContains(t, res.AvailableSlots, "10:00 - 11:00")
		assert.NotContains(t, res.AvailableSlots, "14:00 - 15:00")
	})

	s.Run("rejected lookups", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, dbtest.SpaceID)

		cases := []struct {
			name   string
			url    string
			status int
			code   string
		}{
			{"past date", fmt.Sprintf(availabilityURL, "2020-01-01", dbtest.MeetingRoomProductID), http.StatusUnprocessableEntity, "INVALID_DATE"},
			{"hot desk product", fmt.Sprintf(availabilityURL, futureDate(1), dbtest.HotDeskProductID), http.StatusUnprocessableEntity, "WRONG_PRODUCT_TYPE"},
			{"product of another space", fmt.Sprintf(availabilityURL, futureDate(1), dbtest.ForeignProductID), http.StatusNotFound, "PRODUCT_NOT_FOUND"},
			{"unknown product", fmt.Sprintf(availabilityURL, futureDate(1), 9999), http.StatusNotFound, "PRODUCT_NOT_FOUND"},
			{"malformed date", fmt.Sprintf("/api/v1/space/meeting-room-availability?date=%s&product_id=%d", "10-03-2025", dbtest.MeetingRoomProductID), http.StatusBadRequest, "INVALID_REQUEST"},
		}
		for _, tc := range cases {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, tc.url, nil, token)
			httptest.AssertErrorCode(t, w, tc.status, tc.code)
		}
	})
}
