//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"coworking-booking/internal/handler/api"
	resdto "coworking-booking/internal/handler/dto/response"
	"coworking-booking/internal/usecase/queries"
	"coworking-booking/internal/usecase/shared"
	"coworking-booking/tests/common/httptest"
	queriesmock "coworking-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SpaceHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	mockSpace *queriesmock.MockSpaceQueries
	mockAvail *queriesmock.MockAvailabilityQueries
	handler   *api.SpaceHandler
}

func (s *SpaceHandlerTestSuite) SetupTest() {
	s.router = newTestRouter(s.T())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSpace = queriesmock.NewMockSpaceQueries(s.mockCtrl)
	s.mockAvail = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewSpaceHandler(s.mockSpace, s.mockAvail)

	g := s.router.Group("/space", fakeAuth)
	g.GET("", s.handler.GetSpace)
	g.GET("/hours", s.handler.GetHours)
	g.GET("/photos", s.handler.GetPhotos)
	g.GET("/meeting-rooms", s.handler.GetMeetingRooms)
	g.GET("/amenities", s.handler.GetAmenities)
	g.GET("/products", s.handler.GetProducts)
	g.GET("/legal", s.handler.GetLegal)
	g.GET("/meeting-room-availability", s.handler.GetMeetingRoomAvailability)
}

func (s *SpaceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSpaceHandlerSuite(t *testing.T) {
	suite.Run(t, new(SpaceHandlerTestSuite))
}

func (s *SpaceHandlerTestSuite) TestGetSpace() {
	s.Run("success: wraps the space in data", func() {
		view := &queries.SpaceView{
			ID:        testSpaceID,
			Name:      "Loft",
			Subdomain: "loft",
			Amenities: []queries.AmenityView{{ID: 1, Name: "Wifi", Icon: "wifi"}},
		}
		s.mockSpace.EXPECT().GetSpace(gomock.Any(), testSpaceID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/space", nil, testToken)

		var body resdto.DataEnvelope[queries.SpaceView]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Loft", body.Data.Name)
		s.Len(body.Data.Amenities, 1)
	})

	s.Run("error: 404 when the space is gone", func() {
		s.mockSpace.EXPECT().GetSpace(gomock.Any(), testSpaceID).Return(nil, shared.ErrSpaceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/space", nil, testToken)

		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "SPACE_NOT_FOUND")
	})

	s.Run("error: 401 without a space in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/space", nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnauthorized, "UNAUTHORIZED")
	})
}

func (s *SpaceHandlerTestSuite) TestListEndpoints() {
	open, closeAt := "09:00:00", "17:00:00"

	s.Run("hours", func() {
		s.mockSpace.EXPECT().GetHours(gomock.Any(), testSpaceID).Return([]queries.SpaceHourView{
			{ID: 1, Weekday: 1, OpenTime: &open, CloseTime: &closeAt},
			{ID: 2, Weekday: 7, Closed: true},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/space/hours", nil, testToken)

		var body resdto.DataEnvelope[[]queries.SpaceHourView]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Data, 2)
		s.Equal("09:00:00", *body.Data[0].OpenTime)
		s.True(body.Data[1].Closed)
		s.Nil(body.Data[1].OpenTime)
	})

	s.Run("photos", func() {
		s.mockSpace.EXPECT().GetPhotos(gomock.Any(), testSpaceID).Return([]queries.SpacePhotoView{
			{ID: 3, OriginalPath: "a.jpg", Order: 1},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/space/photos", nil, testToken)

		var body resdto.DataEnvelope[[]queries.SpacePhotoView]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Data, 1)
	})

	s.Run("meeting rooms", func() {
		s.mockSpace.EXPECT().GetMeetingRooms(gomock.Any(), testSpaceID).Return([]queries.MeetingRoomView{
			{ID: 7, Name: "Board", Capacity: 8, AvailableFrom: "09:00:00", AvailableTo: "17:00:00"},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/space/meeting-rooms", nil, testToken)

		var body resdto.DataEnvelope[[]queries.MeetingRoomView]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Data, 1)
		s.Equal(int64(7), body.Data[0].ID)
	})

	s.Run("amenities", func() {
		s.mockSpace.EXPECT().GetAmenities(gomock.Any(), testSpaceID).Return([]queries.AmenityView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/space/amenities", nil, testToken)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"data":[]}`, rec.Body.String())
	})

	s.Run("products", func() {
		s.mockSpace.EXPECT().GetProducts(gomock.Any(), testSpaceID).Return([]queries.ProductView{
			{ID: 10, Name: "Hot desk", Price: "120.00", IsPublished: true},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/space/products", nil, testToken)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"name":"Hot desk"`)
	})

	s.Run("legal missing", func() {
		s.mockSpace.EXPECT().GetLegal(gomock.Any(), testSpaceID).Return(nil, shared.ErrLegalNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/space/legal", nil, testToken)

		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "LEGAL_NOT_FOUND")
	})
}

func (s *SpaceHandlerTestSuite) TestGetMeetingRoomAvailability() {
	url := "/space/meeting-room-availability"

	s.Run("success: lists free slots", func() {
		slots := []string{"09:00 - 10:00", "11:00 - 12:00"}
		s.mockAvail.EXPECT().AvailableSlots(gomock.Any(), testSpaceID, int64(20), "2025-03-10").
			Return(slots, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=2025-03-10&product_id=20", nil, testToken)

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(slots, body.AvailableSlots)
	})

	s.Run("success: fully booked day is an empty list", func() {
		s.mockAvail.EXPECT().AvailableSlots(gomock.Any(), testSpaceID, int64(20), "2025-03-10").
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=2025-03-10&product_id=20", nil, testToken)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"available_slots":[]}`, rec.Body.String())
	})

	s.Run("error: 400 on malformed query", func() {
		for _, q := range []string{
			"?product_id=20",
			"?date=2025-03-10",
			"?date=10-03-2025&product_id=20",
			"?date=2025-03-10&product_id=abc",
			"?date=2025-03-10&product_id=0",
		} {
			s.Run(q, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+q, nil, testToken)
				httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_REQUEST")
			})
		}
	})

	s.Run("error: use case failures map to their status", func() {
		cases := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{"past date", shared.ErrInvalidDate, http.StatusUnprocessableEntity, "INVALID_DATE"},
			{"not a meeting room", shared.ErrWrongProductType, http.StatusUnprocessableEntity, "WRONG_PRODUCT_TYPE"},
			{"foreign product", shared.ErrProductNotFound, http.StatusNotFound, "PRODUCT_NOT_FOUND"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockAvail.EXPECT().AvailableSlots(gomock.Any(), testSpaceID, int64(20), "2025-03-10").
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=2025-03-10&product_id=20", nil, testToken)

				httptest.AssertErrorCode(s.T(), rec, tc.status, tc.code)
			})
		}
	})
}
