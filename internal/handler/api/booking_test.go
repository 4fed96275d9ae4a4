//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/handler/api"
	resdto "coworking-booking/internal/handler/dto/response"
	"coworking-booking/internal/usecase/commands"
	"coworking-booking/internal/usecase/shared"
	"coworking-booking/tests/common/builder"
	"coworking-booking/tests/common/httptest"
	"coworking-booking/tests/common/testutil"
	commandsmock "coworking-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockMeetingRoomBookingCommands
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	s.router = newTestRouter(s.T())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockMeetingRoomBookingCommands(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands)

	s.router.POST("/meeting-room-booking", fakeAuth, s.handler.Create)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/meeting-room-booking"
	reqBody := builder.NewBookingRequestBuilder().BuildRequestDTO()

	s.Run("success: returns 201 with the issued access code", func() {
		subID := int64(77)
		result := &commands.BookingResult{
			State: booking.StateCommitted,
			AccessCode: builder.NewAccessCodeBuilder().With(func(b *builder.AccessCodeBuilder) {
				b.SubscriptionID = &subID
			}).BuildDomain(),
			Customer: builder.NewCustomerBuilder().BuildReconstructed(),
		}
		s.mockCommands.EXPECT().Book(gomock.Any(), testSpaceID, reqBody).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, testToken)

		var body resdto.AccessCodeEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Require().NotNil(body.Data)
		s.Equal(result.AccessCode.ID(), body.Data.ID)
		s.Require().NotNil(body.Data.SubscriptionID)
		s.Equal(subID, *body.Data.SubscriptionID)
	})

	s.Run("error: 400 on binding failures", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{"missing product_id", testutil.Field("product_id", nil)},
			{"missing date", testutil.Field("date", nil)},
			{"date with time", testutil.Field("date", "2025-03-10T09:00:00Z")},
			{"missing selected_slots", testutil.Field("selected_slots", nil)},
			{"missing customer", testutil.Field("customer", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, testToken)
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
			{"empty selection", shared.ErrEmptySlots, http.StatusUnprocessableEntity, "EMPTY_SLOTS"},
			{"malformed slot", shared.ErrInvalidSlotFormat, http.StatusUnprocessableEntity, "INVALID_SLOT_FORMAT"},
			{"outside hours", shared.ErrSlotOutsideHours, http.StatusUnprocessableEntity, "SLOT_OUTSIDE_HOURS"},
			{"duplicate slot", shared.ErrDuplicateSlot, http.StatusConflict, "DUPLICATE_SLOT"},
			{"overlapping slot", shared.ErrOverlappingSlot, http.StatusConflict, "OVERLAPPING_SLOT"},
			{"slot taken", shared.ErrSlotNoLongerAvailable, http.StatusConflict, "SLOT_NO_LONGER_AVAILABLE"},
			{"foreign product", shared.ErrProductForbidden, http.StatusForbidden, "PRODUCT_FORBIDDEN"},
			{"unknown meeting room", shared.ErrMeetingRoomNotFound, http.StatusNotFound, "MEETING_ROOM_NOT_FOUND"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Book(gomock.Any(), testSpaceID, reqBody).
					Return(&commands.BookingResult{State: booking.StateRejected}, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, testToken)

				httptest.AssertErrorCode(s.T(), rec, tc.status, tc.code)
				s.Empty(rec.Header().Get("Retry-After"))
			})
		}
	})

	s.Run("error: 503 with Retry-After when the room lock is busy", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), testSpaceID, reqBody).
			Return(&commands.BookingResult{State: booking.StateAborted}, shared.ErrLockBusy.WithCause(shared.ErrLockTimeout)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, testToken)

		httptest.AssertErrorCode(s.T(), rec, http.StatusServiceUnavailable, "LOCK_TIMEOUT")
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Retry-After": "1"})
	})

	s.Run("error: 401 without a space in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnauthorized, "UNAUTHORIZED")
	})
}
