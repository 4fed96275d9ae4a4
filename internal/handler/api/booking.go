package api

import (
	"net/http"

	"coworking-booking/internal/domain/accesscode"
	"coworking-booking/internal/domain/customer"
	reqdto "coworking-booking/internal/handler/dto/request"
	resdto "coworking-booking/internal/handler/dto/response"
	"coworking-booking/internal/handler/httperr"
	"coworking-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.MeetingRoomBookingCommands
}

func NewBookingHandler(cmds commands.MeetingRoomBookingCommands) *BookingHandler {
	return &BookingHandler{cmds: cmds}
}

// @Summary Book meeting room slots
// @Description Books one-hour slots of a meeting room product and returns the access code covering them
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateMeetingRoomBookingRequest true "Meeting room booking request"
// @Success 201 {object} resdto.AccessCodeEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /meeting-room-booking [post]
func (h *BookingHandler) Create(c *gin.Context) {
	spaceID, ok := requireSpace(c)
	if !ok {
		return
	}
	var req reqdto.CreateMeetingRoomBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}
	result, err := h.cmds.Book(c.Request.Context(), spaceID, req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	respondAccessCode(c, result.AccessCode, result.Customer)
}

func respondAccessCode(c *gin.Context, code *accesscode.AccessCode, cust *customer.Customer) {
	res, err := resdto.FromAccessCode(code, cust)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.AccessCodeEnvelope{Data: res})
}
