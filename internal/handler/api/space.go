package api

import (
	"context"
	"net/http"

	reqdto "coworking-booking/internal/handler/dto/request"
	resdto "coworking-booking/internal/handler/dto/response"
	"coworking-booking/internal/handler/httperr"
	"coworking-booking/internal/handler/middleware"
	"coworking-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SpaceHandler struct {
	q     queries.SpaceQueries
	avail queries.AvailabilityQueries
}

func NewSpaceHandler(q queries.SpaceQueries, avail queries.AvailabilityQueries) *SpaceHandler {
	return &SpaceHandler{q: q, avail: avail}
}

// @Summary Get space
// @Description Space of the authenticated partner, with amenities, country and city
// @Tags space
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /space [get]
func (h *SpaceHandler) GetSpace(c *gin.Context) {
	serve(c, h.q.GetSpace)
}

// @Summary Get opening hours
// @Description Seven entries, Monday first; days without a row are closed
// @Tags space
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Router /space/hours [get]
func (h *SpaceHandler) GetHours(c *gin.Context) {
	serve(c, h.q.GetHours)
}

// @Summary List photos
// @Tags space
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Router /space/photos [get]
func (h *SpaceHandler) GetPhotos(c *gin.Context) {
	serve(c, h.q.GetPhotos)
}

// @Summary List meeting rooms
// @Tags space
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Router /space/meeting-rooms [get]
func (h *SpaceHandler) GetMeetingRooms(c *gin.Context) {
	serve(c, h.q.GetMeetingRooms)
}

// @Summary List amenities
// @Tags space
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Router /space/amenities [get]
func (h *SpaceHandler) GetAmenities(c *gin.Context) {
	serve(c, h.q.GetAmenities)
}

// @Summary List products
// @Description Published and unpublished products with their seating-option settings
// @Tags space
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Router /space/products [get]
func (h *SpaceHandler) GetProducts(c *gin.Context) {
	serve(c, h.q.GetProducts)
}

// @Summary Get legal documents
// @Tags space
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 404 {object} httperr.Response
// @Router /space/legal [get]
func (h *SpaceHandler) GetLegal(c *gin.Context) {
	serve(c, h.q.GetLegal)
}

// @Summary Meeting room availability
// @Description Free one-hour slots of a meeting room product on a date
// @Tags space
// @Produce json
// @Security BearerAuth
// @Param date query string true "YYYY-MM-DD"
// @Param product_id query int true "Meeting room product ID"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /space/meeting-room-availability [get]
func (h *SpaceHandler) GetMeetingRoomAvailability(c *gin.Context) {
	spaceID, ok := requireSpace(c)
	if !ok {
		return
	}
	var query reqdto.MeetingRoomAvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.BindError(c, err)
		return
	}
	slots, err := h.avail.AvailableSlots(c.Request.Context(), spaceID, query.ProductID, query.Date)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	if slots == nil {
		slots = []string{}
	}
	c.JSON(http.StatusOK, resdto.AvailabilityResponse{AvailableSlots: slots})
}

// serve answers GET endpoints that only need the caller's space.
func serve[T any](c *gin.Context, load func(ctx context.Context, spaceID int64) (T, error)) {
	spaceID, ok := requireSpace(c)
	if !ok {
		return
	}
	v, err := load(c.Request.Context(), spaceID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Data(v))
}

func requireSpace(c *gin.Context) (int64, bool) {
	spaceID, ok := middleware.GetSpaceID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, httperr.Body{
			Kind:    "authentication",
			Code:    "UNAUTHORIZED",
			Message: "Unauthorized",
		}, nil)
		return 0, false
	}
	return spaceID, true
}
