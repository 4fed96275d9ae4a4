package api

import (
	reqdto "coworking-booking/internal/handler/dto/request"
	"coworking-booking/internal/handler/httperr"
	"coworking-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AccessCodeHandler struct {
	cmds commands.AccessCodeCommands
}

func NewAccessCodeHandler(cmds commands.AccessCodeCommands) *AccessCodeHandler {
	return &AccessCodeHandler{cmds: cmds}
}

// @Summary Create standalone access code
// @Description Access code valid from start_date 00:00 to end_date 23:59:59, not tied to a product
// @Tags access-codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateStandaloneAccessCodeRequest true "Standalone access code request"
// @Success 201 {object} resdto.AccessCodeEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /access-codes/standalone [post]
func (h *AccessCodeHandler) CreateStandalone(c *gin.Context) {
	spaceID, ok := requireSpace(c)
	if !ok {
		return
	}
	var req reqdto.CreateStandaloneAccessCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}
	result, err := h.cmds.CreateStandalone(c.Request.Context(), spaceID, req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	respondAccessCode(c, result.AccessCode, result.Customer)
}

// @Summary Create product access code
// @Description Access code backed by a subscription to a day pass, desk or office product
// @Tags access-codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateProductAccessCodeRequest true "Product access code request"
// @Success 201 {object} resdto.AccessCodeEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /access-codes/product [post]
func (h *AccessCodeHandler) CreateForProduct(c *gin.Context) {
	spaceID, ok := requireSpace(c)
	if !ok {
		return
	}
	var req reqdto.CreateProductAccessCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}
	result, err := h.cmds.CreateForProduct(c.Request.Context(), spaceID, req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	respondAccessCode(c, result.AccessCode, result.Customer)
}
