package handlers

import (
	"net/http"

	"hatamo_backend/internal/middleware"
	"hatamo_backend/internal/services"
	"hatamo_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// InviteCodeHandler - административное управление инвайт-кодами
type InviteCodeHandler struct {
	*BaseHandler
	inviteCodeService services.InviteCodeService
}

func NewInviteCodeHandler(base *BaseHandler, inviteCodeService services.InviteCodeService) *InviteCodeHandler {
	return &InviteCodeHandler{
		BaseHandler:       base,
		inviteCodeService: inviteCodeService,
	}
}

// RegisterRoutes регистрирует административные маршруты инвайт-кодов
func (h *InviteCodeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin/invite-codes")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		admin.POST("", h.Issue)
		admin.GET("", h.List)
		admin.POST("/:id/disable", h.Disable)
	}
}

func (h *InviteCodeHandler) Issue(c *gin.Context) {
	var req dto.IssueInviteCodeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	issuerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	invite, err := h.inviteCodeService.Issue(db, issuerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, invite)
}

func (h *InviteCodeHandler) List(c *gin.Context) {
	var query dto.ListInviteCodesQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	db := h.GetDB(c)

	codes, total, err := h.inviteCodeService.List(db, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"inviteCodes": codes,
		"total":       total,
	})
}

func (h *InviteCodeHandler) Disable(c *gin.Context) {
	id := c.Param("id")

	db := h.GetDB(c)

	if err := h.inviteCodeService.Disable(db, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Invite code disabled",
	})
}
