package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	*BaseHandler
	favoriteService services.FavoriteService
}

func NewFavoriteHandler(base *BaseHandler, favoriteService services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		BaseHandler:     base,
		favoriteService: favoriteService,
	}
}

func (h *FavoriteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	protected := rg.Group("")
	protected.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleCandidate))
	{
		protected.GET("/favorites", h.List)
		protected.POST("/jobs/:id/favorite", h.Toggle)
		protected.GET("/jobs/:id/favorite/check", h.Check)
	}
}

func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	favorites, err := h.favoriteService.List(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{Data: favorites})
}

func (h *FavoriteHandler) Toggle(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.favoriteService.Toggle(userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *FavoriteHandler) Check(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.favoriteService.Check(userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
