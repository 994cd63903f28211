package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	protected := rg.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/jobs/:id/apply", middleware.RequireRoles(models.UserRoleCandidate), h.Apply)
		protected.GET("/candidate/applications", middleware.RequireRoles(models.UserRoleCandidate), h.ListForCandidate)
		protected.GET("/employer/applications", middleware.RequireRoles(models.UserRoleEmployer), h.ListForEmployer)
		protected.PUT("/applications/:id/status", middleware.RequireRoles(models.UserRoleEmployer, models.UserRoleAdmin), h.UpdateStatus)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	application, err := h.applicationService.Apply(c.Param("id"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

func (h *ApplicationHandler) ListForCandidate(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.ListForCandidate(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{Data: applications})
}

// ListForEmployer - заявки на все вакансии текущего работодателя
func (h *ApplicationHandler) ListForEmployer(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.ListForEmployer(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{Data: applications})
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	application, err := h.applicationService.UpdateStatus(c.Param("id"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}
