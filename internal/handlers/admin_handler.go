package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/statistics", h.Statistics)
		admin.GET("/users", h.ListUsers)
		admin.PUT("/users/:id/role", h.UpdateUserRole)
		admin.DELETE("/users/:id", h.DeleteUser)
		admin.GET("/jobs", h.ListJobs)
		admin.DELETE("/jobs/:id", h.DeleteJob)
		admin.GET("/applications", h.ListApplications)
	}
}

func (h *AdminHandler) Statistics(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	stats, err := h.adminService.GetStatistics(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	users, err := h.adminService.ListUsers(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// Полные модели наружу не отдаем, хэш пароля и так скрыт json:"-",
	// но формат выравниваем с /auth/user
	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, *dto.NewUserResponse(&users[i]))
	}

	c.JSON(http.StatusOK, ListResponse{Data: result})
}

func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRoleRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.adminService.UpdateUserRole(c.Param("id"), userID, req.Role); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Role updated"})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.adminService.DeleteUser(c.Param("id"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

func (h *AdminHandler) ListJobs(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	jobs, err := h.adminService.ListJobs(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{Data: jobs})
}

func (h *AdminHandler) DeleteJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.adminService.DeleteJob(c.Param("id"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

func (h *AdminHandler) ListApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	applications, err := h.adminService.ListApplications(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{Data: applications})
}
