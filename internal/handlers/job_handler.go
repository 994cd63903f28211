package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs", h.List)
	rg.GET("/jobs/:id", h.Get)

	protected := rg.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/jobs", middleware.RequireRoles(models.UserRoleEmployer), h.Create)
		protected.PUT("/jobs/:id", h.Update)
		protected.DELETE("/jobs/:id", h.Delete)
		protected.GET("/employer/jobs", middleware.RequireRoles(models.UserRoleEmployer), h.ListForEmployer)
	}
}

// List - публичный каталог активных вакансий с фильтрами
func (h *JobHandler) List(c *gin.Context) {
	var filter dto.JobListFilter
	if !h.BindAndValidateQuery(c, &filter) {
		return
	}

	jobs, err := h.jobService.List(&filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{Data: jobs})
}

func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Update(c.Param("id"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.jobService.Delete(c.Param("id"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

// ListForEmployer - вакансии текущего работодателя со счетчиками заявок
func (h *JobHandler) ListForEmployer(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.ListForEmployer(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{Data: jobs})
}
