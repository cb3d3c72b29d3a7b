package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finsaarthi/scholarhub/internal/app/models/dto"
	"github.com/finsaarthi/scholarhub/internal/app/services"
	"github.com/finsaarthi/scholarhub/internal/middleware"
)

// ScholarshipController handles scholarship browsing and admin CRUD
type ScholarshipController struct {
	scholarshipService services.ScholarshipService
	applicationService services.ApplicationService
}

// NewScholarshipController creates a new ScholarshipController
func NewScholarshipController(scholarshipService services.ScholarshipService, applicationService services.ApplicationService) *ScholarshipController {
	return &ScholarshipController{
		scholarshipService: scholarshipService,
		applicationService: applicationService,
	}
}

// ListScholarships lists active scholarships with search, category
// filter and a single sort key
// @Summary Browse active scholarships
// @Description Case-insensitive search over title, description and provider; exact category filter; one sort key of deadline, amount or title
// @Tags scholarships
// @Produce json
// @Param search query string false "Search term"
// @Param category query string false "Exact category" Enums(Merit-based, Need-based, Field-specific, Other)
// @Param sortBy query string false "Sort key" Enums(deadline, amount, title)
// @Success 200 {object} dto.APIResponse{data=[]models.Scholarship} "Active scholarships"
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Router /scholarships [get]
func (c *ScholarshipController) ListScholarships(ctx *gin.Context) {
	var query dto.ScholarshipListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid listing query")
		errorDetail = errorDetail.WithDetails(dto.ValidationDetails(err))
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	scholarships := c.scholarshipService.ListActive(query)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      scholarships,
		Timestamp: time.Now(),
	})
}

// GetScholarshipByID returns one scholarship
// @Summary Get scholarship details
// @Tags scholarships
// @Produce json
// @Param id path string true "Scholarship ID"
// @Success 200 {object} dto.APIResponse{data=models.Scholarship} "Scholarship"
// @Failure 404 {object} dto.ErrorResponse "Scholarship not found"
// @Router /scholarships/{id} [get]
func (c *ScholarshipController) GetScholarshipByID(ctx *gin.Context) {
	scholarship, err := c.scholarshipService.GetByID(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      scholarship,
		Timestamp: time.Now(),
	})
}

// CheckApplied reports whether the caller already applied, driving the
// "Applied" button state
// @Summary Check own application state for a scholarship
// @Tags scholarships
// @Produce json
// @Security BearerAuth
// @Param id path string true "Scholarship ID"
// @Success 200 {object} dto.APIResponse "hasApplied flag"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /scholarships/{id}/applied [get]
func (c *ScholarshipController) CheckApplied(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      gin.H{"hasApplied": c.applicationService.HasApplied(userID, ctx.Param("id"))},
		Timestamp: time.Now(),
	})
}

// CreateScholarship creates a scholarship, admin only
// @Summary Create a scholarship
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateScholarshipRequest true "Scholarship data"
// @Success 201 {object} dto.APIResponse{data=models.Scholarship} "Created scholarship"
// @Failure 400 {object} dto.ErrorResponse "Invalid scholarship data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /scholarships [post]
func (c *ScholarshipController) CreateScholarship(ctx *gin.Context) {
	var req dto.CreateScholarshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid scholarship data")
		errorDetail = errorDetail.WithDetails(dto.ValidationDetails(err))
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	scholarship, err := c.scholarshipService.Create(req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      scholarship,
		Timestamp: time.Now(),
	})
}

// UpdateScholarship merges a partial update, admin only
// @Summary Update a scholarship
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Scholarship ID"
// @Param request body dto.UpdateScholarshipRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Scholarship} "Updated scholarship"
// @Failure 400 {object} dto.ErrorResponse "Invalid scholarship data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Scholarship not found"
// @Router /scholarships/{id} [put]
func (c *ScholarshipController) UpdateScholarship(ctx *gin.Context) {
	var req dto.UpdateScholarshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid scholarship data")
		errorDetail = errorDetail.WithDetails(dto.ValidationDetails(err))
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	scholarship, err := c.scholarshipService.Update(ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      scholarship,
		Timestamp: time.Now(),
	})
}

// DeleteScholarship removes a scholarship and, by cascade, every
// application referencing it, admin only
// @Summary Delete a scholarship
// @Description Deletes the scholarship and all applications that reference it
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Scholarship ID"
// @Success 200 {object} dto.APIResponse "Deleted"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Scholarship not found"
// @Router /scholarships/{id} [delete]
func (c *ScholarshipController) DeleteScholarship(ctx *gin.Context) {
	if err := c.scholarshipService.Delete(ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Timestamp: time.Now(),
	})
}

// ListAllScholarships returns every scholarship, inactive included,
// for the admin panel
// @Summary List all scholarships
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Scholarship} "All scholarships"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /admin/scholarships [get]
func (c *ScholarshipController) ListAllScholarships(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.scholarshipService.ListAll(),
		Timestamp: time.Now(),
	})
}
