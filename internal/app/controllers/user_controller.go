package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finsaarthi/scholarhub/internal/app/models/dto"
	"github.com/finsaarthi/scholarhub/internal/app/services"
	"github.com/finsaarthi/scholarhub/internal/middleware"
	"github.com/finsaarthi/scholarhub/internal/pkg/filestorage"
)

// UserController handles profile operations and the admin user list
type UserController struct {
	userService services.UserService
	fileStorage *filestorage.LocalStorage
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService, fileStorage *filestorage.LocalStorage) *UserController {
	return &UserController{
		userService: userService,
		fileStorage: fileStorage,
	}
}

// GetProfile returns the authenticated user's full record
// @Summary Get own profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Profile"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	user, err := c.userService.GetProfile(userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewUserResponse(user),
		Timestamp: time.Now(),
	})
}

// UpdateProfile merges a partial profile update
// @Summary Update own profile
// @Description Merges the provided fields onto the profile. Changing the password requires the current one.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Updated profile"
// @Failure 400 {object} dto.ErrorResponse "Invalid profile data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized or wrong current password"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid profile data")
		errorDetail = errorDetail.WithDetails(dto.ValidationDetails(err))
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	user, err := c.userService.UpdateProfile(userID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewUserResponse(user),
		Timestamp: time.Now(),
	})
}

// UploadDocument stores a profile photo or resume and records its URL
// @Summary Upload a profile document
// @Description Accepts multipart form data with a "kind" field (photo or resume) and a "file" part
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param kind formData string true "Document kind" Enums(photo, resume)
// @Param file formData file true "The document"
// @Success 200 {object} dto.APIResponse{data=dto.DocumentUploadResponse} "Stored document location"
// @Failure 400 {object} dto.ErrorResponse "Invalid upload"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /profile/documents [post]
func (c *UserController) UploadDocument(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	kind := ctx.PostForm("kind")
	if kind != services.DocumentKindPhoto && kind != services.DocumentKindResume {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid document kind")
		errorDetail = errorDetail.WithDetails("kind must be photo or resume").WithField("kind")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing file")
		errorDetail = errorDetail.WithDetails(err.Error()).WithField("file")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	url, err := c.fileStorage.SaveFile(fileHeader, kind+"s")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if _, err := c.userService.AttachDocument(userID, kind, url); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.DocumentUploadResponse{Kind: kind, URL: url},
		Timestamp: time.Now(),
	})
}

// ListUsers returns every account for the admin panel
// @Summary List all users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.UserResponse} "Users"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /admin/users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users := c.userService.ListUsers()
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewUserResponses(users),
		Timestamp: time.Now(),
	})
}
