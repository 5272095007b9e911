package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/baris/collegehub/internal/app/models"
	"github.com/baris/collegehub/internal/app/models/dto"
	"github.com/baris/collegehub/internal/app/services"
	"github.com/baris/collegehub/internal/middleware"
)

// AuthController handles login and profile operations
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// StudentLogin authenticates a student
// @Summary Student login
// @Description Authenticates a student with email and password, returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Login successful"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Invalid credentials"
// @Failure 403 {object} dto.APIResponse "Account not active"
// @Router /auth/student/login [post]
func (c *AuthController) StudentLogin(ctx *gin.Context) {
	c.login(ctx, models.UserTypeStudent)
}

// FacultyLogin authenticates a faculty member
// @Summary Faculty login
// @Description Authenticates a faculty member with email and password, returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Login successful"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Invalid credentials"
// @Failure 403 {object} dto.APIResponse "Account not active"
// @Router /auth/faculty/login [post]
func (c *AuthController) FacultyLogin(ctx *gin.Context) {
	c.login(ctx, models.UserTypeFaculty)
}

func (c *AuthController) login(ctx *gin.Context, userType models.UserType) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	result, err := c.authService.Login(ctx.Request.Context(), userType, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result, "Login successful", http.StatusOK))
}

// GetProfile returns the authenticated principal
// @Summary Get own profile
// @Description Returns the profile of the authenticated student or faculty member
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile retrieved successfully"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /auth/profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	userID := ctx.GetString(middleware.ContextUserID)
	userType := models.UserType(ctx.GetString(middleware.ContextUserType))

	profile, err := c.authService.Profile(ctx.Request.Context(), userType, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile, "Profile retrieved successfully", http.StatusOK))
}

// UpdateProfile applies the self-service profile patch
// @Summary Update own profile
// @Description Updates the allowed profile fields of the authenticated principal
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile updated successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /auth/profile [put]
func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID := ctx.GetString(middleware.ContextUserID)
	userType := models.UserType(ctx.GetString(middleware.ContextUserType))

	profile, err := c.authService.UpdateProfile(ctx.Request.Context(), userType, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile, "Profile updated successfully", http.StatusOK))
}
