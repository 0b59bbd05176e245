package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-dashboard/backend/internal/application/usecase/profile"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
)

// ProfileController handles profile and settings endpoints.
type ProfileController struct {
	getProfileUseCase     *profile.GetProfileUseCase
	updateProfileUseCase  *profile.UpdateProfileUseCase
	getSettingsUseCase    *profile.GetSettingsUseCase
	updateSettingsUseCase *profile.UpdateSettingsUseCase
}

// NewProfileController creates a new profile controller instance.
func NewProfileController(
	getProfileUseCase *profile.GetProfileUseCase,
	updateProfileUseCase *profile.UpdateProfileUseCase,
	getSettingsUseCase *profile.GetSettingsUseCase,
	updateSettingsUseCase *profile.UpdateSettingsUseCase,
) *ProfileController {
	return &ProfileController{
		getProfileUseCase:     getProfileUseCase,
		updateProfileUseCase:  updateProfileUseCase,
		getSettingsUseCase:    getSettingsUseCase,
		updateSettingsUseCase: updateSettingsUseCase,
	}
}

// GetProfile handles GET /profile requests.
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	output, err := c.getProfileUseCase.Execute(ctx.Request.Context(), profile.GetProfileInput{})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve profile",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output.Profile))
}

// UpdateProfile handles PATCH /profile requests.
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := profile.UpdateProfileInput{
		Name:        req.Name,
		Email:       req.Email,
		Preferences: req.Preferences,
	}

	output, err := c.updateProfileUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to update profile",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output.Profile))
}

// GetSettings handles GET /settings requests.
func (c *ProfileController) GetSettings(ctx *gin.Context) {
	output, err := c.getSettingsUseCase.Execute(ctx.Request.Context(), profile.GetSettingsInput{})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve settings",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.SettingsResponse{Settings: output.Settings})
}

// UpdateSettings handles PATCH /settings requests.
func (c *ProfileController) UpdateSettings(ctx *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := profile.UpdateSettingsInput{Settings: req.Settings}
	output, err := c.updateSettingsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to update settings",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.SettingsResponse{Settings: output.Settings})
}
