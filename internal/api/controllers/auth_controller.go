package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymtrack/internal/models/request_models"
	"gymtrack/internal/services"
	"gymtrack/pkg/middleware"
	"gymtrack/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

func identityFrom(c *gin.Context) services.Identity {
	identity, _ := middleware.GetIdentity(c)
	return identity
}

// Login godoc
// @Summary Validate credentials
// @Description Checks a username/password pair and returns the member profile; no token is issued
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profile, err := a.authService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Login successful")
}

// Me godoc
// @Summary Current member profile
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /me [get]
func (a *AuthController) Me(c *gin.Context) {
	profile, err := a.authService.Profile(c.Request.Context(), identityFrom(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile fetched successfully")
}

// RegisterAdmin godoc
// @Summary Bootstrap an admin account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.RegisterAdminRequest true "Admin registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /auth/register-admin [post]
func (a *AuthController) RegisterAdmin(c *gin.Context) {
	var req request_models.RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	admin, err := a.authService.RegisterAdmin(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, admin, "Admin created successfully")
}
