package delivery

import (
	"net/http"

	"mtasks-backend/internal/apperror"
	authdto "mtasks-backend/internal/auth/dto"
	"mtasks-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login and profile requests.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Register creates an account.
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Register(&req)
	if err != nil {
		apperror.Write(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login authenticates an existing account.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Login(&req)
	if err != nil {
		apperror.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me returns the authenticated user's profile.
// GET /api/users/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(ContextUserID)

	user, err := h.authUsecase.GetProfile(userID)
	if err != nil {
		apperror.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateMe applies a partial profile update.
// PUT /api/users/me
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	userID := c.GetString(ContextUserID)

	var req authdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authUsecase.UpdateProfile(userID, &req)
	if err != nil {
		apperror.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// DeleteMe removes the authenticated account.
// DELETE /api/users/me
func (h *AuthHandler) DeleteMe(c *gin.Context) {
	userID := c.GetString(ContextUserID)

	if err := h.authUsecase.DeleteAccount(userID); err != nil {
		apperror.Write(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
