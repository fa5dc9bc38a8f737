package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/syedmaroof/portfolio-api/internal/application/usecase/auth"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

type AuthHandler struct {
	loginUseCase   *auth.LoginUseCase
	logoutUseCase  *auth.LogoutUseCase
	sessionUseCase *auth.SessionUseCase
	logger         logger.Logger
}

func NewAuthHandler(loginUC *auth.LoginUseCase, logoutUC *auth.LogoutUseCase, sessionUC *auth.SessionUseCase, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		loginUseCase:   loginUC,
		logoutUseCase:  logoutUC,
		sessionUseCase: sessionUC,
		logger:         log,
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid login request", err))
		return
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": output.AccessToken,
		"expires_at":   output.ExpiresAt,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := GetClaimsFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("token claims not found in context"))
		return
	}
	if err := h.logoutUseCase.Execute(c.Request.Context(), claims); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Session(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	output, err := h.sessionUseCase.Execute(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"owner_id": output.OwnerID,
		"email":    output.Email,
		"name":     output.Name,
	})
}
