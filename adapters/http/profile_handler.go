package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/profile"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	logger         logger.Logger
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: uc,
		logger:         log,
	}
}

func (h *ProfileHandler) GetPublicProfile(c *gin.Context) {
	h.getProfile(c, true)
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	h.getProfile(c, false)
}

func (h *ProfileHandler) getProfile(c *gin.Context, public bool) {
	output, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context(), profileUC.GetProfileInput{Public: public})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile update", err))
		return
	}
	dob, err := parseDate("dob", req.DOB)
	if err != nil {
		c.Error(err)
		return
	}

	input := profileUC.UpdateProfileInput{
		OwnerID:   ownerID,
		FullName:  req.FullName,
		Title:     req.Title,
		Bio:       req.Bio,
		Email:     req.Email,
		Phone:     req.Phone,
		Location:  req.Location,
		Github:    req.Github,
		Instagram: req.Instagram,
		Linkedin:  req.Linkedin,
		DOB:       dob,
	}
	output, err := h.profileUseCase.ExecuteUpdateProfile(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}
