package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	experienceUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/experience"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
)

type ExperienceHandler struct {
	useCase *experienceUC.ExperienceUseCase
}

func NewExperienceHandler(uc *experienceUC.ExperienceUseCase) *ExperienceHandler {
	return &ExperienceHandler{useCase: uc}
}

func (req ExperienceRequest) toInput() (experienceUC.ExperienceInput, error) {
	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return experienceUC.ExperienceInput{}, err
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return experienceUC.ExperienceInput{}, err
	}
	return experienceUC.ExperienceInput{
		Company:     req.Company,
		Position:    req.Position,
		Location:    req.Location,
		StartDate:   start,
		EndDate:     end,
		IsCurrent:   req.IsCurrent,
		Description: req.Description,
	}, nil
}

func (h *ExperienceHandler) bind(c *gin.Context) (experienceUC.ExperienceInput, bool) {
	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return experienceUC.ExperienceInput{}, false
	}
	in, err := req.toInput()
	if err != nil {
		c.Error(err)
		return experienceUC.ExperienceInput{}, false
	}
	return in, true
}

func (h *ExperienceHandler) CreateExperience(c *gin.Context) {
	in, ok := h.bind(c)
	if !ok {
		return
	}
	e, err := h.useCase.CreateExperience(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToExperienceDTO(e))
}

func (h *ExperienceHandler) UpdateExperience(c *gin.Context) {
	id, err := parseIDParam(c, "experience")
	if err != nil {
		c.Error(err)
		return
	}
	in, ok := h.bind(c)
	if !ok {
		return
	}
	e, err := h.useCase.UpdateExperience(c.Request.Context(), id, in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToExperienceDTO(e))
}

func (h *ExperienceHandler) DeleteExperience(c *gin.Context) {
	id, err := parseIDParam(c, "experience")
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.useCase.DeleteExperience(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ExperienceHandler) GetExperience(c *gin.Context) {
	id, err := parseIDParam(c, "experience")
	if err != nil {
		c.Error(err)
		return
	}
	e, err := h.useCase.GetExperience(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToExperienceDTO(e))
}

func (h *ExperienceHandler) ListExperience(c *gin.Context) {
	list, err := h.useCase.ListExperience(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToExperienceDTOs(list))
}

func (h *ExperienceHandler) ListPublicExperience(c *gin.Context) {
	list, err := h.useCase.ListPublicExperience(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToExperienceDTOs(list))
}

func (h *ExperienceHandler) ReorderExperience(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	if err := h.useCase.ReorderExperience(c.Request.Context(), req.IDs); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
