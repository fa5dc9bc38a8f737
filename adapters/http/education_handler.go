package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	educationUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/education"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
)

type EducationHandler struct {
	useCase *educationUC.EducationUseCase
}

func NewEducationHandler(uc *educationUC.EducationUseCase) *EducationHandler {
	return &EducationHandler{useCase: uc}
}

func (req EducationRequest) toInput() (educationUC.EducationInput, error) {
	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return educationUC.EducationInput{}, err
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return educationUC.EducationInput{}, err
	}
	return educationUC.EducationInput{
		Institution: req.Institution,
		Degree:      req.Degree,
		Field:       req.Field,
		Location:    req.Location,
		StartDate:   start,
		EndDate:     end,
		IsCurrent:   req.IsCurrent,
		Description: req.Description,
	}, nil
}

func (h *EducationHandler) bind(c *gin.Context) (educationUC.EducationInput, bool) {
	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return educationUC.EducationInput{}, false
	}
	in, err := req.toInput()
	if err != nil {
		c.Error(err)
		return educationUC.EducationInput{}, false
	}
	return in, true
}

func (h *EducationHandler) CreateEducation(c *gin.Context) {
	in, ok := h.bind(c)
	if !ok {
		return
	}
	e, err := h.useCase.CreateEducation(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToEducationDTO(e))
}

func (h *EducationHandler) UpdateEducation(c *gin.Context) {
	id, err := parseIDParam(c, "education")
	if err != nil {
		c.Error(err)
		return
	}
	in, ok := h.bind(c)
	if !ok {
		return
	}
	e, err := h.useCase.UpdateEducation(c.Request.Context(), id, in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToEducationDTO(e))
}

func (h *EducationHandler) DeleteEducation(c *gin.Context) {
	id, err := parseIDParam(c, "education")
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.useCase.DeleteEducation(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EducationHandler) GetEducation(c *gin.Context) {
	id, err := parseIDParam(c, "education")
	if err != nil {
		c.Error(err)
		return
	}
	e, err := h.useCase.GetEducation(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToEducationDTO(e))
}

func (h *EducationHandler) ListEducation(c *gin.Context) {
	list, err := h.useCase.ListEducation(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToEducationDTOs(list))
}

func (h *EducationHandler) ListPublicEducation(c *gin.Context) {
	list, err := h.useCase.ListPublicEducation(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToEducationDTOs(list))
}

func (h *EducationHandler) ReorderEducation(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	if err := h.useCase.ReorderEducation(c.Request.Context(), req.IDs); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
