package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	skillUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/skill"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
)

type SkillHandler struct {
	useCase *skillUC.SkillUseCase
}

func NewSkillHandler(uc *skillUC.SkillUseCase) *SkillHandler {
	return &SkillHandler{useCase: uc}
}

func (req SkillRequest) toInput() skillUC.SkillInput {
	return skillUC.SkillInput{
		Name:        req.Name,
		Category:    req.Category,
		Proficiency: req.Proficiency,
		Icon:        req.Icon,
	}
}

func (h *SkillHandler) CreateSkill(c *gin.Context) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	s, err := h.useCase.CreateSkill(c.Request.Context(), req.toInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToSkillDTO(s))
}

func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	id, err := parseIDParam(c, "skill")
	if err != nil {
		c.Error(err)
		return
	}
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	s, err := h.useCase.UpdateSkill(c.Request.Context(), id, req.toInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSkillDTO(s))
}

func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	id, err := parseIDParam(c, "skill")
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.useCase.DeleteSkill(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SkillHandler) GetSkill(c *gin.Context) {
	id, err := parseIDParam(c, "skill")
	if err != nil {
		c.Error(err)
		return
	}
	s, err := h.useCase.GetSkill(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSkillDTO(s))
}

func (h *SkillHandler) ListSkills(c *gin.Context) {
	skills, err := h.useCase.ListSkills(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSkillDTOs(skills))
}

func (h *SkillHandler) ListPublicSkills(c *gin.Context) {
	skills, err := h.useCase.ListPublicSkills(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSkillDTOs(skills))
}

func (h *SkillHandler) ListGroupedSkills(c *gin.Context) {
	groups, err := h.useCase.ListGroupedSkills(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSkillGroupDTOs(groups))
}

func (h *SkillHandler) ReorderSkills(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	if err := h.useCase.ReorderSkills(c.Request.Context(), req.IDs); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
