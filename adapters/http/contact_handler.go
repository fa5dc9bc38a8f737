package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	contactUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/contact"
	"github.com/syedmaroof/portfolio-api/internal/domain/contact"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
)

type ContactHandler struct {
	useCase *contactUC.ContactUseCase
}

func NewContactHandler(uc *contactUC.ContactUseCase) *ContactHandler {
	return &ContactHandler{useCase: uc}
}

func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	m, err := h.useCase.SubmitMessage(c.Request.Context(), contactUC.SubmitMessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": m.ID, "status": "received"})
}

func (h *ContactHandler) ListMessages(c *gin.Context) {
	unread, _ := strconv.ParseBool(c.DefaultQuery("unread", "false"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	messages, err := h.useCase.ListMessages(c.Request.Context(), contact.ListFilter{
		UnreadOnly: unread,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]MessageDTO, len(messages))
	for i, m := range messages {
		dtos[i] = ToMessageDTO(m)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *ContactHandler) MarkRead(c *gin.Context) {
	id, err := parseIDParam(c, "message")
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.useCase.MarkRead(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ContactHandler) DeleteMessage(c *gin.Context) {
	id, err := parseIDParam(c, "message")
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.useCase.DeleteMessage(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
