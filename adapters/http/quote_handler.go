package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	quoteUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/quote"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
)

type QuoteHandler struct {
	useCase *quoteUC.QuoteUseCase
}

func NewQuoteHandler(uc *quoteUC.QuoteUseCase) *QuoteHandler {
	return &QuoteHandler{useCase: uc}
}

func (h *QuoteHandler) RandomQuote(c *gin.Context) {
	q, err := h.useCase.RandomQuote(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToQuoteDTO(q))
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.useCase.ListQuotes(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]QuoteDTO, len(quotes))
	for i, q := range quotes {
		dtos[i] = ToQuoteDTO(q)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	q, err := h.useCase.CreateQuote(c.Request.Context(), quoteUC.QuoteInput{Text: req.Quote, CharacterName: req.CharacterName})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToQuoteDTO(q))
}

func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	id, err := parseIDParam(c, "quote")
	if err != nil {
		c.Error(err)
		return
	}
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	q, err := h.useCase.UpdateQuote(c.Request.Context(), id, quoteUC.QuoteInput{Text: req.Quote, CharacterName: req.CharacterName})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToQuoteDTO(q))
}

func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	id, err := parseIDParam(c, "quote")
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.useCase.DeleteQuote(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
