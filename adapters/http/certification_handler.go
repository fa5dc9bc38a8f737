package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	certificationUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/certification"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
)

type CertificationHandler struct {
	useCase *certificationUC.CertificationUseCase
}

func NewCertificationHandler(uc *certificationUC.CertificationUseCase) *CertificationHandler {
	return &CertificationHandler{useCase: uc}
}

func (h *CertificationHandler) bind(c *gin.Context) (certificationUC.CertificationInput, bool) {
	var req CertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return certificationUC.CertificationInput{}, false
	}
	issued, err := parseDate("issue_date", req.IssueDate)
	if err != nil {
		c.Error(err)
		return certificationUC.CertificationInput{}, false
	}
	expires, err := parseDate("expiry_date", req.ExpiryDate)
	if err != nil {
		c.Error(err)
		return certificationUC.CertificationInput{}, false
	}
	return certificationUC.CertificationInput{
		Title:         req.Title,
		Issuer:        req.Issuer,
		IssueDate:     issued,
		ExpiryDate:    expires,
		CredentialID:  req.CredentialID,
		CredentialURL: req.CredentialURL,
	}, true
}

func (h *CertificationHandler) CreateCertification(c *gin.Context) {
	in, ok := h.bind(c)
	if !ok {
		return
	}
	cert, err := h.useCase.CreateCertification(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToCertificationDTO(cert))
}

func (h *CertificationHandler) UpdateCertification(c *gin.Context) {
	id, err := parseIDParam(c, "certification")
	if err != nil {
		c.Error(err)
		return
	}
	in, ok := h.bind(c)
	if !ok {
		return
	}
	cert, err := h.useCase.UpdateCertification(c.Request.Context(), id, in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToCertificationDTO(cert))
}

func (h *CertificationHandler) DeleteCertification(c *gin.Context) {
	id, err := parseIDParam(c, "certification")
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.useCase.DeleteCertification(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CertificationHandler) GetCertification(c *gin.Context) {
	id, err := parseIDParam(c, "certification")
	if err != nil {
		c.Error(err)
		return
	}
	cert, err := h.useCase.GetCertification(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToCertificationDTO(cert))
}

func (h *CertificationHandler) ListCertifications(c *gin.Context) {
	list, err := h.useCase.ListCertifications(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToCertificationDTOs(list))
}

func (h *CertificationHandler) ListPublicCertifications(c *gin.Context) {
	list, err := h.useCase.ListPublicCertifications(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToCertificationDTOs(list))
}

func (h *CertificationHandler) ReorderCertifications(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	if err := h.useCase.ReorderCertifications(c.Request.Context(), req.IDs); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
