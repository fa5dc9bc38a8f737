package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	backupUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/backup"
	portfolioUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/portfolio"
)

type PortfolioHandler struct {
	useCase *portfolioUC.GetPortfolioUseCase
}

func NewPortfolioHandler(uc *portfolioUC.GetPortfolioUseCase) *PortfolioHandler {
	return &PortfolioHandler{useCase: uc}
}

func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	p, err := h.useCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToPortfolioDTO(p))
}

type BackupHandler struct {
	useCase *backupUC.BackupUseCase
}

func NewBackupHandler(uc *backupUC.BackupUseCase) *BackupHandler {
	return &BackupHandler{useCase: uc}
}

func (h *BackupHandler) TriggerBackup(c *gin.Context) {
	h.useCase.Trigger()
	c.JSON(http.StatusAccepted, gin.H{"status": "backup started"})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
