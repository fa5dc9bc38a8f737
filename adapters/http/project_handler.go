package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	projectUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/project"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

const maxImageSize = 10 << 20

type ProjectHandler struct {
	createProjectUseCase   *projectUC.CreateProjectUseCase
	updateProjectUseCase   *projectUC.UpdateProjectUseCase
	deleteProjectUseCase   *projectUC.DeleteProjectUseCase
	getProjectUseCase      *projectUC.GetProjectUseCase
	listProjectsUseCase    *projectUC.ListProjectsUseCase
	reorderProjectsUseCase *projectUC.ReorderProjectsUseCase
	uploadImageUseCase     *projectUC.UploadProjectImageUseCase
	logger                 logger.Logger
}

func NewProjectHandler(
	createUC *projectUC.CreateProjectUseCase,
	updateUC *projectUC.UpdateProjectUseCase,
	deleteUC *projectUC.DeleteProjectUseCase,
	getUC *projectUC.GetProjectUseCase,
	listUC *projectUC.ListProjectsUseCase,
	reorderUC *projectUC.ReorderProjectsUseCase,
	uploadUC *projectUC.UploadProjectImageUseCase,
	log logger.Logger,
) *ProjectHandler {
	return &ProjectHandler{
		createProjectUseCase:   createUC,
		updateProjectUseCase:   updateUC,
		deleteProjectUseCase:   deleteUC,
		getProjectUseCase:      getUC,
		listProjectsUseCase:    listUC,
		reorderProjectsUseCase: reorderUC,
		uploadImageUseCase:     uploadUC,
		logger:                 log,
	}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	p, err := h.createProjectUseCase.Execute(c.Request.Context(), projectUC.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		TechStack:   req.TechStack,
		PreviewURL:  req.PreviewURL,
		GithubURL:   req.GithubURL,
		IsFeatured:  req.IsFeatured,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToProjectDTO(p))
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	p, err := h.updateProjectUseCase.Execute(c.Request.Context(), projectUC.UpdateProjectInput{
		ProjectID:   projectID,
		Title:       req.Title,
		Description: req.Description,
		TechStack:   req.TechStack,
		PreviewURL:  req.PreviewURL,
		GithubURL:   req.GithubURL,
		IsFeatured:  req.IsFeatured,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProjectDTO(p))
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}
	if err := h.deleteProjectUseCase.Execute(c.Request.Context(), projectID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}
	p, err := h.getProjectUseCase.Execute(c.Request.Context(), projectID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProjectDTO(p))
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	h.listProjects(c, false)
}

func (h *ProjectHandler) ListPublicProjects(c *gin.Context) {
	h.listProjects(c, true)
}

func (h *ProjectHandler) listProjects(c *gin.Context, public bool) {
	featured, _ := strconv.ParseBool(c.DefaultQuery("featured", "false"))

	projects, err := h.listProjectsUseCase.Execute(c.Request.Context(), projectUC.ListProjectsInput{
		FeaturedOnly: featured,
		Public:       public,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProjectDTOs(projects))
}

func (h *ProjectHandler) ReorderProjects(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	if err := h.reorderProjectsUseCase.Execute(c.Request.Context(), req.IDs); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) UploadImage(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}
	file, err := openUpload(c, "file")
	if err != nil {
		c.Error(err)
		return
	}
	defer file.Close()

	p, err := h.uploadImageUseCase.Execute(c.Request.Context(), projectUC.UploadProjectImageInput{
		ProjectID: projectID,
		File:      file,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProjectDTO(p))
}
