package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	blogUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/blog"
	"github.com/syedmaroof/portfolio-api/internal/domain/blog"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

type BlogHandler struct {
	createPostUseCase      *blogUC.CreatePostUseCase
	updatePostUseCase      *blogUC.UpdatePostUseCase
	deletePostUseCase      *blogUC.DeletePostUseCase
	getPostUseCase         *blogUC.GetPostUseCase
	getPublicPostUseCase   *blogUC.GetPublicPostUseCase
	listPostsUseCase       *blogUC.ListPostsUseCase
	listPublicPostsUseCase *blogUC.ListPublicPostsUseCase
	uploadCoverUseCase     *blogUC.UploadCoverUseCase
	rssUseCase             *blogUC.RSSUseCase
	logger                 logger.Logger
}

type BlogUseCases struct {
	Create      *blogUC.CreatePostUseCase
	Update      *blogUC.UpdatePostUseCase
	Delete      *blogUC.DeletePostUseCase
	Get         *blogUC.GetPostUseCase
	GetPublic   *blogUC.GetPublicPostUseCase
	List        *blogUC.ListPostsUseCase
	ListPublic  *blogUC.ListPublicPostsUseCase
	UploadCover *blogUC.UploadCoverUseCase
	RSS         *blogUC.RSSUseCase
}

func NewBlogHandler(ucs BlogUseCases, log logger.Logger) *BlogHandler {
	return &BlogHandler{
		createPostUseCase:      ucs.Create,
		updatePostUseCase:      ucs.Update,
		deletePostUseCase:      ucs.Delete,
		getPostUseCase:         ucs.Get,
		getPublicPostUseCase:   ucs.GetPublic,
		listPostsUseCase:       ucs.List,
		listPublicPostsUseCase: ucs.ListPublic,
		uploadCoverUseCase:     ucs.UploadCover,
		rssUseCase:             ucs.RSS,
		logger:                 log,
	}
}

func (req PostRequest) toInput() blogUC.PostInput {
	return blogUC.PostInput{
		Title:       req.Title,
		Slug:        req.Slug,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		IsPublished: req.IsPublished,
		PublishedAt: req.PublishedAt,
	}
}

func (h *BlogHandler) CreatePost(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	p, err := h.createPostUseCase.Execute(c.Request.Context(), req.toInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToPostDTO(p))
}

func (h *BlogHandler) UpdatePost(c *gin.Context) {
	id, err := parseIDParam(c, "post")
	if err != nil {
		c.Error(err)
		return
	}
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	p, err := h.updatePostUseCase.Execute(c.Request.Context(), id, req.toInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToPostDTO(p))
}

func (h *BlogHandler) DeletePost(c *gin.Context) {
	id, err := parseIDParam(c, "post")
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.deletePostUseCase.Execute(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BlogHandler) GetPost(c *gin.Context) {
	id, err := parseIDParam(c, "post")
	if err != nil {
		c.Error(err)
		return
	}
	p, err := h.getPostUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToPostDTO(p))
}

func (h *BlogHandler) ListPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	posts, err := h.listPostsUseCase.Execute(c.Request.Context(), blogUC.ListPostsInput{Page: page, Limit: limit})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToPostSummaryDTOs(posts))
}

func (h *BlogHandler) GetPublicPost(c *gin.Context) {
	p, err := h.getPublicPostUseCase.Execute(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToPostDTO(p))
}

func (h *BlogHandler) ListPublicPosts(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(blog.DefaultLatestLimit)))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid limit", err))
		return
	}
	posts, err := h.listPublicPostsUseCase.Execute(c.Request.Context(), limit)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToPostSummaryDTOs(posts))
}

func (h *BlogHandler) UploadCover(c *gin.Context) {
	id, err := parseIDParam(c, "post")
	if err != nil {
		c.Error(err)
		return
	}
	file, err := openUpload(c, "file")
	if err != nil {
		c.Error(err)
		return
	}
	defer file.Close()

	p, err := h.uploadCoverUseCase.Execute(c.Request.Context(), id, file)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToPostDTO(p))
}

func (h *BlogHandler) RSS(c *gin.Context) {
	feed, err := h.rssUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(apperror.NewInternal("failed to generate RSS feed", err))
		return
	}

	c.Header("Content-Type", "application/xml; charset=utf-8")

	if err := feed.WriteRss(c.Writer); err != nil {
		h.logger.Error("Failed to write RSS feed to response", err)
	}
}
