package project

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/syedmaroof/portfolio-api/internal/application/usecase/sections"
	"github.com/syedmaroof/portfolio-api/internal/domain/content"
	"github.com/syedmaroof/portfolio-api/internal/domain/project"
	"github.com/syedmaroof/portfolio-api/internal/mocks"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

func newNotifier(cache *mocks.SectionCache) *sections.Notifier {
	return sections.NewNotifier(cache, mocks.NewQuietPublisher(), logger.NewNopLogger())
}

func TestCreateProject_AppendsAtEndAndInvalidates(t *testing.T) {
	repo := &mocks.ProjectRepository{}
	cache := &mocks.SectionCache{}
	repo.On("NextDisplayOrder", mock.Anything).Return(4, nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(p *project.Project) bool {
		return p.Title == "Portfolio" && p.DisplayOrder == 4 && p.TechStack != nil
	})).Return(nil)
	cache.On("Invalidate", mock.Anything, content.SectionProjects).Return(nil).Once()

	uc := NewCreateProjectUseCase(repo, newNotifier(cache), logger.NewNopLogger())
	blank := ""
	p, err := uc.Execute(context.Background(), CreateProjectInput{Title: "Portfolio", PreviewURL: &blank})

	require.NoError(t, err)
	assert.Equal(t, 4, p.DisplayOrder)
	assert.Nil(t, p.PreviewURL)
	assert.Empty(t, p.TechStack)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestCreateProject_ValidationError(t *testing.T) {
	repo := &mocks.ProjectRepository{}
	uc := NewCreateProjectUseCase(repo, newNotifier(mocks.NewMissingCache()), logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), CreateProjectInput{})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	bad := "ftp://example.com"
	_, err = uc.Execute(context.Background(), CreateProjectInput{Title: "x", GithubURL: &bad})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUpdateProject_NotFound(t *testing.T) {
	repo := &mocks.ProjectRepository{}
	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, apperror.NewNotFound("project", id.String()))

	uc := NewUpdateProjectUseCase(repo, newNotifier(mocks.NewMissingCache()), logger.NewNopLogger())
	_, err := uc.Execute(context.Background(), UpdateProjectInput{ProjectID: id, Title: "x"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestReorderProjects(t *testing.T) {
	repo := &mocks.ProjectRepository{}
	uc := NewReorderProjectsUseCase(repo, newNotifier(mocks.NewMissingCache()))

	err := uc.Execute(context.Background(), nil)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	id := uuid.New()
	err = uc.Execute(context.Background(), []uuid.UUID{id, id})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	ids := []uuid.UUID{uuid.New(), uuid.New()}
	repo.On("Reorder", mock.Anything, ids).Return(nil).Once()
	require.NoError(t, uc.Execute(context.Background(), ids))
	repo.AssertExpectations(t)
}

func TestListProjects_PublicUsesCache(t *testing.T) {
	repo := &mocks.ProjectRepository{}
	cache := &mocks.SectionCache{}
	cache.On("Get", mock.Anything, content.SectionProjects, "featured", mock.Anything).Return(true, nil)

	uc := NewListProjectsUseCase(repo, cache, logger.NewNopLogger())
	_, err := uc.Execute(context.Background(), ListProjectsInput{FeaturedOnly: true, Public: true})

	require.NoError(t, err)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestListProjects_AdminSkipsCache(t *testing.T) {
	repo := &mocks.ProjectRepository{}
	cache := &mocks.SectionCache{}
	want := []*project.Project{{ID: uuid.New(), Title: "A"}}
	repo.On("List", mock.Anything, project.ListFilter{}).Return(want, nil)

	uc := NewListProjectsUseCase(repo, cache, logger.NewNopLogger())
	got, err := uc.Execute(context.Background(), ListProjectsInput{})

	require.NoError(t, err)
	assert.Equal(t, want, got)
	cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadProjectImage(t *testing.T) {
	repo := &mocks.ProjectRepository{}
	uploader := &mocks.Uploader{}
	p := &project.Project{ID: uuid.New(), Title: "A"}
	url := "https://res.cloudinary.com/demo/image/upload/portfolio/projects/" + p.ID.String()

	repo.On("FindByID", mock.Anything, p.ID).Return(p, nil)
	uploader.On("Folder").Return("portfolio")
	uploader.On("Upload", mock.Anything, mock.Anything, "portfolio/projects", p.ID.String()).Return(url, nil)
	repo.On("UpdateImage", mock.Anything, p.ID, url).Return(nil)

	uc := NewUploadProjectImageUseCase(repo, uploader, newNotifier(mocks.NewMissingCache()), logger.NewNopLogger())
	got, err := uc.Execute(context.Background(), UploadProjectImageInput{ProjectID: p.ID, File: strings.NewReader("png")})

	require.NoError(t, err)
	require.NotNil(t, got.ImageURL)
	assert.Equal(t, url, *got.ImageURL)
}

func TestUploadProjectImage_UploadFailure(t *testing.T) {
	repo := &mocks.ProjectRepository{}
	uploader := &mocks.Uploader{}
	p := &project.Project{ID: uuid.New(), Title: "A"}

	repo.On("FindByID", mock.Anything, p.ID).Return(p, nil)
	uploader.On("Folder").Return("portfolio")
	uploader.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("boom"))

	uc := NewUploadProjectImageUseCase(repo, uploader, newNotifier(mocks.NewMissingCache()), logger.NewNopLogger())
	_, err := uc.Execute(context.Background(), UploadProjectImageInput{ProjectID: p.ID, File: strings.NewReader("png")})

	assert.ErrorIs(t, err, apperror.ErrInternal)
	repo.AssertNotCalled(t, "UpdateImage", mock.Anything, mock.Anything, mock.Anything)
}
