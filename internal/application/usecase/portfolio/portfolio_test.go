package portfolio

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/syedmaroof/portfolio-api/internal/application/usecase/sections"
	"github.com/syedmaroof/portfolio-api/internal/domain/blog"
	"github.com/syedmaroof/portfolio-api/internal/domain/certification"
	"github.com/syedmaroof/portfolio-api/internal/domain/education"
	"github.com/syedmaroof/portfolio-api/internal/domain/experience"
	"github.com/syedmaroof/portfolio-api/internal/domain/profile"
	"github.com/syedmaroof/portfolio-api/internal/domain/project"
	"github.com/syedmaroof/portfolio-api/internal/domain/quote"
	"github.com/syedmaroof/portfolio-api/internal/domain/skill"
	"github.com/syedmaroof/portfolio-api/internal/mocks"
	"github.com/syedmaroof/portfolio-api/pkg/logger"

	blogUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/blog"
	certificationUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/certification"
	educationUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/education"
	experienceUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/experience"
	profileUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/profile"
	projectUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/project"
	quoteUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/quote"
	skillUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/skill"
)

type repos struct {
	profile       *mocks.ProfileRepository
	project       *mocks.ProjectRepository
	skill         *mocks.SkillRepository
	education     *mocks.EducationRepository
	experience    *mocks.ExperienceRepository
	certification *mocks.CertificationRepository
	blog          *mocks.BlogRepository
	quote         *mocks.QuoteRepository
}

func newRepos() repos {
	return repos{
		profile:       &mocks.ProfileRepository{},
		project:       &mocks.ProjectRepository{},
		skill:         &mocks.SkillRepository{},
		education:     &mocks.EducationRepository{},
		experience:    &mocks.ExperienceRepository{},
		certification: &mocks.CertificationRepository{},
		blog:          &mocks.BlogRepository{},
		quote:         &mocks.QuoteRepository{},
	}
}

func (r repos) useCase() *GetPortfolioUseCase {
	log := logger.NewNopLogger()
	cache := mocks.NewMissingCache()
	notifier := sections.NewNotifier(cache, mocks.NewQuietPublisher(), log)
	return NewGetPortfolioUseCase(Sources{
		Profiles:       profileUC.NewProfileUseCase(r.profile, cache, notifier, log),
		Projects:       projectUC.NewListProjectsUseCase(r.project, cache, log),
		Skills:         skillUC.NewSkillUseCase(r.skill, cache, notifier, log),
		Education:      educationUC.NewEducationUseCase(r.education, cache, notifier, log),
		Experience:     experienceUC.NewExperienceUseCase(r.experience, cache, notifier, log),
		Certifications: certificationUC.NewCertificationUseCase(r.certification, cache, notifier, log),
		Posts:          blogUC.NewListPublicPostsUseCase(r.blog, cache, log),
		Quotes:         quoteUC.NewQuoteUseCase(r.quote, notifier, log),
	})
}

func TestGetPortfolio_AssemblesAllSections(t *testing.T) {
	r := newRepos()
	plain := &project.Project{ID: uuid.New(), Title: "Plain", DisplayOrder: 1}
	star := &project.Project{ID: uuid.New(), Title: "Star", IsFeatured: true, DisplayOrder: 2}

	r.profile.On("Get", mock.Anything).Return(&profile.Profile{ID: uuid.New(), FullName: "Syed"}, nil)
	r.quote.On("Random", mock.Anything).Return(&quote.Quote{Text: "Arise."}, nil)
	r.project.On("List", mock.Anything, project.ListFilter{}).Return([]*project.Project{plain, star}, nil)
	r.skill.On("List", mock.Anything).Return([]*skill.Skill{{Name: "Go", Category: "Backend"}}, nil)
	r.education.On("List", mock.Anything).Return([]*education.Education{}, nil)
	r.experience.On("List", mock.Anything).Return([]*experience.Experience{}, nil)
	r.certification.On("List", mock.Anything).Return([]*certification.Certification{}, nil)
	r.blog.On("ListPublished", mock.Anything, blog.DefaultLatestLimit).Return([]*blog.Post{}, nil)

	out, err := r.useCase().Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Syed", out.Profile.FullName)
	assert.Equal(t, "Arise.", out.Quote.Text)
	require.Len(t, out.Projects, 2)
	assert.Equal(t, "Star", out.Projects[0].Title)
	require.Len(t, out.Skills, 1)
	assert.Equal(t, "Backend", out.Skills[0].Category)
}

func TestGetPortfolio_SectionFailureFailsPage(t *testing.T) {
	r := newRepos()
	boom := errors.New("boom")

	r.profile.On("Get", mock.Anything).Return(&profile.Profile{}, nil).Maybe()
	r.quote.On("Random", mock.Anything).Return(&quote.Quote{Text: "x"}, nil).Maybe()
	r.project.On("List", mock.Anything, mock.Anything).Return(nil, boom)
	r.skill.On("List", mock.Anything).Return([]*skill.Skill{}, nil).Maybe()
	r.education.On("List", mock.Anything).Return([]*education.Education{}, nil).Maybe()
	r.experience.On("List", mock.Anything).Return([]*experience.Experience{}, nil).Maybe()
	r.certification.On("List", mock.Anything).Return([]*certification.Certification{}, nil).Maybe()
	r.blog.On("ListPublished", mock.Anything, mock.Anything).Return([]*blog.Post{}, nil).Maybe()

	_, err := r.useCase().Execute(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestFeaturedFirst_KeepsOrderWithinGroups(t *testing.T) {
	in := []*project.Project{
		{Title: "a"}, {Title: "b", IsFeatured: true}, {Title: "c"}, {Title: "d", IsFeatured: true},
	}
	out := FeaturedFirst(in)

	titles := make([]string, len(out))
	for i, p := range out {
		titles[i] = p.Title
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, titles)
	assert.Equal(t, "a", in[0].Title)
}
