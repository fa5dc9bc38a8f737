package portfolio

import (
	"context"
	"slices"

	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"

	blogUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/blog"
	certificationUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/certification"
	educationUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/education"
	experienceUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/experience"
	profileUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/profile"
	projectUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/project"
	quoteUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/quote"
	skillUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/skill"
	"github.com/syedmaroof/portfolio-api/internal/domain/blog"
	"github.com/syedmaroof/portfolio-api/internal/domain/certification"
	"github.com/syedmaroof/portfolio-api/internal/domain/education"
	"github.com/syedmaroof/portfolio-api/internal/domain/experience"
	"github.com/syedmaroof/portfolio-api/internal/domain/profile"
	"github.com/syedmaroof/portfolio-api/internal/domain/project"
	"github.com/syedmaroof/portfolio-api/internal/domain/quote"
	"github.com/syedmaroof/portfolio-api/internal/domain/skill"
)

var tracer = otel.Tracer("portfolio_usecase")

// Portfolio is everything the landing page renders, in one response.
type Portfolio struct {
	Profile        *profile.Profile               `json:"profile"`
	Quote          *quote.Quote                   `json:"quote"`
	Projects       []*project.Project             `json:"projects"`
	Skills         []skill.Group                  `json:"skills"`
	Education      []*education.Education         `json:"education"`
	Experience     []*experience.Experience       `json:"experience"`
	Certifications []*certification.Certification `json:"certifications"`
	Posts          []*blog.Post                   `json:"posts"`
}

type GetPortfolioUseCase struct {
	profiles       *profileUC.ProfileUseCase
	projects       *projectUC.ListProjectsUseCase
	skills         *skillUC.SkillUseCase
	education      *educationUC.EducationUseCase
	experience     *experienceUC.ExperienceUseCase
	certifications *certificationUC.CertificationUseCase
	posts          *blogUC.ListPublicPostsUseCase
	quotes         *quoteUC.QuoteUseCase
}

type Sources struct {
	Profiles       *profileUC.ProfileUseCase
	Projects       *projectUC.ListProjectsUseCase
	Skills         *skillUC.SkillUseCase
	Education      *educationUC.EducationUseCase
	Experience     *experienceUC.ExperienceUseCase
	Certifications *certificationUC.CertificationUseCase
	Posts          *blogUC.ListPublicPostsUseCase
	Quotes         *quoteUC.QuoteUseCase
}

func NewGetPortfolioUseCase(src Sources) *GetPortfolioUseCase {
	return &GetPortfolioUseCase{
		profiles:       src.Profiles,
		projects:       src.Projects,
		skills:         src.Skills,
		education:      src.Education,
		experience:     src.Experience,
		certifications: src.Certifications,
		posts:          src.Posts,
		quotes:         src.Quotes,
	}
}

// Execute reads every section concurrently; each one is served from the
// section cache when warm. The first failing section fails the page.
func (uc *GetPortfolioUseCase) Execute(ctx context.Context) (*Portfolio, error) {
	ctx, span := tracer.Start(ctx, "GetPortfolio")
	defer span.End()

	out := &Portfolio{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		res, err := uc.profiles.ExecuteGetProfile(ctx, profileUC.GetProfileInput{Public: true})
		if err != nil {
			return err
		}
		out.Profile = res.Profile
		return nil
	})
	g.Go(func() (err error) {
		out.Quote, err = uc.quotes.RandomQuote(ctx)
		return err
	})
	g.Go(func() error {
		projects, err := uc.projects.Execute(ctx, projectUC.ListProjectsInput{Public: true})
		if err != nil {
			return err
		}
		out.Projects = FeaturedFirst(projects)
		return nil
	})
	g.Go(func() (err error) {
		out.Skills, err = uc.skills.ListGroupedSkills(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.Education, err = uc.education.ListPublicEducation(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.Experience, err = uc.experience.ListPublicExperience(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.Certifications, err = uc.certifications.ListPublicCertifications(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.Posts, err = uc.posts.Execute(ctx, blog.DefaultLatestLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return out, nil
}

// FeaturedFirst moves featured projects to the front and keeps display order
// within each group.
func FeaturedFirst(projects []*project.Project) []*project.Project {
	sorted := slices.Clone(projects)
	slices.SortStableFunc(sorted, func(a, b *project.Project) int {
		switch {
		case a.IsFeatured == b.IsFeatured:
			return 0
		case a.IsFeatured:
			return -1
		default:
			return 1
		}
	})
	return sorted
}
