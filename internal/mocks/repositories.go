package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/syedmaroof/portfolio-api/internal/domain/blog"
	"github.com/syedmaroof/portfolio-api/internal/domain/certification"
	"github.com/syedmaroof/portfolio-api/internal/domain/contact"
	"github.com/syedmaroof/portfolio-api/internal/domain/education"
	"github.com/syedmaroof/portfolio-api/internal/domain/experience"
	"github.com/syedmaroof/portfolio-api/internal/domain/profile"
	"github.com/syedmaroof/portfolio-api/internal/domain/project"
	"github.com/syedmaroof/portfolio-api/internal/domain/quote"
	"github.com/syedmaroof/portfolio-api/internal/domain/skill"
	"github.com/syedmaroof/portfolio-api/internal/domain/user"
)

type ProjectRepository struct{ mock.Mock }

func (m *ProjectRepository) Save(ctx context.Context, v *project.Project) error {
	return m.Called(ctx, v).Error(0)
}

func (m *ProjectRepository) Update(ctx context.Context, v *project.Project) error {
	return m.Called(ctx, v).Error(0)
}

func (m *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*project.Project)
	return v, args.Error(1)
}

func (m *ProjectRepository) List(ctx context.Context, filter project.ListFilter) ([]*project.Project, error) {
	args := m.Called(ctx, filter)
	v, _ := args.Get(0).([]*project.Project)
	return v, args.Error(1)
}

func (m *ProjectRepository) NextDisplayOrder(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *ProjectRepository) Reorder(ctx context.Context, ids []uuid.UUID) error {
	return m.Called(ctx, ids).Error(0)
}

func (m *ProjectRepository) UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	return m.Called(ctx, id, imageURL).Error(0)
}

type SkillRepository struct{ mock.Mock }

func (m *SkillRepository) Save(ctx context.Context, v *skill.Skill) error {
	return m.Called(ctx, v).Error(0)
}

func (m *SkillRepository) Update(ctx context.Context, v *skill.Skill) error {
	return m.Called(ctx, v).Error(0)
}

func (m *SkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *SkillRepository) FindByID(ctx context.Context, id uuid.UUID) (*skill.Skill, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*skill.Skill)
	return v, args.Error(1)
}

func (m *SkillRepository) List(ctx context.Context) ([]*skill.Skill, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]*skill.Skill)
	return v, args.Error(1)
}

func (m *SkillRepository) NextDisplayOrder(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *SkillRepository) Reorder(ctx context.Context, ids []uuid.UUID) error {
	return m.Called(ctx, ids).Error(0)
}

type EducationRepository struct{ mock.Mock }

func (m *EducationRepository) Save(ctx context.Context, v *education.Education) error {
	return m.Called(ctx, v).Error(0)
}

func (m *EducationRepository) Update(ctx context.Context, v *education.Education) error {
	return m.Called(ctx, v).Error(0)
}

func (m *EducationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *EducationRepository) FindByID(ctx context.Context, id uuid.UUID) (*education.Education, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*education.Education)
	return v, args.Error(1)
}

func (m *EducationRepository) List(ctx context.Context) ([]*education.Education, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]*education.Education)
	return v, args.Error(1)
}

func (m *EducationRepository) NextDisplayOrder(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *EducationRepository) Reorder(ctx context.Context, ids []uuid.UUID) error {
	return m.Called(ctx, ids).Error(0)
}

type ExperienceRepository struct{ mock.Mock }

func (m *ExperienceRepository) Save(ctx context.Context, v *experience.Experience) error {
	return m.Called(ctx, v).Error(0)
}

func (m *ExperienceRepository) Update(ctx context.Context, v *experience.Experience) error {
	return m.Called(ctx, v).Error(0)
}

func (m *ExperienceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ExperienceRepository) FindByID(ctx context.Context, id uuid.UUID) (*experience.Experience, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*experience.Experience)
	return v, args.Error(1)
}

func (m *ExperienceRepository) List(ctx context.Context) ([]*experience.Experience, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]*experience.Experience)
	return v, args.Error(1)
}

func (m *ExperienceRepository) NextDisplayOrder(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *ExperienceRepository) Reorder(ctx context.Context, ids []uuid.UUID) error {
	return m.Called(ctx, ids).Error(0)
}

type CertificationRepository struct{ mock.Mock }

func (m *CertificationRepository) Save(ctx context.Context, v *certification.Certification) error {
	return m.Called(ctx, v).Error(0)
}

func (m *CertificationRepository) Update(ctx context.Context, v *certification.Certification) error {
	return m.Called(ctx, v).Error(0)
}

func (m *CertificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *CertificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*certification.Certification, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*certification.Certification)
	return v, args.Error(1)
}

func (m *CertificationRepository) List(ctx context.Context) ([]*certification.Certification, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]*certification.Certification)
	return v, args.Error(1)
}

func (m *CertificationRepository) NextDisplayOrder(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *CertificationRepository) Reorder(ctx context.Context, ids []uuid.UUID) error {
	return m.Called(ctx, ids).Error(0)
}

type BlogRepository struct{ mock.Mock }

func (m *BlogRepository) Save(ctx context.Context, v *blog.Post) error {
	return m.Called(ctx, v).Error(0)
}

func (m *BlogRepository) Update(ctx context.Context, v *blog.Post) error {
	return m.Called(ctx, v).Error(0)
}

func (m *BlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *BlogRepository) FindByID(ctx context.Context, id uuid.UUID) (*blog.Post, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*blog.Post)
	return v, args.Error(1)
}

func (m *BlogRepository) List(ctx context.Context, limit, offset int) ([]*blog.Post, error) {
	args := m.Called(ctx, limit, offset)
	v, _ := args.Get(0).([]*blog.Post)
	return v, args.Error(1)
}

func (m *BlogRepository) UpdateCover(ctx context.Context, id uuid.UUID, coverURL string) error {
	return m.Called(ctx, id, coverURL).Error(0)
}

func (m *BlogRepository) FindPublishedBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	args := m.Called(ctx, slug)
	v, _ := args.Get(0).(*blog.Post)
	return v, args.Error(1)
}

func (m *BlogRepository) ListPublished(ctx context.Context, limit int) ([]*blog.Post, error) {
	args := m.Called(ctx, limit)
	v, _ := args.Get(0).([]*blog.Post)
	return v, args.Error(1)
}

type QuoteRepository struct{ mock.Mock }

func (m *QuoteRepository) Save(ctx context.Context, v *quote.Quote) error {
	return m.Called(ctx, v).Error(0)
}

func (m *QuoteRepository) Update(ctx context.Context, v *quote.Quote) error {
	return m.Called(ctx, v).Error(0)
}

func (m *QuoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *QuoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*quote.Quote, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*quote.Quote)
	return v, args.Error(1)
}

func (m *QuoteRepository) List(ctx context.Context) ([]*quote.Quote, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]*quote.Quote)
	return v, args.Error(1)
}

func (m *QuoteRepository) Random(ctx context.Context) (*quote.Quote, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).(*quote.Quote)
	return v, args.Error(1)
}

type ContactRepository struct{ mock.Mock }

func (m *ContactRepository) Save(ctx context.Context, msg *contact.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *ContactRepository) FindByID(ctx context.Context, id uuid.UUID) (*contact.Message, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*contact.Message)
	return v, args.Error(1)
}

func (m *ContactRepository) List(ctx context.Context, filter contact.ListFilter) ([]*contact.Message, error) {
	args := m.Called(ctx, filter)
	v, _ := args.Get(0).([]*contact.Message)
	return v, args.Error(1)
}

func (m *ContactRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type ProfileRepository struct{ mock.Mock }

func (m *ProfileRepository) Get(ctx context.Context) (*profile.Profile, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).(*profile.Profile)
	return v, args.Error(1)
}

func (m *ProfileRepository) Upsert(ctx context.Context, p *profile.Profile) error {
	return m.Called(ctx, p).Error(0)
}

type UserRepository struct{ mock.Mock }

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	v, _ := args.Get(0).(*user.User)
	return v, args.Error(1)
}

func (m *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*user.User)
	return v, args.Error(1)
}
