package http

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/syedmaroof/portfolio-api/internal/application/usecase/portfolio"
	"github.com/syedmaroof/portfolio-api/internal/domain/blog"
	"github.com/syedmaroof/portfolio-api/internal/domain/certification"
	"github.com/syedmaroof/portfolio-api/internal/domain/contact"
	"github.com/syedmaroof/portfolio-api/internal/domain/education"
	"github.com/syedmaroof/portfolio-api/internal/domain/experience"
	"github.com/syedmaroof/portfolio-api/internal/domain/profile"
	"github.com/syedmaroof/portfolio-api/internal/domain/project"
	"github.com/syedmaroof/portfolio-api/internal/domain/quote"
	"github.com/syedmaroof/portfolio-api/internal/domain/skill"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
)

const dateLayout = "2006-01-02"

func parseDate(field string, s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, apperror.NewInvalidInput("invalid "+field, fmt.Errorf("%s must be a YYYY-MM-DD date", field))
	}
	return &t, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

type ReorderRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required"`
}

// Profile DTOs

type ProfileDTO struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Title     string    `json:"title"`
	Bio       *string   `json:"bio"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Location  *string   `json:"location"`
	Github    *string   `json:"github"`
	Instagram *string   `json:"instagram"`
	Linkedin  *string   `json:"linkedin"`
	DOB       *string   `json:"dob"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateProfileRequest struct {
	FullName  string  `json:"full_name" binding:"required"`
	Title     string  `json:"title" binding:"required"`
	Bio       *string `json:"bio"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Location  *string `json:"location"`
	Github    *string `json:"github"`
	Instagram *string `json:"instagram"`
	Linkedin  *string `json:"linkedin"`
	DOB       *string `json:"dob"`
}

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	return ProfileDTO{
		ID:        p.ID,
		FullName:  p.FullName,
		Title:     p.Title,
		Bio:       p.Bio,
		Email:     p.Email,
		Phone:     p.Phone,
		Location:  p.Location,
		Github:    p.Github,
		Instagram: p.Instagram,
		Linkedin:  p.Linkedin,
		DOB:       formatDate(p.DOB),
		UpdatedAt: p.UpdatedAt,
	}
}

// Project DTOs

type ProjectDTO struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	TechStack    []string  `json:"tech_stack"`
	PreviewURL   *string   `json:"preview_url"`
	GithubURL    *string   `json:"github_url"`
	ImageURL     *string   `json:"image_url"`
	IsFeatured   bool      `json:"is_featured"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ProjectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description *string  `json:"description"`
	TechStack   []string `json:"tech_stack"`
	PreviewURL  *string  `json:"preview_url"`
	GithubURL   *string  `json:"github_url"`
	IsFeatured  bool     `json:"is_featured"`
}

func ToProjectDTO(p *project.Project) ProjectDTO {
	stack := p.TechStack
	if stack == nil {
		stack = []string{}
	}
	return ProjectDTO{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		TechStack:    stack,
		PreviewURL:   p.PreviewURL,
		GithubURL:    p.GithubURL,
		ImageURL:     p.ImageURL,
		IsFeatured:   p.IsFeatured,
		DisplayOrder: p.DisplayOrder,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func ToProjectDTOs(ps []*project.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(ps))
	for i, p := range ps {
		dtos[i] = ToProjectDTO(p)
	}
	return dtos
}

// Skill DTOs

type SkillDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Proficiency  *int      `json:"proficiency"`
	Icon         *string   `json:"icon"`
	DisplayOrder int       `json:"display_order"`
}

type SkillGroupDTO struct {
	Category string     `json:"category"`
	Skills   []SkillDTO `json:"skills"`
}

type SkillRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Proficiency *int    `json:"proficiency"`
	Icon        *string `json:"icon"`
}

func ToSkillDTO(s *skill.Skill) SkillDTO {
	return SkillDTO{
		ID:           s.ID,
		Name:         s.Name,
		Category:     s.Category,
		Proficiency:  s.Proficiency,
		Icon:         s.Icon,
		DisplayOrder: s.DisplayOrder,
	}
}

func ToSkillDTOs(ss []*skill.Skill) []SkillDTO {
	dtos := make([]SkillDTO, len(ss))
	for i, s := range ss {
		dtos[i] = ToSkillDTO(s)
	}
	return dtos
}

func ToSkillGroupDTOs(groups []skill.Group) []SkillGroupDTO {
	dtos := make([]SkillGroupDTO, len(groups))
	for i, g := range groups {
		dtos[i] = SkillGroupDTO{Category: g.Category, Skills: ToSkillDTOs(g.Skills)}
	}
	return dtos
}

// Education DTOs

type EducationDTO struct {
	ID           uuid.UUID `json:"id"`
	Institution  string    `json:"institution"`
	Degree       string    `json:"degree"`
	Field        *string   `json:"field"`
	Location     *string   `json:"location"`
	StartDate    *string   `json:"start_date"`
	EndDate      *string   `json:"end_date"`
	IsCurrent    bool      `json:"is_current"`
	Description  *string   `json:"description"`
	DisplayOrder int       `json:"display_order"`
}

type EducationRequest struct {
	Institution string  `json:"institution" binding:"required"`
	Degree      string  `json:"degree" binding:"required"`
	Field       *string `json:"field"`
	Location    *string `json:"location"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	IsCurrent   bool    `json:"is_current"`
	Description *string `json:"description"`
}

func ToEducationDTO(e *education.Education) EducationDTO {
	return EducationDTO{
		ID:           e.ID,
		Institution:  e.Institution,
		Degree:       e.Degree,
		Field:        e.Field,
		Location:     e.Location,
		StartDate:    formatDate(e.StartDate),
		EndDate:      formatDate(e.EndDate),
		IsCurrent:    e.IsCurrent,
		Description:  e.Description,
		DisplayOrder: e.DisplayOrder,
	}
}

func ToEducationDTOs(es []*education.Education) []EducationDTO {
	dtos := make([]EducationDTO, len(es))
	for i, e := range es {
		dtos[i] = ToEducationDTO(e)
	}
	return dtos
}

// Experience DTOs

type ExperienceDTO struct {
	ID           uuid.UUID `json:"id"`
	Company      string    `json:"company"`
	Position     string    `json:"position"`
	Location     *string   `json:"location"`
	StartDate    *string   `json:"start_date"`
	EndDate      *string   `json:"end_date"`
	IsCurrent    bool      `json:"is_current"`
	Description  *string   `json:"description"`
	DisplayOrder int       `json:"display_order"`
}

type ExperienceRequest struct {
	Company     string  `json:"company" binding:"required"`
	Position    string  `json:"position" binding:"required"`
	Location    *string `json:"location"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	IsCurrent   bool    `json:"is_current"`
	Description *string `json:"description"`
}

func ToExperienceDTO(e *experience.Experience) ExperienceDTO {
	return ExperienceDTO{
		ID:           e.ID,
		Company:      e.Company,
		Position:     e.Position,
		Location:     e.Location,
		StartDate:    formatDate(e.StartDate),
		EndDate:      formatDate(e.EndDate),
		IsCurrent:    e.IsCurrent,
		Description:  e.Description,
		DisplayOrder: e.DisplayOrder,
	}
}

func ToExperienceDTOs(es []*experience.Experience) []ExperienceDTO {
	dtos := make([]ExperienceDTO, len(es))
	for i, e := range es {
		dtos[i] = ToExperienceDTO(e)
	}
	return dtos
}

// Certification DTOs

type CertificationDTO struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Issuer        string    `json:"issuer"`
	IssueDate     *string   `json:"issue_date"`
	ExpiryDate    *string   `json:"expiry_date"`
	CredentialID  *string   `json:"credential_id"`
	CredentialURL *string   `json:"credential_url"`
	DisplayOrder  int       `json:"display_order"`
}

type CertificationRequest struct {
	Title         string  `json:"title" binding:"required"`
	Issuer        string  `json:"issuer" binding:"required"`
	IssueDate     *string `json:"issue_date"`
	ExpiryDate    *string `json:"expiry_date"`
	CredentialID  *string `json:"credential_id"`
	CredentialURL *string `json:"credential_url"`
}

func ToCertificationDTO(c *certification.Certification) CertificationDTO {
	return CertificationDTO{
		ID:            c.ID,
		Title:         c.Title,
		Issuer:        c.Issuer,
		IssueDate:     formatDate(c.IssueDate),
		ExpiryDate:    formatDate(c.ExpiryDate),
		CredentialID:  c.CredentialID,
		CredentialURL: c.CredentialURL,
		DisplayOrder:  c.DisplayOrder,
	}
}

func ToCertificationDTOs(cs []*certification.Certification) []CertificationDTO {
	dtos := make([]CertificationDTO, len(cs))
	for i, c := range cs {
		dtos[i] = ToCertificationDTO(c)
	}
	return dtos
}

// Blog DTOs

type PostRequest struct {
	Title       string     `json:"title" binding:"required"`
	Slug        string     `json:"slug"`
	Excerpt     *string    `json:"excerpt"`
	Content     *string    `json:"content"`
	IsPublished bool       `json:"is_published"`
	PublishedAt *time.Time `json:"published_at"`
}

type PostSummaryDTO struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     *string    `json:"excerpt"`
	CoverImage  *string    `json:"cover_image"`
	IsPublished bool       `json:"is_published"`
	PublishedAt *time.Time `json:"published_at"`
}

type PostDTO struct {
	PostSummaryDTO
	Content   *string   `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToPostSummaryDTO(p *blog.Post) PostSummaryDTO {
	return PostSummaryDTO{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		CoverImage:  p.CoverImage,
		IsPublished: p.IsPublished,
		PublishedAt: p.PublishedAt,
	}
}

func ToPostSummaryDTOs(ps []*blog.Post) []PostSummaryDTO {
	dtos := make([]PostSummaryDTO, len(ps))
	for i, p := range ps {
		dtos[i] = ToPostSummaryDTO(p)
	}
	return dtos
}

func ToPostDTO(p *blog.Post) PostDTO {
	return PostDTO{
		PostSummaryDTO: ToPostSummaryDTO(p),
		Content:        p.Content,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// Quote DTOs

type QuoteDTO struct {
	ID            uuid.UUID `json:"id"`
	Quote         string    `json:"quote"`
	CharacterName *string   `json:"character_name"`
}

type QuoteRequest struct {
	Quote         string  `json:"quote" binding:"required"`
	CharacterName *string `json:"character_name"`
}

func ToQuoteDTO(q *quote.Quote) QuoteDTO {
	return QuoteDTO{ID: q.ID, Quote: q.Text, CharacterName: q.CharacterName}
}

// Contact DTOs

type ContactRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required"`
	Subject *string `json:"subject"`
	Message string  `json:"message" binding:"required"`
}

type MessageDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   *string   `json:"subject"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func ToMessageDTO(m *contact.Message) MessageDTO {
	return MessageDTO{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Body,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

// Portfolio DTO

type PortfolioDTO struct {
	Profile        ProfileDTO         `json:"profile"`
	Quote          QuoteDTO           `json:"quote"`
	Projects       []ProjectDTO       `json:"projects"`
	Skills         []SkillGroupDTO    `json:"skills"`
	Education      []EducationDTO     `json:"education"`
	Experience     []ExperienceDTO    `json:"experience"`
	Certifications []CertificationDTO `json:"certifications"`
	Posts          []PostSummaryDTO   `json:"posts"`
}

func ToPortfolioDTO(p *portfolio.Portfolio) PortfolioDTO {
	return PortfolioDTO{
		Profile:        ToProfileDTO(p.Profile),
		Quote:          ToQuoteDTO(p.Quote),
		Projects:       ToProjectDTOs(p.Projects),
		Skills:         ToSkillGroupDTOs(p.Skills),
		Education:      ToEducationDTOs(p.Education),
		Experience:     ToExperienceDTOs(p.Experience),
		Certifications: ToCertificationDTOs(p.Certifications),
		Posts:          ToPostSummaryDTOs(p.Posts),
	}
}
