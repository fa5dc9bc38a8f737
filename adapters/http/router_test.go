package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/syedmaroof/portfolio-api/internal/application/service"
	authUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/auth"
	backupUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/backup"
	blogUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/blog"
	certificationUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/certification"
	contactUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/contact"
	educationUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/education"
	experienceUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/experience"
	portfolioUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/portfolio"
	profileUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/profile"
	projectUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/project"
	quoteUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/quote"
	"github.com/syedmaroof/portfolio-api/internal/application/usecase/sections"
	skillUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/skill"
	"github.com/syedmaroof/portfolio-api/internal/domain/blog"
	"github.com/syedmaroof/portfolio-api/internal/domain/education"
	"github.com/syedmaroof/portfolio-api/internal/domain/profile"
	"github.com/syedmaroof/portfolio-api/internal/domain/user"
	"github.com/syedmaroof/portfolio-api/internal/mocks"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
	"github.com/syedmaroof/portfolio-api/pkg/auth"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

type RouterTestSuite struct {
	suite.Suite

	router      *gin.Engine
	handlers    Handlers
	middlewares Middlewares
	jwtSvc   *auth.JWTService
	limiter  *mocks.RateLimiter
	denylist *mocks.TokenDenylist

	users       *mocks.UserRepository
	profiles    *mocks.ProfileRepository
	projects    *mocks.ProjectRepository
	skills      *mocks.SkillRepository
	educations  *mocks.EducationRepository
	experiences *mocks.ExperienceRepository
	certs       *mocks.CertificationRepository
	posts       *mocks.BlogRepository
	quotes      *mocks.QuoteRepository
	messages    *mocks.ContactRepository
}

func TestRouter(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	log := logger.NewNopLogger()

	s.jwtSvc = auth.NewJWTService("test-secret", time.Hour)
	s.limiter = &mocks.RateLimiter{}
	s.denylist = &mocks.TokenDenylist{}
	s.users = &mocks.UserRepository{}
	s.profiles = &mocks.ProfileRepository{}
	s.projects = &mocks.ProjectRepository{}
	s.skills = &mocks.SkillRepository{}
	s.educations = &mocks.EducationRepository{}
	s.experiences = &mocks.ExperienceRepository{}
	s.certs = &mocks.CertificationRepository{}
	s.posts = &mocks.BlogRepository{}
	s.quotes = &mocks.QuoteRepository{}
	s.messages = &mocks.ContactRepository{}

	cache := mocks.NewMissingCache()
	publisher := mocks.NewQuietPublisher()
	uploader := &mocks.Uploader{}
	notifier := sections.NewNotifier(cache, publisher, log)

	profileUseCase := profileUC.NewProfileUseCase(s.profiles, cache, notifier, log)
	listProjects := projectUC.NewListProjectsUseCase(s.projects, cache, log)
	skillUseCase := skillUC.NewSkillUseCase(s.skills, cache, notifier, log)
	educationUseCase := educationUC.NewEducationUseCase(s.educations, cache, notifier, log)
	experienceUseCase := experienceUC.NewExperienceUseCase(s.experiences, cache, notifier, log)
	certificationUseCase := certificationUC.NewCertificationUseCase(s.certs, cache, notifier, log)
	listPublicPosts := blogUC.NewListPublicPostsUseCase(s.posts, cache, log)
	quoteUseCase := quoteUC.NewQuoteUseCase(s.quotes, notifier, log)

	handlers := Handlers{
		Auth: NewAuthHandler(
			authUC.NewLoginUseCase(s.users, s.jwtSvc, log),
			authUC.NewLogoutUseCase(s.denylist, log),
			authUC.NewSessionUseCase(s.users),
			log,
		),
		Profile: NewProfileHandler(profileUseCase, log),
		Project: NewProjectHandler(
			projectUC.NewCreateProjectUseCase(s.projects, notifier, log),
			projectUC.NewUpdateProjectUseCase(s.projects, notifier, log),
			projectUC.NewDeleteProjectUseCase(s.projects, uploader, notifier, log),
			projectUC.NewGetProjectUseCase(s.projects),
			listProjects,
			projectUC.NewReorderProjectsUseCase(s.projects, notifier),
			projectUC.NewUploadProjectImageUseCase(s.projects, uploader, notifier, log),
			log,
		),
		Skill:         NewSkillHandler(skillUseCase),
		Education:     NewEducationHandler(educationUseCase),
		Experience:    NewExperienceHandler(experienceUseCase),
		Certification: NewCertificationHandler(certificationUseCase),
		Blog: NewBlogHandler(BlogUseCases{
			Create:      blogUC.NewCreatePostUseCase(s.posts, notifier, log),
			Update:      blogUC.NewUpdatePostUseCase(s.posts, notifier, log),
			Delete:      blogUC.NewDeletePostUseCase(s.posts, uploader, notifier, log),
			Get:         blogUC.NewGetPostUseCase(s.posts),
			GetPublic:   blogUC.NewGetPublicPostUseCase(s.posts),
			List:        blogUC.NewListPostsUseCase(s.posts),
			ListPublic:  listPublicPosts,
			UploadCover: blogUC.NewUploadCoverUseCase(s.posts, uploader, notifier, log),
			RSS:         blogUC.NewRSSUseCase(s.posts, s.profiles, "https://example.dev", log),
		}, log),
		Quote:   NewQuoteHandler(quoteUseCase),
		Contact: NewContactHandler(contactUC.NewContactUseCase(s.messages, publisher, log)),
		Portfolio: NewPortfolioHandler(portfolioUC.NewGetPortfolioUseCase(portfolioUC.Sources{
			Profiles:       profileUseCase,
			Projects:       listProjects,
			Skills:         skillUseCase,
			Education:      educationUseCase,
			Experience:     experienceUseCase,
			Certifications: certificationUseCase,
			Posts:          listPublicPosts,
			Quotes:         quoteUseCase,
		})),
		Backup: NewBackupHandler(backupUC.NewBackupUseCase("", nil, uploader, log)),
	}

	s.handlers = handlers
	s.middlewares = Middlewares{
		Auth:         AuthMiddleware(s.jwtSvc, s.denylist, log),
		Error:        ErrorMiddleware(log),
		RequestLog:   RequestLogger(log),
		LoginLimit:   RateLimitMiddleware(s.limiter, "login", 5, time.Minute),
		ContactLimit: RateLimitMiddleware(s.limiter, "contact", 3, time.Hour),
	}
	s.router = s.newRouter(nil)
}

func (s *RouterTestSuite) newRouter(trustedProxies []string) *gin.Engine {
	router, err := NewRouter(s.handlers, s.middlewares, trustedProxies)
	s.Require().NoError(err)
	return router
}

func (s *RouterTestSuite) loginFrom(router *gin.Engine, remoteAddr, forwardedFor string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/admin/auth/login", bytes.NewBufferString(`{"email":"owner@example.com","password":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func (s *RouterTestSuite) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.T(), json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func (s *RouterTestSuite) ownerToken() (string, uuid.UUID) {
	ownerID := uuid.New()
	token, err := s.jwtSvc.GenerateToken(ownerID)
	require.NoError(s.T(), err)
	s.denylist.On("IsRevoked", mock.Anything, mock.Anything).Return(false, nil).Maybe()
	return token, ownerID
}

func decode[T any](s *RouterTestSuite, rr *httptest.ResponseRecorder) T {
	var v T
	require.NoError(s.T(), json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

func (s *RouterTestSuite) TestHealth() {
	rr := s.do(http.MethodGet, "/api/health", nil, "")
	s.Equal(http.StatusOK, rr.Code)
}

func (s *RouterTestSuite) TestAdminRequiresToken() {
	rr := s.do(http.MethodGet, "/api/admin/skills", nil, "")

	s.Equal(http.StatusUnauthorized, rr.Code)
	body := decode[map[string]string](s, rr)
	s.Equal("unauthorized", body["error"])
	s.skills.AssertNotCalled(s.T(), "List", mock.Anything)
}

func (s *RouterTestSuite) TestLoginThenSession() {
	hash, err := auth.HashPassword("hunter22")
	s.Require().NoError(err)
	owner := &user.User{ID: uuid.New(), Email: "owner@example.com", PasswordHash: hash}

	s.limiter.On("Allow", mock.Anything, mock.Anything, 5, time.Minute).
		Return(&service.RateLimitResult{Allowed: true, Remaining: 4}, nil)
	s.users.On("FindByEmail", mock.Anything, "owner@example.com").Return(owner, nil)
	s.users.On("FindByID", mock.Anything, owner.ID).Return(owner, nil)
	s.denylist.On("IsRevoked", mock.Anything, mock.Anything).Return(false, nil)

	rr := s.do(http.MethodPost, "/api/admin/auth/login",
		gin.H{"email": " Owner@Example.com ", "password": "hunter22"}, "")
	s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())
	s.Equal("4", rr.Header().Get("X-RateLimit-Remaining"))
	token := decode[map[string]any](s, rr)["access_token"].(string)

	rr = s.do(http.MethodGet, "/api/admin/session", nil, token)
	s.Require().Equal(http.StatusOK, rr.Code)
	s.Equal("owner@example.com", decode[map[string]any](s, rr)["email"])
}

func (s *RouterTestSuite) TestLoginWrongPassword() {
	hash, _ := auth.HashPassword("right-password")
	s.limiter.On("Allow", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&service.RateLimitResult{Allowed: true, Remaining: 4}, nil)
	s.users.On("FindByEmail", mock.Anything, "owner@example.com").
		Return(&user.User{ID: uuid.New(), Email: "owner@example.com", PasswordHash: hash}, nil)

	rr := s.do(http.MethodPost, "/api/admin/auth/login",
		gin.H{"email": "owner@example.com", "password": "wrong"}, "")

	s.Equal(http.StatusUnauthorized, rr.Code)
}

func (s *RouterTestSuite) TestLoginRateLimited() {
	s.limiter.On("Allow", mock.Anything, mock.Anything, 5, time.Minute).
		Return(&service.RateLimitResult{Allowed: false, RetryAfter: 1500 * time.Millisecond}, nil)

	rr := s.do(http.MethodPost, "/api/admin/auth/login",
		gin.H{"email": "owner@example.com", "password": "x"}, "")

	s.Equal(http.StatusTooManyRequests, rr.Code)
	s.Equal("2", rr.Header().Get("Retry-After"))
	s.users.AssertNotCalled(s.T(), "FindByEmail", mock.Anything, mock.Anything)
}

func (s *RouterTestSuite) TestLoginRateLimitIgnoresUntrustedForwardedFor() {
	s.limiter.On("Allow", mock.Anything, "login:203.0.113.9", 5, time.Minute).
		Return(&service.RateLimitResult{Allowed: false, RetryAfter: time.Minute}, nil)

	for _, xff := range []string{"1.1.1.1", "2.2.2.2"} {
		rr := s.loginFrom(s.router, "203.0.113.9:4000", xff)
		s.Equal(http.StatusTooManyRequests, rr.Code)
	}
	s.limiter.AssertNumberOfCalls(s.T(), "Allow", 2)
}

func (s *RouterTestSuite) TestLoginRateLimitUsesForwardedForFromTrustedProxy() {
	router := s.newRouter([]string{"10.0.0.0/8"})
	s.limiter.On("Allow", mock.Anything, "login:198.51.100.7", 5, time.Minute).
		Return(&service.RateLimitResult{Allowed: false, RetryAfter: time.Minute}, nil)

	rr := s.loginFrom(router, "10.1.2.3:4000", "198.51.100.7")

	s.Equal(http.StatusTooManyRequests, rr.Code)
	s.limiter.AssertExpectations(s.T())
}

func (s *RouterTestSuite) TestRevokedTokenRejected() {
	token, _ := s.jwtSvc.GenerateToken(uuid.New())
	s.denylist.On("IsRevoked", mock.Anything, mock.Anything).Return(true, nil)

	rr := s.do(http.MethodGet, "/api/admin/session", nil, token)

	s.Equal(http.StatusUnauthorized, rr.Code)
}

func (s *RouterTestSuite) TestDenylistUnavailableRejectsToken() {
	token, _ := s.jwtSvc.GenerateToken(uuid.New())
	s.denylist.On("IsRevoked", mock.Anything, mock.Anything).Return(false, errors.New("redis down"))

	rr := s.do(http.MethodGet, "/api/admin/session", nil, token)

	s.Equal(http.StatusServiceUnavailable, rr.Code)
	s.users.AssertNotCalled(s.T(), "FindByID", mock.Anything, mock.Anything)
}

func (s *RouterTestSuite) TestLogoutRevokesToken() {
	token, _ := s.ownerToken()
	s.denylist.On("Revoke", mock.Anything, mock.Anything, mock.MatchedBy(func(ttl time.Duration) bool {
		return ttl > 0 && ttl <= time.Hour
	})).Return(nil).Once()

	rr := s.do(http.MethodPost, "/api/admin/auth/logout", nil, token)

	s.Equal(http.StatusNoContent, rr.Code)
	s.denylist.AssertExpectations(s.T())
}

func (s *RouterTestSuite) TestCreateSkillValidationMessage() {
	token, _ := s.ownerToken()

	rr := s.do(http.MethodPost, "/api/admin/skills",
		gin.H{"name": "Go", "category": "Backend", "proficiency": 140}, token)

	s.Equal(http.StatusBadRequest, rr.Code)
	body := decode[map[string]string](s, rr)
	s.Equal("proficiency must be between 0 and 100", body["message"])
	s.skills.AssertNotCalled(s.T(), "Save", mock.Anything, mock.Anything)
}

func (s *RouterTestSuite) TestGetProjectNotFound() {
	id := uuid.New()
	s.projects.On("FindByID", mock.Anything, id).Return(nil, apperror.NewNotFound("project", id.String()))

	rr := s.do(http.MethodGet, "/api/projects/"+id.String(), nil, "")

	s.Equal(http.StatusNotFound, rr.Code)
	s.Equal("project not found", decode[map[string]string](s, rr)["message"])
}

func (s *RouterTestSuite) TestInvalidIDIsBadRequest() {
	token, _ := s.ownerToken()

	rr := s.do(http.MethodDelete, "/api/admin/education/not-a-uuid", nil, token)

	s.Equal(http.StatusBadRequest, rr.Code)
}

func (s *RouterTestSuite) TestPublicEducationUsesDateOnlyFormat() {
	start := time.Date(2018, 9, 1, 0, 0, 0, 0, time.UTC)
	s.educations.On("List", mock.Anything).Return([]*education.Education{
		{ID: uuid.New(), Institution: "MIT", Degree: "BSc", StartDate: &start, IsCurrent: true},
	}, nil)

	rr := s.do(http.MethodGet, "/api/education", nil, "")

	s.Require().Equal(http.StatusOK, rr.Code)
	body := decode[[]map[string]any](s, rr)
	s.Require().Len(body, 1)
	s.Equal("2018-09-01", body[0]["start_date"])
	s.Nil(body[0]["end_date"])
}

func (s *RouterTestSuite) TestCreateEducationRejectsBadDate() {
	token, _ := s.ownerToken()

	rr := s.do(http.MethodPost, "/api/admin/education",
		gin.H{"institution": "MIT", "degree": "BSc", "start_date": "09/2018"}, token)

	s.Equal(http.StatusBadRequest, rr.Code)
	s.Equal("start_date must be a YYYY-MM-DD date", decode[map[string]string](s, rr)["message"])
}

func (s *RouterTestSuite) TestContactRateLimited() {
	s.limiter.On("Allow", mock.Anything, mock.MatchedBy(func(key string) bool {
		return len(key) > len("contact:") && key[:len("contact:")] == "contact:"
	}), 3, time.Hour).Return(&service.RateLimitResult{Allowed: false, RetryAfter: 30 * time.Minute}, nil)

	rr := s.do(http.MethodPost, "/api/contact",
		gin.H{"name": "Ann", "email": "ann@example.com", "message": "hi"}, "")

	s.Equal(http.StatusTooManyRequests, rr.Code)
	s.Equal("1800", rr.Header().Get("Retry-After"))
	s.messages.AssertNotCalled(s.T(), "Save", mock.Anything, mock.Anything)
}

func (s *RouterTestSuite) TestContactSubmit() {
	s.limiter.On("Allow", mock.Anything, mock.Anything, 3, time.Hour).
		Return(&service.RateLimitResult{Allowed: true, Remaining: 2}, nil)
	s.messages.On("Save", mock.Anything, mock.Anything).Return(nil)

	rr := s.do(http.MethodPost, "/api/contact",
		gin.H{"name": "Ann", "email": "ann@example.com", "message": "hi"}, "")

	s.Equal(http.StatusCreated, rr.Code)
	s.Equal("received", decode[map[string]any](s, rr)["status"])
}

func (s *RouterTestSuite) TestRSSFeed() {
	published := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	excerpt := "First words"
	s.profiles.On("Get", mock.Anything).Return(&profile.Profile{FullName: "Syed Maroof", Title: "Engineer"}, nil)
	s.posts.On("ListPublished", mock.Anything, mock.Anything).Return([]*blog.Post{
		{ID: uuid.New(), Title: "Hello", Slug: "hello", Excerpt: &excerpt, IsPublished: true, PublishedAt: &published},
	}, nil)

	rr := s.do(http.MethodGet, "/api/blog/rss.xml", nil, "")

	s.Require().Equal(http.StatusOK, rr.Code)
	s.Contains(rr.Header().Get("Content-Type"), "application/xml")
	s.Contains(rr.Body.String(), "https://example.dev/blog/hello")
}

func TestParseDate(t *testing.T) {
	empty := ""
	got, err := parseDate("dob", &empty)
	assert.NoError(t, err)
	assert.Nil(t, got)

	valid := "1999-12-31"
	got, err = parseDate("dob", &valid)
	require.NoError(t, err)
	assert.Equal(t, "1999-12-31", *formatDate(got))

	bad := "31-12-1999"
	_, err = parseDate("dob", &bad)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}
