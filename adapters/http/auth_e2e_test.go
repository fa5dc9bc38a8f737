package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/syedmaroof/portfolio-api/adapters/persistence"
	authUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/auth"
	"github.com/syedmaroof/portfolio-api/internal/config"
	"github.com/syedmaroof/portfolio-api/internal/domain/user"
	"github.com/syedmaroof/portfolio-api/pkg/auth"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

type AuthE2ETestSuite struct {
	suite.Suite
	Router   *gin.Engine
	dbPool   *pgxpool.Pool
	testUser user.User
	testPass string
}

func (s *AuthE2ETestSuite) SetupSuite() {
	cfg, err := config.LoadConfig("../..")
	if err != nil {
		s.T().Fatalf("Failed to load config for E2E test: %v", err)
	}

	appLogger := logger.NewZapLogger("development")

	s.dbPool, err = persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		s.T().Fatalf("E2E test failed to connect postgres: %v", err)
	}
	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		s.T().Fatalf("E2E test failed to connect redis: %v", err)
	}

	s.testPass = "e2e_test_password_123"
	hash, _ := auth.HashPassword(s.testPass)
	s.testUser = user.User{
		ID:           uuid.New(),
		Email:        "e2e_test@example.com",
		PasswordHash: hash,
	}
	query := `INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET password_hash = $3 RETURNING id`
	err = s.dbPool.QueryRow(context.Background(), query, s.testUser.ID, s.testUser.Email, s.testUser.PasswordHash).Scan(&s.testUser.ID)
	if err != nil {
		s.T().Fatalf("E2E test failed to seed user: %v", err)
	}

	userRepo := persistence.NewPostgresUserRepo(s.dbPool)
	denylist := persistence.NewRedisTokenDenylist(redisClient)
	limiter := persistence.NewRedisRateLimiter(redisClient, appLogger)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)

	authHandler := NewAuthHandler(
		authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger),
		authUC.NewLogoutUseCase(denylist, appLogger),
		authUC.NewSessionUseCase(userRepo),
		appLogger,
	)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorMiddleware(appLogger))

	admin := router.Group("/api/admin")
	admin.POST("/auth/login", RateLimitMiddleware(limiter, "e2e-login", 100, time.Minute), authHandler.Login)
	adminPrivate := admin.Group("/")
	adminPrivate.Use(AuthMiddleware(jwtSvc, denylist, appLogger))
	{
		adminPrivate.GET("/session", authHandler.Session)
		adminPrivate.POST("/auth/logout", authHandler.Logout)
	}

	s.Router = router
}

func (s *AuthE2ETestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
}

func TestAuthE2E(t *testing.T) {
	if os.Getenv("E2E_TESTS") == "" {
		t.Skip("Skipping E2E tests. Set E2E_TESTS=1 to run.")
	}
	suite.Run(t, new(AuthE2ETestSuite))
}

func (s *AuthE2ETestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	return rr
}

func (s *AuthE2ETestSuite) Test_Login_Session_Logout_Flow() {
	bodyBad, _ := json.Marshal(gin.H{"email": s.testUser.Email, "password": "wrongpassword"})
	reqBad := httptest.NewRequest(http.MethodPost, "/api/admin/auth/login", bytes.NewBuffer(bodyBad))
	reqBad.Header.Set("Content-Type", "application/json")
	assert.Equal(s.T(), http.StatusUnauthorized, s.serve(reqBad).Code)

	bodyGood, _ := json.Marshal(gin.H{"email": s.testUser.Email, "password": s.testPass})
	reqGood := httptest.NewRequest(http.MethodPost, "/api/admin/auth/login", bytes.NewBuffer(bodyGood))
	reqGood.Header.Set("Content-Type", "application/json")
	rrGood := s.serve(reqGood)
	assert.Equal(s.T(), http.StatusOK, rrGood.Code)

	var loginResponse map[string]any
	_ = json.Unmarshal(rrGood.Body.Bytes(), &loginResponse)
	accessToken, _ := loginResponse["access_token"].(string)
	s.Require().NotEmpty(accessToken)

	reqSession := httptest.NewRequest(http.MethodGet, "/api/admin/session", nil)
	reqSession.Header.Set("Authorization", "Bearer "+accessToken)
	assert.Equal(s.T(), http.StatusOK, s.serve(reqSession).Code)

	reqLogout := httptest.NewRequest(http.MethodPost, "/api/admin/auth/logout", nil)
	reqLogout.Header.Set("Authorization", "Bearer "+accessToken)
	assert.Equal(s.T(), http.StatusNoContent, s.serve(reqLogout).Code)

	reqAfter := httptest.NewRequest(http.MethodGet, "/api/admin/session", nil)
	reqAfter.Header.Set("Authorization", "Bearer "+accessToken)
	assert.Equal(s.T(), http.StatusUnauthorized, s.serve(reqAfter).Code)

	reqNoAuth := httptest.NewRequest(http.MethodGet, "/api/admin/session", nil)
	assert.Equal(s.T(), http.StatusUnauthorized, s.serve(reqNoAuth).Code)
}
