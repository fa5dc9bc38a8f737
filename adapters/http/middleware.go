package http

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/syedmaroof/portfolio-api/internal/application/service"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
	"github.com/syedmaroof/portfolio-api/pkg/auth"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

const (
	GinContextKeyOwnerID = "ownerID"
	GinContextKeyClaims  = "claims"
)

func AuthMiddleware(jwtSvc *auth.JWTService, denylist service.TokenDenylist, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Error(apperror.NewUnauthorized("authorization header is required", nil))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.Error(apperror.NewUnauthorized("invalid token format", nil))
			c.Abort()
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			c.Error(apperror.NewUnauthorized("invalid or expired token", err))
			c.Abort()
			return
		}

		revoked, err := denylist.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			log.Warn("Token denylist lookup failed", zap.Error(err))
			c.Error(apperror.NewUnavailable("token revocation check failed", err))
			c.Abort()
			return
		}
		if revoked {
			c.Error(apperror.NewUnauthorized("token has been revoked", nil))
			c.Abort()
			return
		}

		c.Set(GinContextKeyOwnerID, claims.OwnerID)
		c.Set(GinContextKeyClaims, claims)

		c.Next()
	}
}

func GetOwnerIDFromGinContext(c *gin.Context) (uuid.UUID, bool) {
	ownerID, ok := c.Get(GinContextKeyOwnerID)
	if !ok {
		return uuid.Nil, false
	}
	ownerIDUUID, ok := ownerID.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return ownerIDUUID, true
}

func GetClaimsFromGinContext(c *gin.Context) (*auth.CustomClaims, bool) {
	v, ok := c.Get(GinContextKeyClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.CustomClaims)
	return claims, ok
}

// ErrorMiddleware renders the last error a handler pushed with c.Error as
// {"error", "message"}.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		status := apperror.ToHTTPStatus(err)

		l := log.With(zap.String("method", c.Request.Method), zap.String("path", c.FullPath()), zap.Int("status", status))
		if status >= http.StatusInternalServerError {
			l.Error("Request failed", err)
		} else {
			l.Warn("Request rejected", zap.Error(err))
		}

		if c.Writer.Written() {
			return
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			c.JSON(status, appErr.ToJSON())
			return
		}
		c.JSON(status, apperror.NewInternal("unexpected error", err).ToJSON())
	}
}

func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// RateLimitMiddleware allows limit requests per window for each client IP
// within scope.
func RateLimitMiddleware(limiter service.RateLimiter, scope string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := limiter.Allow(c.Request.Context(), scope+":"+c.ClientIP(), limit, window)
		if err != nil {
			c.Error(apperror.NewInternal("rate limit check failed", err))
			c.Abort()
			return
		}

		if limit > 0 {
			c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
			c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		}
		if !res.Allowed {
			c.Header("Retry-After", strconv.Itoa(max(int(math.Ceil(res.RetryAfter.Seconds())), 1)))
			c.Error(apperror.NewTooManyRequests(scope + " rate limit exceeded"))
			c.Abort()
			return
		}
		c.Next()
	}
}
