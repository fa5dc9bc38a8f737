package auth

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/syedmaroof/portfolio-api/internal/application/service"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
	"github.com/syedmaroof/portfolio-api/pkg/auth"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

type LogoutUseCase struct {
	denylist service.TokenDenylist
	logger   logger.Logger
}

func NewLogoutUseCase(denylist service.TokenDenylist, log logger.Logger) *LogoutUseCase {
	return &LogoutUseCase{denylist: denylist, logger: log}
}

// Execute revokes the token until it would have expired anyway.
func (uc *LogoutUseCase) Execute(ctx context.Context, claims *auth.CustomClaims) error {
	if claims == nil || claims.ID == "" {
		return apperror.NewUnauthorized("token has no id", nil)
	}
	if err := uc.denylist.Revoke(ctx, claims.ID, claims.RemainingLifetime(time.Now())); err != nil {
		return apperror.NewInternal("failed to revoke token", err)
	}
	uc.logger.Info("Owner logged out", zap.String("owner_id", claims.OwnerID.String()))
	return nil
}
