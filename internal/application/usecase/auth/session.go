package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/syedmaroof/portfolio-api/internal/domain/user"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
)

type SessionUseCase struct {
	userRepo user.Repository
}

func NewSessionUseCase(repo user.Repository) *SessionUseCase {
	return &SessionUseCase{userRepo: repo}
}

type SessionOutput struct {
	OwnerID uuid.UUID
	Email   string
	Name    *string
}

func (uc *SessionUseCase) Execute(ctx context.Context, ownerID uuid.UUID) (*SessionOutput, error) {
	u, err := uc.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperror.NewUnauthorized("owner no longer exists", err)
		}
		return nil, apperror.NewInternal("failed to load session", err)
	}
	return &SessionOutput{OwnerID: u.ID, Email: u.Email, Name: u.Name}, nil
}
