package project

import (
	"context"

	"github.com/google/uuid"

	"github.com/syedmaroof/portfolio-api/internal/domain/project"
)

type GetProjectUseCase struct {
	projectRepo project.Repository
}

func NewGetProjectUseCase(pRepo project.Repository) *GetProjectUseCase {
	return &GetProjectUseCase{projectRepo: pRepo}
}

func (uc *GetProjectUseCase) Execute(ctx context.Context, projectID uuid.UUID) (*project.Project, error) {
	return uc.projectRepo.FindByID(ctx, projectID)
}
