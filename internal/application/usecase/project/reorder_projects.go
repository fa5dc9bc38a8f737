package project

import (
	"context"

	"github.com/google/uuid"

	"github.com/syedmaroof/portfolio-api/adapters/event"
	"github.com/syedmaroof/portfolio-api/internal/application/usecase/sections"
	"github.com/syedmaroof/portfolio-api/internal/domain/content"
	"github.com/syedmaroof/portfolio-api/internal/domain/project"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
)

type ReorderProjectsUseCase struct {
	projectRepo project.Repository
	notifier    *sections.Notifier
}

func NewReorderProjectsUseCase(pRepo project.Repository, notifier *sections.Notifier) *ReorderProjectsUseCase {
	return &ReorderProjectsUseCase{projectRepo: pRepo, notifier: notifier}
}

func (uc *ReorderProjectsUseCase) Execute(ctx context.Context, ids []uuid.UUID) error {
	if err := content.ValidateOrder(ids); err != nil {
		return apperror.NewInvalidInput("invalid project order", err)
	}
	if err := uc.projectRepo.Reorder(ctx, ids); err != nil {
		return err
	}
	uc.notifier.Changed(ctx, sections.Change{
		Section: content.SectionProjects,
		Type:    event.ContentEventReordered,
	})
	return nil
}
