package certification

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/syedmaroof/portfolio-api/adapters/event"
	"github.com/syedmaroof/portfolio-api/internal/application/service"
	"github.com/syedmaroof/portfolio-api/internal/application/usecase/sections"
	"github.com/syedmaroof/portfolio-api/internal/domain/certification"
	"github.com/syedmaroof/portfolio-api/internal/domain/content"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

type CertificationUseCase struct {
	repo     certification.Repository
	cache    service.SectionCache
	notifier *sections.Notifier
	logger   logger.Logger
}

func NewCertificationUseCase(r certification.Repository, cache service.SectionCache, notifier *sections.Notifier, log logger.Logger) *CertificationUseCase {
	return &CertificationUseCase{repo: r, cache: cache, notifier: notifier, logger: log}
}

type CertificationInput struct {
	Title         string
	Issuer        string
	IssueDate     *time.Time
	ExpiryDate    *time.Time
	CredentialID  *string
	CredentialURL *string
}

func (in CertificationInput) apply(c *certification.Certification) {
	c.Title = in.Title
	c.Issuer = in.Issuer
	c.IssueDate = in.IssueDate
	c.ExpiryDate = in.ExpiryDate
	c.CredentialID = content.NilIfBlank(in.CredentialID)
	c.CredentialURL = content.NilIfBlank(in.CredentialURL)
}

func (uc *CertificationUseCase) CreateCertification(ctx context.Context, in CertificationInput) (*certification.Certification, error) {
	c := &certification.Certification{ID: uuid.New(), CreatedAt: time.Now().UTC()}
	in.apply(c)
	if err := c.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("certification validation failed", err)
	}

	order, err := uc.repo.NextDisplayOrder(ctx)
	if err != nil {
		return nil, err
	}
	c.DisplayOrder = order

	if err := uc.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	uc.changed(ctx, event.ContentEventCreated, c.ID)
	return c, nil
}

func (uc *CertificationUseCase) UpdateCertification(ctx context.Context, id uuid.UUID, in CertificationInput) (*certification.Certification, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	in.apply(c)
	if err := c.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("certification validation failed", err)
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	uc.changed(ctx, event.ContentEventUpdated, c.ID)
	return c, nil
}

func (uc *CertificationUseCase) DeleteCertification(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.changed(ctx, event.ContentEventDeleted, id)
	return nil
}

func (uc *CertificationUseCase) GetCertification(ctx context.Context, id uuid.UUID) (*certification.Certification, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *CertificationUseCase) ListCertifications(ctx context.Context) ([]*certification.Certification, error) {
	return uc.repo.List(ctx)
}

func (uc *CertificationUseCase) ListPublicCertifications(ctx context.Context) ([]*certification.Certification, error) {
	return sections.Load(ctx, uc.cache, uc.logger, content.SectionCertifications, "all", uc.repo.List)
}

func (uc *CertificationUseCase) ReorderCertifications(ctx context.Context, ids []uuid.UUID) error {
	if err := content.ValidateOrder(ids); err != nil {
		return apperror.NewInvalidInput("invalid certification order", err)
	}
	if err := uc.repo.Reorder(ctx, ids); err != nil {
		return err
	}
	uc.changed(ctx, event.ContentEventReordered, uuid.Nil)
	return nil
}

func (uc *CertificationUseCase) changed(ctx context.Context, t event.ContentEventType, id uuid.UUID) {
	uc.notifier.Changed(ctx, sections.Change{Section: content.SectionCertifications, Type: t, ResourceID: id})
}
