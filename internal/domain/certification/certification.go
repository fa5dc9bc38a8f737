package certification

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/syedmaroof/portfolio-api/internal/domain/content"
)

type Certification struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Issuer        string     `json:"issuer"`
	IssueDate     *time.Time `json:"issue_date"`
	ExpiryDate    *time.Time `json:"expiry_date"`
	CredentialID  *string    `json:"credential_id"`
	CredentialURL *string    `json:"credential_url"`
	DisplayOrder  int        `json:"display_order"`
	CreatedAt     time.Time  `json:"created_at"`
}

var (
	ErrTitleRequired  = errors.New("title is required")
	ErrIssuerRequired = errors.New("issuer is required")
)

func (c *Certification) Validate() error {
	if c.Title == "" {
		return ErrTitleRequired
	}
	if c.Issuer == "" {
		return ErrIssuerRequired
	}
	if err := content.ValidateDateRange(c.IssueDate, c.ExpiryDate); err != nil {
		return err
	}
	return content.ValidateURL("credential_url", c.CredentialURL)
}

func (c *Certification) IsExpired(now time.Time) bool {
	return c.ExpiryDate != nil && c.ExpiryDate.Before(now)
}

type Repository interface {
	Save(ctx context.Context, cert *Certification) error
	Update(ctx context.Context, cert *Certification) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Certification, error)
	List(ctx context.Context) ([]*Certification, error)
	NextDisplayOrder(ctx context.Context) (int, error)
	Reorder(ctx context.Context, ids []uuid.UUID) error
}
