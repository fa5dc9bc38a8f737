package education

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/syedmaroof/portfolio-api/internal/domain/content"
)

type Education struct {
	ID           uuid.UUID  `json:"id"`
	Institution  string     `json:"institution"`
	Degree       string     `json:"degree"`
	Field        *string    `json:"field"`
	Location     *string    `json:"location"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	IsCurrent    bool       `json:"is_current"`
	Description  *string    `json:"description"`
	DisplayOrder int        `json:"display_order"`
	CreatedAt    time.Time  `json:"created_at"`
}

var (
	ErrInstitutionRequired = errors.New("institution is required")
	ErrDegreeRequired      = errors.New("degree is required")
)

// Validate also clears the end date of an ongoing entry.
func (e *Education) Validate() error {
	if e.Institution == "" {
		return ErrInstitutionRequired
	}
	if e.Degree == "" {
		return ErrDegreeRequired
	}
	end, err := content.NormalizeTenure(e.IsCurrent, e.StartDate, e.EndDate)
	if err != nil {
		return err
	}
	e.EndDate = end
	return nil
}

type Repository interface {
	Save(ctx context.Context, entry *Education) error
	Update(ctx context.Context, entry *Education) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Education, error)
	List(ctx context.Context) ([]*Education, error)
	NextDisplayOrder(ctx context.Context) (int, error)
	Reorder(ctx context.Context, ids []uuid.UUID) error
}
