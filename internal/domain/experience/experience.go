package experience

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/syedmaroof/portfolio-api/internal/domain/content"
)

type Experience struct {
	ID           uuid.UUID  `json:"id"`
	Company      string     `json:"company"`
	Position     string     `json:"position"`
	Location     *string    `json:"location"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	IsCurrent    bool       `json:"is_current"`
	Description  *string    `json:"description"`
	DisplayOrder int        `json:"display_order"`
	CreatedAt    time.Time  `json:"created_at"`
}

var (
	ErrCompanyRequired  = errors.New("company is required")
	ErrPositionRequired = errors.New("position is required")
)

func (e *Experience) Validate() error {
	if e.Company == "" {
		return ErrCompanyRequired
	}
	if e.Position == "" {
		return ErrPositionRequired
	}
	end, err := content.NormalizeTenure(e.IsCurrent, e.StartDate, e.EndDate)
	if err != nil {
		return err
	}
	e.EndDate = end
	return nil
}

type Repository interface {
	Save(ctx context.Context, entry *Experience) error
	Update(ctx context.Context, entry *Experience) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Experience, error)
	List(ctx context.Context) ([]*Experience, error)
	NextDisplayOrder(ctx context.Context) (int, error)
	Reorder(ctx context.Context, ids []uuid.UUID) error
}
