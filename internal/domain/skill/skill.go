package skill

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Skill struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Proficiency  *int      `json:"proficiency"`
	Icon         *string   `json:"icon"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// Group is one category block of the skills section.
type Group struct {
	Category string   `json:"category"`
	Skills   []*Skill `json:"skills"`
}

var (
	ErrNameRequired       = errors.New("name is required")
	ErrCategoryRequired   = errors.New("category is required")
	ErrInvalidProficiency = errors.New("proficiency must be between 0 and 100")
)

func (s *Skill) Validate() error {
	if s.Name == "" {
		return ErrNameRequired
	}
	if s.Category == "" {
		return ErrCategoryRequired
	}
	if s.Proficiency != nil && (*s.Proficiency < 0 || *s.Proficiency > 100) {
		return ErrInvalidProficiency
	}
	return nil
}

// GroupByCategory keeps the incoming order: categories appear in the order
// of their first skill, skills keep their relative order.
func GroupByCategory(skills []*Skill) []Group {
	groups := make([]Group, 0)
	index := make(map[string]int)
	for _, s := range skills {
		i, ok := index[s.Category]
		if !ok {
			i = len(groups)
			index[s.Category] = i
			groups = append(groups, Group{Category: s.Category, Skills: []*Skill{}})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups
}

type Repository interface {
	Save(ctx context.Context, skill *Skill) error
	Update(ctx context.Context, skill *Skill) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Skill, error)
	List(ctx context.Context) ([]*Skill, error)
	NextDisplayOrder(ctx context.Context) (int, error)
	Reorder(ctx context.Context, ids []uuid.UUID) error
}
