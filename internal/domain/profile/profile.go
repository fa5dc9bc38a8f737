package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/syedmaroof/portfolio-api/internal/domain/content"
)

// Profile is the single hero/about/contact record of the site.
type Profile struct {
	ID        uuid.UUID  `json:"id"`
	UserID    *uuid.UUID `json:"user_id"`
	FullName  string     `json:"full_name"`
	Title     string     `json:"title"`
	Bio       *string    `json:"bio"`
	Email     *string    `json:"email"`
	Phone     *string    `json:"phone"`
	Location  *string    `json:"location"`
	Github    *string    `json:"github"`
	Instagram *string    `json:"instagram"`
	Linkedin  *string    `json:"linkedin"`
	DOB       *time.Time `json:"dob"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

var ErrFullNameRequired = errors.New("full name is required")

// Exists reports whether the profile has been stored at least once.
func (p *Profile) Exists() bool {
	return p.ID != uuid.Nil
}

func (p *Profile) Validate() error {
	if p.FullName == "" {
		return ErrFullNameRequired
	}
	if err := content.ValidateURL("github", p.Github); err != nil {
		return err
	}
	if err := content.ValidateURL("instagram", p.Instagram); err != nil {
		return err
	}
	return content.ValidateURL("linkedin", p.Linkedin)
}

type Repository interface {
	// Get returns an empty, unsaved profile when none exists.
	Get(ctx context.Context) (*Profile, error)
	Upsert(ctx context.Context, profile *Profile) error
}
