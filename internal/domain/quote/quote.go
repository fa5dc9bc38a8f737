package quote

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

type Quote struct {
	ID            uuid.UUID `json:"id"`
	Text          string    `json:"quote"`
	CharacterName *string   `json:"character_name"`
	CreatedAt     time.Time `json:"created_at"`
}

var ErrQuoteRequired = errors.New("quote is required")

func (q *Quote) Validate() error {
	if q.Text == "" {
		return ErrQuoteRequired
	}
	return nil
}

func builtin(text, character string) Quote {
	return Quote{Text: text, CharacterName: &character}
}

// Defaults are served while the quotes table is empty.
var Defaults = []Quote{
	builtin("I alone level up.", "Sung Jin-Woo"),
	builtin("The difference between the novice and the master is that the master has failed more times than the novice has tried.", "Sung Jin-Woo"),
	builtin("I will become strong enough to protect everyone.", "Sung Jin-Woo"),
	builtin("The weak can never forgive. Forgiveness is the attribute of the strong.", "Sung Jin-Woo"),
	builtin("Every trial endured and weathered in the right spirit makes a soul nobler and stronger.", "System"),
	builtin("Rise from the ashes.", "Sung Jin-Woo"),
	builtin("Only those who are willing to suffer greatly can achieve great things.", "System"),
	builtin("The true hunter moves in silence.", "Sung Jin-Woo"),
	builtin("Arise.", "Sung Jin-Woo"),
	builtin("I don't need anyone's permission to get stronger.", "Sung Jin-Woo"),
}

func RandomDefault() Quote {
	return Defaults[rand.IntN(len(Defaults))]
}

type Repository interface {
	Save(ctx context.Context, q *Quote) error
	Update(ctx context.Context, q *Quote) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Quote, error)
	List(ctx context.Context) ([]*Quote, error)
	// Random returns apperror.ErrNotFound when the table is empty.
	Random(ctx context.Context) (*Quote, error)
}
