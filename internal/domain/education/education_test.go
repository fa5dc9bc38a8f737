package education

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syedmaroof/portfolio-api/internal/domain/content"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestEducation_Validate(t *testing.T) {
	assert.ErrorIs(t, (&Education{Degree: "B.Tech"}).Validate(), ErrInstitutionRequired)
	assert.ErrorIs(t, (&Education{Institution: "AKTU"}).Validate(), ErrDegreeRequired)

	backwards := &Education{Institution: "AKTU", Degree: "B.Tech", StartDate: date(2024, 1, 1), EndDate: date(2020, 1, 1)}
	assert.ErrorIs(t, backwards.Validate(), content.ErrDateRange)
}

func TestEducation_ValidateClearsEndDateWhenCurrent(t *testing.T) {
	e := &Education{
		Institution: "AKTU",
		Degree:      "B.Tech",
		StartDate:   date(2021, 8, 1),
		EndDate:     date(2025, 6, 1),
		IsCurrent:   true,
	}

	require.NoError(t, e.Validate())
	assert.Nil(t, e.EndDate)
	assert.NotNil(t, e.StartDate)
}
