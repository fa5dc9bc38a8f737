package skill

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/syedmaroof/portfolio-api/internal/application/usecase/sections"
	"github.com/syedmaroof/portfolio-api/internal/domain/content"
	"github.com/syedmaroof/portfolio-api/internal/domain/skill"
	"github.com/syedmaroof/portfolio-api/internal/mocks"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

func newUseCase(repo *mocks.SkillRepository, cache *mocks.SectionCache) *SkillUseCase {
	log := logger.NewNopLogger()
	return NewSkillUseCase(repo, cache, sections.NewNotifier(cache, mocks.NewQuietPublisher(), log), log)
}

func TestListGroupedSkills_FillsCacheOnMiss(t *testing.T) {
	repo := &mocks.SkillRepository{}
	cache := &mocks.SectionCache{}
	skills := []*skill.Skill{
		{ID: uuid.New(), Name: "Go", Category: "Backend"},
		{ID: uuid.New(), Name: "React", Category: "Frontend"},
		{ID: uuid.New(), Name: "Postgres", Category: "Backend"},
	}
	repo.On("List", mock.Anything).Return(skills, nil).Once()
	cache.On("Get", mock.Anything, content.SectionSkills, "grouped", mock.Anything).Return(false, nil)
	cache.On("Set", mock.Anything, content.SectionSkills, "grouped", mock.Anything).Return(nil).Once()

	groups, err := newUseCase(repo, cache).ListGroupedSkills(context.Background())

	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Backend", groups[0].Category)
	assert.Len(t, groups[0].Skills, 2)
	cache.AssertExpectations(t)
}

func TestCreateSkill_RejectsBadProficiency(t *testing.T) {
	repo := &mocks.SkillRepository{}
	level := 120

	_, err := newUseCase(repo, mocks.NewMissingCache()).CreateSkill(context.Background(),
		SkillInput{Name: "Go", Category: "Backend", Proficiency: &level})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestDeleteSkill_InvalidatesOnlyOnSuccess(t *testing.T) {
	repo := &mocks.SkillRepository{}
	cache := &mocks.SectionCache{}
	missing := uuid.New()
	repo.On("Delete", mock.Anything, missing).Return(apperror.NewNotFound("skill", missing.String()))

	err := newUseCase(repo, cache).DeleteSkill(context.Background(), missing)

	assert.ErrorIs(t, err, apperror.ErrNotFound)
	cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}
