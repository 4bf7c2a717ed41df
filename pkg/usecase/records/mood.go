package records

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/t-okazaki/satchel/pkg/model"
)

// AddMood records a mood check-in
func (u *UseCase) AddMood(ctx context.Context, level int, note string) (*model.Mood, error) {
	mood := &model.Mood{
		ID:        model.NewMoodID(),
		Level:     level,
		Note:      note,
		CreatedAt: time.Now(),
	}

	if err := mood.Validate(); err != nil {
		return nil, err
	}

	if err := u.repo.PutMood(ctx, mood); err != nil {
		return nil, goerr.Wrap(err, "failed to save mood")
	}

	return mood, nil
}

// ListMoods returns mood check-ins, newest first
func (u *UseCase) ListMoods(ctx context.Context) ([]*model.Mood, error) {
	return u.repo.ListMoods(ctx)
}
