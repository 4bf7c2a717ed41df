package records

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/t-okazaki/satchel/pkg/model"
)

// AddMark records a course result
func (u *UseCase) AddMark(ctx context.Context, course string, score float64, term string) (*model.Mark, error) {
	mark := &model.Mark{
		ID:        model.NewMarkID(),
		Course:    course,
		Score:     score,
		Term:      term,
		CreatedAt: time.Now(),
	}

	if err := mark.Validate(); err != nil {
		return nil, err
	}

	if err := u.repo.PutMark(ctx, mark); err != nil {
		return nil, goerr.Wrap(err, "failed to save mark")
	}

	return mark, nil
}

// ListMarks returns marks, newest first
func (u *UseCase) ListMarks(ctx context.Context) ([]*model.Mark, error) {
	return u.repo.ListMarks(ctx)
}

// AverageMark returns the mean score across all recorded marks. The second
// return is false when no marks exist.
func (u *UseCase) AverageMark(ctx context.Context) (float64, bool, error) {
	marks, err := u.repo.ListMarks(ctx)
	if err != nil {
		return 0, false, goerr.Wrap(err, "failed to list marks")
	}
	if len(marks) == 0 {
		return 0, false, nil
	}

	var total float64
	for _, m := range marks {
		total += m.Score
	}
	return total / float64(len(marks)), true, nil
}
