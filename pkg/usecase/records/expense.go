package records

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/t-okazaki/satchel/pkg/model"
)

// AddExpense records a spending entry
func (u *UseCase) AddExpense(ctx context.Context, amount float64, category, note string) (*model.Expense, error) {
	expense := &model.Expense{
		ID:        model.NewExpenseID(),
		Amount:    amount,
		Category:  category,
		Note:      note,
		CreatedAt: time.Now(),
	}

	if err := expense.Validate(); err != nil {
		return nil, err
	}

	if err := u.repo.PutExpense(ctx, expense); err != nil {
		return nil, goerr.Wrap(err, "failed to save expense")
	}

	return expense, nil
}

// ListExpenses returns expenses, newest first
func (u *UseCase) ListExpenses(ctx context.Context) ([]*model.Expense, error) {
	return u.repo.ListExpenses(ctx)
}

// ExpenseTotals returns the spent amount per category
func (u *UseCase) ExpenseTotals(ctx context.Context) (map[string]float64, error) {
	expenses, err := u.repo.ListExpenses(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list expenses")
	}

	totals := make(map[string]float64, len(expenses))
	for _, e := range expenses {
		totals[e.Category] += e.Amount
	}
	return totals, nil
}
