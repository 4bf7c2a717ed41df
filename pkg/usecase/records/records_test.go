package records_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/t-okazaki/satchel/pkg/model"
	"github.com/t-okazaki/satchel/pkg/repository"
	"github.com/t-okazaki/satchel/pkg/usecase/records"
)

type memoryRepo struct {
	repository.Repository
	todos    map[model.TodoID]*model.Todo
	marks    []*model.Mark
	expenses []*model.Expense
	moods    []*model.Mood
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{todos: map[model.TodoID]*model.Todo{}}
}

func (m *memoryRepo) PutTodo(ctx context.Context, todo *model.Todo) error {
	m.todos[todo.ID] = todo
	return nil
}

func (m *memoryRepo) GetTodo(ctx context.Context, id model.TodoID) (*model.Todo, error) {
	todo, ok := m.todos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return todo, nil
}

func (m *memoryRepo) ListTodos(ctx context.Context, includeDone bool) ([]*model.Todo, error) {
	var todos []*model.Todo
	for _, t := range m.todos {
		if !includeDone && t.Done {
			continue
		}
		todos = append(todos, t)
	}
	return todos, nil
}

func (m *memoryRepo) PutMark(ctx context.Context, mark *model.Mark) error {
	m.marks = append(m.marks, mark)
	return nil
}

func (m *memoryRepo) ListMarks(ctx context.Context) ([]*model.Mark, error) {
	return m.marks, nil
}

func (m *memoryRepo) PutExpense(ctx context.Context, expense *model.Expense) error {
	m.expenses = append(m.expenses, expense)
	return nil
}

func (m *memoryRepo) ListExpenses(ctx context.Context) ([]*model.Expense, error) {
	return m.expenses, nil
}

func (m *memoryRepo) PutMood(ctx context.Context, mood *model.Mood) error {
	m.moods = append(m.moods, mood)
	return nil
}

func (m *memoryRepo) ListMoods(ctx context.Context) ([]*model.Mood, error) {
	return m.moods, nil
}

func TestTodoLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	uc := records.New(repo)

	due := time.Now().Add(48 * time.Hour)
	todo, err := uc.AddTodo(ctx, "finish lab report", &due)
	gt.NoError(t, err)
	gt.V(t, todo).NotNil()
	gt.Equal(t, todo.Title, "finish lab report")
	gt.False(t, todo.Done)

	completed, err := uc.CompleteTodo(ctx, todo.ID)
	gt.NoError(t, err)
	gt.True(t, completed.Done)

	open, err := uc.ListTodos(ctx, false)
	gt.NoError(t, err)
	gt.A(t, open).Length(0)

	all, err := uc.ListTodos(ctx, true)
	gt.NoError(t, err)
	gt.A(t, all).Length(1)
}

func TestAddTodoEmptyTitle(t *testing.T) {
	uc := records.New(newMemoryRepo())
	_, err := uc.AddTodo(context.Background(), "", nil)
	gt.Error(t, err)
}

func TestCompleteTodoNotFound(t *testing.T) {
	uc := records.New(newMemoryRepo())
	_, err := uc.CompleteTodo(context.Background(), "no-such-todo")
	gt.Error(t, err)
}

func TestMarks(t *testing.T) {
	ctx := context.Background()
	uc := records.New(newMemoryRepo())

	_, err := uc.AddMark(ctx, "Biology", 80, "2026-spring")
	gt.NoError(t, err)
	_, err = uc.AddMark(ctx, "Chemistry", 90, "2026-spring")
	gt.NoError(t, err)

	avg, ok, err := uc.AverageMark(ctx)
	gt.NoError(t, err)
	gt.True(t, ok)
	gt.Equal(t, avg, 85.0)
}

func TestAverageMarkEmpty(t *testing.T) {
	uc := records.New(newMemoryRepo())
	_, ok, err := uc.AverageMark(context.Background())
	gt.NoError(t, err)
	gt.False(t, ok)
}

func TestAddMarkValidation(t *testing.T) {
	ctx := context.Background()
	uc := records.New(newMemoryRepo())

	_, err := uc.AddMark(ctx, "Biology", 101, "2026-spring")
	gt.Error(t, err)

	_, err = uc.AddMark(ctx, "Biology", -1, "2026-spring")
	gt.Error(t, err)

	_, err = uc.AddMark(ctx, "", 50, "2026-spring")
	gt.Error(t, err)
}

func TestExpenses(t *testing.T) {
	ctx := context.Background()
	uc := records.New(newMemoryRepo())

	_, err := uc.AddExpense(ctx, 12.5, "food", "lunch")
	gt.NoError(t, err)
	_, err = uc.AddExpense(ctx, 7.5, "food", "snack")
	gt.NoError(t, err)
	_, err = uc.AddExpense(ctx, 30, "books", "textbook")
	gt.NoError(t, err)

	totals, err := uc.ExpenseTotals(ctx)
	gt.NoError(t, err)
	gt.Equal(t, totals["food"], 20.0)
	gt.Equal(t, totals["books"], 30.0)
}

func TestAddExpenseValidation(t *testing.T) {
	ctx := context.Background()
	uc := records.New(newMemoryRepo())

	_, err := uc.AddExpense(ctx, 0, "food", "")
	gt.Error(t, err)

	_, err = uc.AddExpense(ctx, 10, "", "")
	gt.Error(t, err)
}

func TestMoods(t *testing.T) {
	ctx := context.Background()
	uc := records.New(newMemoryRepo())

	mood, err := uc.AddMood(ctx, 4, "good day")
	gt.NoError(t, err)
	gt.Equal(t, mood.Level, 4)

	moods, err := uc.ListMoods(ctx)
	gt.NoError(t, err)
	gt.A(t, moods).Length(1)
}

func TestAddMoodValidation(t *testing.T) {
	ctx := context.Background()
	uc := records.New(newMemoryRepo())

	_, err := uc.AddMood(ctx, 0, "")
	gt.Error(t, err)

	_, err = uc.AddMood(ctx, 6, "")
	gt.Error(t, err)
}
