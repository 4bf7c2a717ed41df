package records

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/t-okazaki/satchel/pkg/model"
)

// AddTodo creates a new todo record
func (u *UseCase) AddTodo(ctx context.Context, title string, due *time.Time) (*model.Todo, error) {
	todo := &model.Todo{
		ID:        model.NewTodoID(),
		Title:     title,
		Due:       due,
		CreatedAt: time.Now(),
	}

	if err := todo.Validate(); err != nil {
		return nil, err
	}

	if err := u.repo.PutTodo(ctx, todo); err != nil {
		return nil, goerr.Wrap(err, "failed to save todo")
	}

	return todo, nil
}

// CompleteTodo marks a todo as done
func (u *UseCase) CompleteTodo(ctx context.Context, id model.TodoID) (*model.Todo, error) {
	todo, err := u.repo.GetTodo(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get todo", goerr.V("todo_id", id))
	}

	todo.Done = true
	if err := u.repo.PutTodo(ctx, todo); err != nil {
		return nil, goerr.Wrap(err, "failed to update todo", goerr.V("todo_id", id))
	}

	return todo, nil
}

// ListTodos returns todos, newest first
func (u *UseCase) ListTodos(ctx context.Context, includeDone bool) ([]*model.Todo, error) {
	return u.repo.ListTodos(ctx, includeDone)
}
