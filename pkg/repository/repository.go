package repository

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/t-okazaki/satchel/pkg/model"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = goerr.New("record not found")

// Repository defines the interface for record persistence. Every record
// type the app owns lives in the document database; conversation turn
// payloads and extracted document text live in blob storage and only their
// metadata is kept here.
type Repository interface {
	// PutTodo saves a todo record
	PutTodo(ctx context.Context, todo *model.Todo) error

	// GetTodo retrieves a todo by ID
	GetTodo(ctx context.Context, id model.TodoID) (*model.Todo, error)

	// ListTodos retrieves todos, newest first. Completed todos are
	// included only when includeDone is set.
	ListTodos(ctx context.Context, includeDone bool) ([]*model.Todo, error)

	// PutMark saves a course mark
	PutMark(ctx context.Context, mark *model.Mark) error

	// ListMarks retrieves marks, newest first
	ListMarks(ctx context.Context) ([]*model.Mark, error)

	// PutExpense saves an expense record
	PutExpense(ctx context.Context, expense *model.Expense) error

	// ListExpenses retrieves expenses, newest first
	ListExpenses(ctx context.Context) ([]*model.Expense, error)

	// PutMood saves a mood check-in
	PutMood(ctx context.Context, mood *model.Mood) error

	// ListMoods retrieves mood check-ins, newest first
	ListMoods(ctx context.Context) ([]*model.Mood, error)

	// PutDocument saves document metadata
	PutDocument(ctx context.Context, doc *model.Document) error

	// GetDocument retrieves document metadata by ID
	GetDocument(ctx context.Context, id model.DocumentID) (*model.Document, error)

	// ListDocuments retrieves document metadata, newest first
	ListDocuments(ctx context.Context) ([]*model.Document, error)

	// PutConversation saves conversation metadata
	PutConversation(ctx context.Context, conv *model.Conversation) error

	// GetConversation retrieves conversation metadata by ID
	GetConversation(ctx context.Context, id model.ConversationID) (*model.Conversation, error)

	// ListConversations retrieves conversation metadata, newest first
	ListConversations(ctx context.Context, limit int) ([]*model.Conversation, error)
}
