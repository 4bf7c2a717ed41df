package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/t-okazaki/satchel/pkg/model"
	"github.com/t-okazaki/satchel/pkg/repository"
)

func setupFirestore(t *testing.T) *repository.Firestore {
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")

	if projectID == "" || databaseID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID and TEST_FIRESTORE_DATABASE_ID must be set to run Firestore tests")
	}

	repo, err := repository.New(context.Background(), projectID, databaseID)
	gt.NoError(t, err)
	t.Cleanup(func() {
		gt.NoError(t, repo.Close())
	})

	return repo
}

func TestFirestoreTodoRoundTrip(t *testing.T) {
	repo := setupFirestore(t)
	ctx := context.Background()

	todo := &model.Todo{
		ID:        model.NewTodoID(),
		Title:     "integration test todo",
		CreatedAt: time.Now(),
	}
	gt.NoError(t, repo.PutTodo(ctx, todo))

	retrieved, err := repo.GetTodo(ctx, todo.ID)
	gt.NoError(t, err)
	gt.Equal(t, retrieved.ID, todo.ID)
	gt.Equal(t, retrieved.Title, todo.Title)

	todos, err := repo.ListTodos(ctx, true)
	gt.NoError(t, err)
	gt.A(t, todos).Longer(0)
}

func TestFirestoreGetTodoNotFound(t *testing.T) {
	repo := setupFirestore(t)

	_, err := repo.GetTodo(context.Background(), model.NewTodoID())
	gt.Error(t, err)
}

func TestFirestoreConversationMetadata(t *testing.T) {
	repo := setupFirestore(t)
	ctx := context.Background()

	conv := &model.Conversation{
		ID:        model.NewConversationID(),
		Title:     "integration test conversation",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	gt.NoError(t, repo.PutConversation(ctx, conv))

	retrieved, err := repo.GetConversation(ctx, conv.ID)
	gt.NoError(t, err)
	gt.Equal(t, retrieved.Title, conv.Title)

	convs, err := repo.ListConversations(ctx, 10)
	gt.NoError(t, err)
	gt.A(t, convs).Longer(0)
}

func TestFirestoreDocumentMetadata(t *testing.T) {
	repo := setupFirestore(t)
	ctx := context.Background()

	doc := &model.Document{
		ID:        model.NewDocumentID(),
		FileName:  "integration.pdf",
		Pages:     2,
		CreatedAt: time.Now(),
	}
	gt.NoError(t, repo.PutDocument(ctx, doc))

	retrieved, err := repo.GetDocument(ctx, doc.ID)
	gt.NoError(t, err)
	gt.Equal(t, retrieved.FileName, "integration.pdf")
}
