package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/t-okazaki/satchel/pkg/model"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionTodos         = "todos"
	collectionMarks         = "marks"
	collectionExpenses      = "expenses"
	collectionMoods         = "moods"
	collectionDocuments     = "documents"
	collectionConversations = "conversations"
)

// Firestore implements Repository using Cloud Firestore
type Firestore struct {
	client *firestore.Client
}

// New creates a new Firestore repository
func New(ctx context.Context, projectID, databaseID string) (*Firestore, error) {
	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("project", projectID), goerr.V("database", databaseID))
	}

	return &Firestore{client: client}, nil
}

// Close releases the underlying client
func (r *Firestore) Close() error {
	return r.client.Close()
}

func (r *Firestore) put(ctx context.Context, collection, id string, data any) error {
	if _, err := r.client.Collection(collection).Doc(id).Set(ctx, data); err != nil {
		return goerr.Wrap(err, "failed to put document",
			goerr.V("collection", collection), goerr.V("id", id))
	}
	return nil
}

func (r *Firestore) get(ctx context.Context, collection, id string, out any) error {
	doc, err := r.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "no such document",
				goerr.V("collection", collection), goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get document",
			goerr.V("collection", collection), goerr.V("id", id))
	}

	if err := doc.DataTo(out); err != nil {
		return goerr.Wrap(err, "failed to decode document",
			goerr.V("collection", collection), goerr.V("id", id))
	}
	return nil
}

func (r *Firestore) PutTodo(ctx context.Context, todo *model.Todo) error {
	return r.put(ctx, collectionTodos, string(todo.ID), todo)
}

func (r *Firestore) GetTodo(ctx context.Context, id model.TodoID) (*model.Todo, error) {
	var todo model.Todo
	if err := r.get(ctx, collectionTodos, string(id), &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

func (r *Firestore) ListTodos(ctx context.Context, includeDone bool) ([]*model.Todo, error) {
	query := r.client.Collection(collectionTodos).
		OrderBy("CreatedAt", firestore.Desc)

	iter := query.Documents(ctx)
	defer iter.Stop()

	var todos []*model.Todo
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate todos")
		}

		var todo model.Todo
		if err := doc.DataTo(&todo); err != nil {
			return nil, goerr.Wrap(err, "failed to decode todo", goerr.V("id", doc.Ref.ID))
		}
		if todo.Done && !includeDone {
			continue
		}
		todos = append(todos, &todo)
	}

	return todos, nil
}

func (r *Firestore) PutMark(ctx context.Context, mark *model.Mark) error {
	return r.put(ctx, collectionMarks, string(mark.ID), mark)
}

func (r *Firestore) ListMarks(ctx context.Context) ([]*model.Mark, error) {
	iter := r.client.Collection(collectionMarks).
		OrderBy("CreatedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var marks []*model.Mark
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate marks")
		}

		var mark model.Mark
		if err := doc.DataTo(&mark); err != nil {
			return nil, goerr.Wrap(err, "failed to decode mark", goerr.V("id", doc.Ref.ID))
		}
		marks = append(marks, &mark)
	}

	return marks, nil
}

func (r *Firestore) PutExpense(ctx context.Context, expense *model.Expense) error {
	return r.put(ctx, collectionExpenses, string(expense.ID), expense)
}

func (r *Firestore) ListExpenses(ctx context.Context) ([]*model.Expense, error) {
	iter := r.client.Collection(collectionExpenses).
		OrderBy("CreatedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var expenses []*model.Expense
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate expenses")
		}

		var expense model.Expense
		if err := doc.DataTo(&expense); err != nil {
			return nil, goerr.Wrap(err, "failed to decode expense", goerr.V("id", doc.Ref.ID))
		}
		expenses = append(expenses, &expense)
	}

	return expenses, nil
}

func (r *Firestore) PutMood(ctx context.Context, mood *model.Mood) error {
	return r.put(ctx, collectionMoods, string(mood.ID), mood)
}

func (r *Firestore) ListMoods(ctx context.Context) ([]*model.Mood, error) {
	iter := r.client.Collection(collectionMoods).
		OrderBy("CreatedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var moods []*model.Mood
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate moods")
		}

		var mood model.Mood
		if err := doc.DataTo(&mood); err != nil {
			return nil, goerr.Wrap(err, "failed to decode mood", goerr.V("id", doc.Ref.ID))
		}
		moods = append(moods, &mood)
	}

	return moods, nil
}

func (r *Firestore) PutDocument(ctx context.Context, document *model.Document) error {
	if err := document.Validate(); err != nil {
		return err
	}
	return r.put(ctx, collectionDocuments, string(document.ID), document)
}

func (r *Firestore) GetDocument(ctx context.Context, id model.DocumentID) (*model.Document, error) {
	var document model.Document
	if err := r.get(ctx, collectionDocuments, string(id), &document); err != nil {
		return nil, err
	}
	return &document, nil
}

func (r *Firestore) ListDocuments(ctx context.Context) ([]*model.Document, error) {
	iter := r.client.Collection(collectionDocuments).
		OrderBy("CreatedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var documents []*model.Document
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate documents")
		}

		var document model.Document
		if err := doc.DataTo(&document); err != nil {
			return nil, goerr.Wrap(err, "failed to decode document", goerr.V("id", doc.Ref.ID))
		}
		documents = append(documents, &document)
	}

	return documents, nil
}

func (r *Firestore) PutConversation(ctx context.Context, conv *model.Conversation) error {
	return r.put(ctx, collectionConversations, string(conv.ID), conv)
}

func (r *Firestore) GetConversation(ctx context.Context, id model.ConversationID) (*model.Conversation, error) {
	var conv model.Conversation
	if err := r.get(ctx, collectionConversations, string(id), &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *Firestore) ListConversations(ctx context.Context, limit int) ([]*model.Conversation, error) {
	query := r.client.Collection(collectionConversations).
		OrderBy("UpdatedAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var convs []*model.Conversation
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate conversations")
		}

		var conv model.Conversation
		if err := doc.DataTo(&conv); err != nil {
			return nil, goerr.Wrap(err, "failed to decode conversation", goerr.V("id", doc.Ref.ID))
		}
		convs = append(convs, &conv)
	}

	return convs, nil
}
