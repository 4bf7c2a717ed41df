package assistant

import (
	"context"
	_ "embed"
	"encoding/json"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/t-okazaki/satchel/pkg/adapter"
	"github.com/t-okazaki/satchel/pkg/model"
	"github.com/t-okazaki/satchel/pkg/repository"
	"github.com/t-okazaki/satchel/pkg/utils/logging"
)

//go:embed prompt/system.md
var SystemPrompt string

// apologyText is the last-resort reply when the pipeline itself breaks
const apologyText = "Sorry, something went wrong. Please try again."

const titleLimit = 60

// DocumentSource loads grounding documents by ID
type DocumentSource interface {
	Document(ctx context.Context, id model.DocumentID) (*model.Document, error)
	Text(ctx context.Context, id model.DocumentID) (string, error)
}

// Policy holds the orchestration decisions that are configurable rather
// than fixed by contract
type Policy struct {
	// EnrichWhileGrounded runs the video/place gatherers even when a
	// document grounds the turn. Off by default: grounded answers are not
	// mixed with unrelated web results.
	EnrichWhileGrounded bool
}

// Session orchestrates one conversation. It assumes at most one in-flight
// turn at a time; the turn history is append-only.
type Session struct {
	vocab    *Vocabulary
	invoker  *Invoker
	videos   VideoSearcher
	places   PlaceSearcher
	location *LocationCache
	docs     DocumentSource
	repo     repository.Repository
	storage  adapter.Storage
	policy   Policy

	conv      *model.Conversation
	grounding *Grounding
}

// NewInput contains the collaborators for a new session. Videos, Places,
// Locator, Docs, Repo and Storage are each optional; a missing collaborator
// disables only its own enrichment or persistence, never the conversation.
type NewInput struct {
	Vocabulary *Vocabulary
	Invoker    *Invoker
	Videos     VideoSearcher
	Places     PlaceSearcher
	Locator    Locator
	Docs       DocumentSource
	Repo       repository.Repository
	Storage    adapter.Storage
	Policy     Policy
}

func New(input NewInput) (*Session, error) {
	if input.Invoker == nil {
		return nil, goerr.New("invoker is required")
	}

	vocab := input.Vocabulary
	if vocab == nil {
		vocab = DefaultVocabulary()
	}

	return &Session{
		vocab:    vocab,
		invoker:  input.Invoker,
		videos:   input.Videos,
		places:   input.Places,
		location: NewLocationCache(input.Locator),
		docs:     input.Docs,
		repo:     input.Repo,
		storage:  input.Storage,
		policy:   input.Policy,

		conv: &model.Conversation{
			ID:        model.NewConversationID(),
			CreatedAt: time.Now(),
		},
	}, nil
}

// Conversation returns the turn history
func (s *Session) Conversation() *model.Conversation {
	return s.conv
}

// Location returns the session's coordinate cache
func (s *Session) Location() *LocationCache {
	return s.location
}

// GroundedOn returns the file name of the grounding document, or empty
// when the session is not in document mode
func (s *Session) GroundedOn() string {
	if s.grounding == nil {
		return ""
	}
	return s.grounding.FileName
}

// UseDocument puts the session into document mode. The document must exist
// and its text must load; document mode is never entered half-configured.
func (s *Session) UseDocument(ctx context.Context, id model.DocumentID) error {
	if s.docs == nil {
		return goerr.New("no document source configured")
	}

	doc, err := s.docs.Document(ctx, id)
	if err != nil {
		return goerr.Wrap(err, "failed to load document", goerr.V("document_id", id))
	}

	text, err := s.docs.Text(ctx, id)
	if err != nil {
		return goerr.Wrap(err, "failed to load document text", goerr.V("document_id", id))
	}

	s.grounding = &Grounding{
		ID:       id,
		FileName: doc.FileName,
		Text:     text,
	}
	return nil
}

// ClearDocument leaves document mode
func (s *Session) ClearDocument() {
	s.grounding = nil
}

// Send runs one full turn: classify, gather, compose, invoke, assemble.
// It always appends exactly one assistant turn; any panic inside the
// pipeline is converted into the generic apology so the conversation never
// ends a turn without a reply.
func (s *Session) Send(ctx context.Context, text string) (turn *model.Turn) {
	defer func() {
		if r := recover(); r != nil {
			logging.From(ctx).Error("turn pipeline panicked", "recovered", r)
			turn = s.appendAssistant(apologyText, nil, nil)
		}
	}()

	s.conv.Append(&model.Turn{
		Role:      model.RoleUser,
		Text:      text,
		CreatedAt: time.Now(),
	})
	if s.conv.Title == "" {
		s.conv.Title = truncate(text, titleLimit)
	}

	var (
		videos []model.VideoRef
		places []model.PlaceRef
	)
	if s.grounding == nil || s.policy.EnrichWhileGrounded {
		intents := s.vocab.Classify(text)
		videos, places = s.gather(ctx, text, intents)
	}

	prompt := ComposePrompt(text, videos, places, s.grounding)
	result := s.invoker.Invoke(ctx, prompt, text)
	if result.Degraded {
		logging.From(ctx).Warn("turn answered on degraded path",
			"provider", result.Provider, "cause", result.Cause)
	}

	turn = s.appendAssistant(result.Text, videos, places)
	s.persist(ctx)
	return turn
}

func (s *Session) appendAssistant(text string, videos []model.VideoRef, places []model.PlaceRef) *model.Turn {
	turn := &model.Turn{
		Role:      model.RoleAssistant,
		Text:      text,
		Videos:    videos,
		Places:    places,
		CreatedAt: time.Now(),
	}
	s.conv.Append(turn)
	return turn
}

// persist saves the conversation after a turn. Persistence failures are
// logged and never fail the turn.
func (s *Session) persist(ctx context.Context) {
	if s.repo == nil || s.storage == nil {
		return
	}

	logger := logging.From(ctx)
	s.conv.UpdatedAt = time.Now()

	data, err := json.Marshal(s.conv.Turns)
	if err != nil {
		logger.Warn("failed to marshal conversation turns", "error", err)
		return
	}

	key := "conversations/" + string(s.conv.ID) + ".json"
	if err := adapter.PutText(ctx, s.storage, key, string(data)); err != nil {
		logger.Warn("failed to save conversation payload", "error", err)
		return
	}

	if err := s.repo.PutConversation(ctx, s.conv); err != nil {
		logger.Warn("failed to save conversation metadata", "error", err)
	}
}

// LoadTurns restores a conversation payload from storage
func LoadTurns(ctx context.Context, storage adapter.Storage, id model.ConversationID) ([]*model.Turn, error) {
	text, err := adapter.GetText(ctx, storage, "conversations/"+string(id)+".json")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load conversation payload", goerr.V("conversation_id", id))
	}

	var turns []*model.Turn
	if err := json.Unmarshal([]byte(text), &turns); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal conversation payload")
	}

	return turns, nil
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
