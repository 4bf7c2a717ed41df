package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrEmptyTitle   = goerr.New("title is empty")
	ErrInvalidScore = goerr.New("score must be between 0 and 100")
	ErrInvalidMood  = goerr.New("mood level must be between 1 and 5")
)

type TodoID string

// NewTodoID generates a new unique TodoID
func NewTodoID() TodoID {
	return TodoID(uuid.New().String())
}

// Todo is a single task record
type Todo struct {
	ID        TodoID
	Title     string
	Due       *time.Time
	Done      bool
	CreatedAt time.Time
}

// Validate checks if the todo is valid
func (t *Todo) Validate() error {
	if t.Title == "" {
		return ErrEmptyTitle
	}
	return nil
}

type MarkID string

// NewMarkID generates a new unique MarkID
func NewMarkID() MarkID {
	return MarkID(uuid.New().String())
}

// Mark is a course result out of 100
type Mark struct {
	ID        MarkID
	Course    string
	Score     float64
	Term      string
	CreatedAt time.Time
}

// Validate checks if the mark is valid
func (m *Mark) Validate() error {
	if m.Course == "" {
		return goerr.New("course name is empty")
	}
	if m.Score < 0 || m.Score > 100 {
		return goerr.Wrap(ErrInvalidScore, "invalid mark", goerr.V("score", m.Score))
	}
	return nil
}

type ExpenseID string

// NewExpenseID generates a new unique ExpenseID
func NewExpenseID() ExpenseID {
	return ExpenseID(uuid.New().String())
}

// Expense is a single spending record
type Expense struct {
	ID        ExpenseID
	Amount    float64
	Category  string
	Note      string
	CreatedAt time.Time
}

// Validate checks if the expense is valid
func (e *Expense) Validate() error {
	if e.Amount <= 0 {
		return goerr.New("amount must be positive", goerr.V("amount", e.Amount))
	}
	if e.Category == "" {
		return goerr.New("category is empty")
	}
	return nil
}

type MoodID string

// NewMoodID generates a new unique MoodID
func NewMoodID() MoodID {
	return MoodID(uuid.New().String())
}

// Mood is a daily mood check-in on a 1 (low) to 5 (high) scale
type Mood struct {
	ID        MoodID
	Level     int
	Note      string
	CreatedAt time.Time
}

// Validate checks if the mood entry is valid
func (m *Mood) Validate() error {
	if m.Level < 1 || m.Level > 5 {
		return goerr.Wrap(ErrInvalidMood, "invalid mood entry", goerr.V("level", m.Level))
	}
	return nil
}
