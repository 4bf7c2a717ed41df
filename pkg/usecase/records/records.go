package records

import (
	"github.com/t-okazaki/satchel/pkg/repository"
)

// UseCase provides the CRUD operations for lifestyle records: todos,
// course marks, expenses and mood check-ins
type UseCase struct {
	repo repository.Repository
}

// New creates a new records UseCase instance
func New(repo repository.Repository) *UseCase {
	return &UseCase{
		repo: repo,
	}
}
