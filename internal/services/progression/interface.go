package progression

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/salex1993/Who-Am-I-Bible-Riddles/internal/services/progression Service

// Service folds finished games into the persistent player profile
type Service interface {
	// Commit applies one finished game and persists the profile. It is
	// the only writer of the profile; totals never decrease.
	Commit(ctx context.Context, input *CommitInput) (*CommitOutput, error)
}
