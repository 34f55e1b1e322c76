package appointment

import (
	"context"

	domain "github.com/clippercut/clippercut-api/internal/domain/appointment"
	"github.com/clippercut/clippercut-api/internal/models"
)

type LastCompletedPerClient struct {
	repo domain.Repository
}

func NewLastCompletedPerClient(repo domain.Repository) *LastCompletedPerClient {
	return &LastCompletedPerClient{repo: repo}
}

// Execute returns, for each active client, their most recent completed
// appointment. The repository hands back completed appointments newest
// first, so the first appointment seen per client wins.
func (uc *LastCompletedPerClient) Execute(
	ctx context.Context,
) ([]models.Appointment, error) {

	aps, err := uc.repo.ListCompletedForActiveClients(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]bool, len(aps))
	out := make([]models.Appointment, 0, len(aps))
	for _, ap := range aps {
		if seen[ap.ClientID] {
			continue
		}
		seen[ap.ClientID] = true
		out = append(out, ap)
	}

	return out, nil
}
