package countries

import (
	"context"

	"github.com/HIDORAKAI002/flagbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_fetcher.go github.com/HIDORAKAI002/flagbot/internal/countries Fetcher

// Fetcher serves random quiz items for a difficulty tier
type Fetcher interface {
	// Fetch returns a random country meeting the tier's population threshold.
	// It returns ErrNoCountry when the filtered set is empty.
	Fetch(ctx context.Context, difficulty models.Difficulty) (*models.Country, error)
}
