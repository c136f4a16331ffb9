package mapview

import (
	"context"
	"log/slog"

	"talentmap/internal/profile/models"
	dErrors "talentmap/pkg/domain-errors"
	"talentmap/pkg/requestcontext"
)

// ProfileSource is the read-only view of the profile store the engine needs.
type ProfileSource interface {
	FindAll(ctx context.Context) ([]*models.Profile, error)
}

// Service computes map views with an optional read-through cache in front of
// the store. Cache failures degrade to recomputation, never to an error.
type Service struct {
	profiles ProfileSource
	cache    *Cache
	logger   *slog.Logger
}

func NewService(profiles ProfileSource, cache *Cache, logger *slog.Logger) *Service {
	return &Service{profiles: profiles, cache: cache, logger: logger}
}

// MapView returns the aggregated view of the full directory.
func (s *Service) MapView(ctx context.Context) (*MapView, error) {
	if view, err := s.cache.Get(ctx); err != nil {
		s.logger.WarnContext(ctx, "map cache read failed",
			"error", err.Error(),
			"request_id", requestcontext.RequestID(ctx),
		)
	} else if view != nil {
		return view, nil
	}

	profiles, err := s.profiles.FindAll(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to fetch profiles for map")
	}

	view := BuildMapView(profiles)

	if err := s.cache.Set(ctx, view); err != nil {
		s.logger.WarnContext(ctx, "map cache write failed",
			"error", err.Error(),
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	return view, nil
}
