package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentmap/internal/mapview"
	"talentmap/internal/profile/models"
	"talentmap/internal/profile/store"
	"talentmap/pkg/testutil"
)

func seedProfile(t *testing.T, s *store.InMemoryStore, ownerID string, req models.CreateProfileRequest) {
	t.Helper()
	profile, err := models.NewProfile(ownerID, req, time.Now())
	require.NoError(t, err)
	require.NoError(t, s.Insert(context.Background(), profile))
}

func floatPtr(f float64) *float64 { return &f }

func TestHandleMapView(t *testing.T) {
	profiles := store.NewInMemoryStore()
	seedProfile(t, profiles, "user-1", models.CreateProfileRequest{
		DisplayName: "Ada",
		Location: &models.Location{
			City:        "Paris",
			Country:     "France",
			Coordinates: &models.Coordinates{Lat: floatPtr(48.85), Lng: floatPtr(2.35)},
		},
	})
	seedProfile(t, profiles, "user-2", models.CreateProfileRequest{
		DisplayName: "Grace",
		IsRemote:    true,
	})
	seedProfile(t, profiles, "user-3", models.CreateProfileRequest{
		DisplayName: "Edsger",
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := mapview.NewService(profiles, nil, logger)
	h := New(svc, logger, nil)

	r := chi.NewRouter()
	h.Register(r)

	rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/api/map"))
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Profiles []map[string]any `json:"profiles"`
		Stats    mapview.Stats    `json:"stats"`
	}
	testutil.DecodeJSON(t, rr, &body)

	require.Len(t, body.Profiles, 1, "only the profile with coordinates is plotted")
	assert.Equal(t, "Ada", body.Profiles[0]["displayName"])
	assert.NotContains(t, body.Profiles[0], "ownerId", "map records never expose owner ids")

	assert.Equal(t, 1, body.Stats.Countries)
	assert.Equal(t, 1, body.Stats.Cities)
	assert.Equal(t, 1, body.Stats.RemoteTalents)
	assert.Equal(t, 2, body.Stats.TotalTalents, "profile without any geodata is not part of the population")
}
