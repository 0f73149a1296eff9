package getRecommendations

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"stagedeck/internal/lib/api/response"
	"stagedeck/internal/lib/logger/sl"
	"stagedeck/internal/models"

	"github.com/go-chi/render"
)

type RecommendationsResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	GetAllEvents(ctx context.Context) ([]models.Event, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Ranker
type Ranker interface {
	RankRecommendations(ctx context.Context, interests []string, history []string, candidates []models.Event) []models.Event
}

// New serves re-ranked event recommendations. Interests come from the
// query string; the ranker degrades to input order on its own, so this
// handler has no AI failure branch.
func New(log *slog.Logger, events EventsGetter, ranker Ranker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getRecommendations.New"

		log = log.With(slog.String("op", op))

		var interests []string
		if raw := r.URL.Query().Get("interests"); raw != "" {
			interests = strings.Split(raw, ",")
		}

		all, err := events.GetAllEvents(r.Context())
		if err != nil {
			log.Error("failed to get candidate events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get recommendations"))
			return
		}

		var candidates []models.Event
		for _, e := range all {
			if e.Status == models.EventStatusScheduled {
				candidates = append(candidates, e)
			}
		}

		ranked := ranker.RankRecommendations(r.Context(), interests, nil, candidates)

		log.Info("recommendations ranked", slog.Int("count", len(ranked)))

		render.JSON(w, r, RecommendationsResponse{
			Response: response.OK(),
			Events:   ranked,
		})
	}
}
