package generateDescription

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"stagedeck/internal/ai"
	"stagedeck/internal/lib/api/response"
	"stagedeck/internal/lib/logger/sl"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type DescriptionRequest struct {
	Keywords []string `json:"keywords" validate:"required,min=1"`
}

type DescriptionResponse struct {
	response.Response
	Description string `json:"description"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DescriptionGenerator
type DescriptionGenerator interface {
	GenerateDescription(ctx context.Context, keywords []string) (string, error)
}

func New(log *slog.Logger, gen DescriptionGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.generateDescription.New"

		log = log.With(slog.String("op", op))

		if r.Header.Get("X-User-Role") != "admin" {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("admin role required"))
			return
		}

		var req DescriptionRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		description, err := gen.GenerateDescription(r.Context(), req.Keywords)
		if err != nil {
			log.Error("failed to generate description", sl.Err(err))

			if errors.Is(err, ai.ErrUnconfigured) {
				render.Status(r, http.StatusServiceUnavailable)
				render.JSON(w, r, response.Error("content generation is not available"))
				return
			}

			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to generate description"))
			return
		}

		log.Info("description generated")

		render.JSON(w, r, DescriptionResponse{
			Response:    response.OK(),
			Description: description,
		})
	}
}
