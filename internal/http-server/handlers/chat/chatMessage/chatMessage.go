package chatMessage

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"stagedeck/internal/lib/api/response"
	"stagedeck/internal/lib/logger/sl"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type MessageRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

type MessageResponse struct {
	response.Response
	Reply string `json:"reply"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Chatter
type Chatter interface {
	Chat(ctx context.Context, message string) string
}

// New is the public chatbot endpoint. The adapter never errors, so the
// only failure modes here are request-shape ones.
func New(log *slog.Logger, chatter Chatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.chat.chatMessage.New"

		log = log.With(slog.String("op", op))

		var req MessageRequest

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

		reply := chatter.Chat(r.Context(), req.Message)

		log.Info("chat message answered")

		render.JSON(w, r, MessageResponse{
			Response: response.OK(),
			Reply:    reply,
		})
	}
}
