package removeParticipant

import (
	"activityBoard/internal/controller"
	"activityBoard/internal/http-server/htmx"
	"activityBoard/internal/lib/api/response"
	"activityBoard/internal/lib/logger/sl"
	"context"
	"errors"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
)

type Request struct {
	Title string `json:"title" form:"title" validate:"required"`
	Name  string `json:"name" form:"name" validate:"required"`
}

type Response struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ParticipantRemover
type ParticipantRemover interface {
	RemoveParticipant(ctx context.Context, title, name string) error
}

func New(log *slog.Logger, remover ParticipantRemover, board htmx.BoardRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.activity.removeParticipant.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request

		err := render.Decode(r, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		err = remover.RemoveParticipant(r.Context(), req.Title, req.Name)
		if err != nil {
			log.Error("failed to remove participant", sl.Err(err))

			if errors.Is(err, controller.ErrCardNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("activity card not found"))
				return
			}

			if errors.Is(err, controller.ErrParticipantNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("participant not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to remove participant"))
			return
		}

		log.Info("participant removed")

		if htmx.WantsJSON(r) {
			render.JSON(w, r, Response{Response: response.OK()})
			return
		}

		if err = htmx.Refresh(w, r, board); err != nil {
			log.Error("failed to render board", sl.Err(err))
			http.Error(w, "failed to render board", http.StatusInternalServerError)
		}
	}
}
