package createActivity

import (
	"activityBoard/internal/controller"
	"activityBoard/internal/http-server/htmx"
	"activityBoard/internal/lib/api/response"
	"activityBoard/internal/lib/logger/sl"
	"activityBoard/internal/models"
	"context"
	"errors"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
)

type Request struct {
	Title        string `json:"title" form:"title" validate:"max=200"`
	Description  string `json:"description" form:"description" validate:"max=2000"`
	Participants string `json:"participants" form:"participants"`
}

type Response struct {
	response.Response
	Activity *models.Activity `json:"activity,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ActivityCreator
type ActivityCreator interface {
	AddActivity(ctx context.Context, form controller.NewActivityForm) (models.Activity, error)
}

func New(log *slog.Logger, creator ActivityCreator, board htmx.BoardRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.activity.createActivity.New"

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

		act, err := creator.AddActivity(r.Context(), controller.NewActivityForm{
			Title:        req.Title,
			Description:  req.Description,
			Participants: req.Participants,
		})
		if err != nil {
			log.Error("failed to add activity", sl.Err(err))

			if errors.Is(err, controller.ErrNotMounted) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("new activity form is not available"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add activity"))
			return
		}

		log.Info("activity added", slog.String("id", act.ID))

		if htmx.WantsJSON(r) {
			responseOK(w, r, act)
			return
		}

		if err = htmx.Refresh(w, r, board); err != nil {
			log.Error("failed to render board", sl.Err(err))
			http.Error(w, "failed to render board", http.StatusInternalServerError)
		}
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, act models.Activity) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, Response{
		Response: response.OK(),
		Activity: &act,
	})
}
