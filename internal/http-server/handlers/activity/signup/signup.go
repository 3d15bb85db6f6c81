package signup

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
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Activity string `json:"activity" form:"activity" validate:"required"`
}

type Response struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Signer
type Signer interface {
	Signup(ctx context.Context, form controller.SignupForm) (controller.SignupOutcome, error)
	Reject(form controller.SignupForm, reason string)
}

func New(log *slog.Logger, signer Signer, board htmx.BoardRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.activity.signup.New"

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

		form := controller.SignupForm{
			Name:     req.Name,
			Email:    req.Email,
			Activity: req.Activity,
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				resp := response.ValidationError(validateErr)

				if htmx.IsFormPost(r) {
					signer.Reject(form, resp.Error)
					refresh(log, w, r, board)
					return
				}

				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, resp)
				return
			}
		}

		outcome, err := signer.Signup(r.Context(), form)
		if err != nil {
			log.Error("failed to sign up", sl.Err(err))

			if errors.Is(err, controller.ErrNotMounted) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("signup form is not available"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to sign up"))
			return
		}

		log.Info("signup handled", slog.Bool("ok", outcome.OK))

		if htmx.WantsJSON(r) {
			responseOutcome(w, r, outcome)
			return
		}

		refresh(log, w, r, board)
	}
}

func refresh(log *slog.Logger, w http.ResponseWriter, r *http.Request, board htmx.BoardRenderer) {
	if err := htmx.Refresh(w, r, board); err != nil {
		log.Error("failed to render board", sl.Err(err))
		http.Error(w, "failed to render board", http.StatusInternalServerError)
	}
}

func responseOutcome(w http.ResponseWriter, r *http.Request, outcome controller.SignupOutcome) {
	if !outcome.OK {
		render.Status(r, http.StatusBadGateway)
		render.JSON(w, r, Response{Response: response.Error(outcome.Message)})
		return
	}

	render.JSON(w, r, Response{
		Response: response.OKMessage(outcome.Message),
	})
}
