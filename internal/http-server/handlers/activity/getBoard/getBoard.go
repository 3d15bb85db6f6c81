package getBoard

import (
	"activityBoard/internal/http-server/htmx"
	"activityBoard/internal/lib/logger/sl"
	"github.com/go-chi/chi/v5/middleware"
	"log/slog"
	"net/http"
)

func New(log *slog.Logger, board htmx.BoardRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.activity.getBoard.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if err := htmx.Board(w, r, board); err != nil {
			log.Error("failed to render board", sl.Err(err))
			http.Error(w, "failed to render board", http.StatusInternalServerError)
			return
		}

		log.Debug("board rendered", slog.Bool("fragment", htmx.IsHTMXRequest(r)))
	}
}
