package htmx

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/render"
)

// RequestHeaderKey is the header HTMX sets on the requests it issues.
const RequestHeaderKey = "HX-Request"

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BoardRenderer
type BoardRenderer interface {
	RenderBoard(ctx context.Context, w io.Writer, fragment bool) error
}

// IsHTMXRequest reports whether the request was initiated by HTMX.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeaderKey), "true")
}

// WantsJSON reports whether the client asked for a JSON answer.
func WantsJSON(r *http.Request) bool {
	return render.GetAcceptedContentType(r) == render.ContentTypeJSON
}

// IsFormPost reports whether the request is a form submission from a page
// rather than an API call.
func IsFormPost(r *http.Request) bool {
	return render.GetRequestContentType(r) == render.ContentTypeForm && !WantsJSON(r)
}

// Board writes the board as a full page, or as its <main> element for HTMX
// requests. Nothing is written if rendering fails.
func Board(w http.ResponseWriter, r *http.Request, b BoardRenderer) error {
	var buf bytes.Buffer
	if err := b.RenderBoard(r.Context(), &buf, IsHTMXRequest(r)); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}

// Refresh answers a form post: HTMX requests get the refreshed <main>,
// plain browser posts are redirected back to the board.
func Refresh(w http.ResponseWriter, r *http.Request, b BoardRenderer) error {
	if !IsHTMXRequest(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return nil
	}
	return Board(w, r, b)
}
