package static

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlerServesStyles(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/styles.css", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/css")
	assert.Contains(t, rr.Body.String(), ".activity-card")
}

func TestHandlerUnknownAsset(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/app.js", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
