package getBoard

import (
	"activityBoard/internal/http-server/htmx"
	"activityBoard/internal/http-server/htmx/mocks"
	"activityBoard/internal/lib/logger/handlers/slogdiscard"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetBoardHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		htmx           bool
		mockSetup      func(m *mocks.BoardRenderer)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Full page",
			mockSetup: func(m *mocks.BoardRenderer) {
				m.On("RenderBoard", mock.Anything, mock.Anything, false).
					Run(func(args mock.Arguments) {
						_, _ = io.WriteString(args.Get(1).(io.Writer), "<!DOCTYPE html><html></html>")
					}).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "<!DOCTYPE html><html></html>",
		},
		{
			name: "HTMX fragment",
			htmx: true,
			mockSetup: func(m *mocks.BoardRenderer) {
				m.On("RenderBoard", mock.Anything, mock.Anything, true).
					Run(func(args mock.Arguments) {
						_, _ = io.WriteString(args.Get(1).(io.Writer), `<main id="board"></main>`)
					}).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `<main id="board"></main>`,
		},
		{
			name: "Render error",
			mockSetup: func(m *mocks.BoardRenderer) {
				m.On("RenderBoard", mock.Anything, mock.Anything, false).Return(errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "failed to render board\n",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			board := mocks.NewBoardRenderer(t)
			tc.mockSetup(board)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.htmx {
				req.Header.Set(htmx.RequestHeaderKey, "true")
			}
			rr := httptest.NewRecorder()

			New(logger, board).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Equal(t, tc.expectedBody, rr.Body.String())
		})
	}
}
