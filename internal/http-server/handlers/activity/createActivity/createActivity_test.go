package createActivity

import (
	"activityBoard/internal/controller"
	"activityBoard/internal/http-server/handlers/activity/createActivity/mocks"
	"activityBoard/internal/http-server/htmx"
	htmxmocks "activityBoard/internal/http-server/htmx/mocks"
	"activityBoard/internal/lib/logger/handlers/slogdiscard"
	"activityBoard/internal/models"
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateActivityHandlerJSON(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.ActivityCreator)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: `{"title":"Board Games","description":"Bring snacks","participants":"Ann, Bo"}`,
			mockSetup: func(m *mocks.ActivityCreator) {
				m.On("AddActivity", mock.Anything, controller.NewActivityForm{
					Title: "Board Games", Description: "Bring snacks", Participants: "Ann, Bo",
				}).Return(models.Activity{
					ID: "abc", Title: "Board Games", Description: "Bring snacks", Participants: []string{"Ann", "Bo"},
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody: `{"status":"OK","activity":{"id":"abc","title":"Board Games",` +
				`"description":"Bring snacks","participants":["Ann","Bo"]}}`,
		},
		{
			name:        "Empty form is accepted",
			requestBody: `{}`,
			mockSetup: func(m *mocks.ActivityCreator) {
				m.On("AddActivity", mock.Anything, controller.NewActivityForm{}).
					Return(models.Activity{ID: "x", Title: "Untitled", Participants: []string{}}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"status":"OK","activity":{"id":"x","title":"Untitled","description":"","participants":[]}}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `{`,
			mockSetup:      func(m *mocks.ActivityCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Title too long",
			requestBody:    fmt.Sprintf(`{"title":%q}`, strings.Repeat("a", 201)),
			mockSetup:      func(m *mocks.ActivityCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Title is not valid"}`,
		},
		{
			name:        "Form not mounted",
			requestBody: `{"title":"Board Games"}`,
			mockSetup: func(m *mocks.ActivityCreator) {
				m.On("AddActivity", mock.Anything, controller.NewActivityForm{Title: "Board Games"}).
					Return(models.Activity{}, fmt.Errorf("controller.AddActivity: %w", controller.ErrNotMounted))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"new activity form is not available"}`,
		},
		{
			name:        "Internal error",
			requestBody: `{"title":"Board Games"}`,
			mockSetup: func(m *mocks.ActivityCreator) {
				m.On("AddActivity", mock.Anything, controller.NewActivityForm{Title: "Board Games"}).
					Return(models.Activity{}, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to add activity"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			creator := mocks.NewActivityCreator(t)
			tc.mockSetup(creator)

			req, err := http.NewRequest(http.MethodPost, "/activities", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Accept", "application/json")

			rr := httptest.NewRecorder()
			New(logger, creator, htmxmocks.NewBoardRenderer(t)).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}

func TestCreateActivityHandlerForm(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	creator := mocks.NewActivityCreator(t)
	creator.On("AddActivity", mock.Anything, controller.NewActivityForm{
		Title: "Picnic", Description: "", Participants: "Ann",
	}).Return(models.Activity{ID: "p", Title: "Picnic"}, nil).Once()

	renderer := htmxmocks.NewBoardRenderer(t)
	renderer.On("RenderBoard", mock.Anything, mock.Anything, true).
		Run(func(args mock.Arguments) {
			_, _ = io.WriteString(args.Get(1).(io.Writer), "<main></main>")
		}).
		Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/activities",
		bytes.NewBufferString("title=Picnic&description=&participants=Ann"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(htmx.RequestHeaderKey, "true")

	rr := httptest.NewRecorder()
	New(logger, creator, renderer).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "<main></main>", rr.Body.String())
}
