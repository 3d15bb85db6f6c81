package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return New(srv.URL+"/", srv.Client())
}

func TestActivities(t *testing.T) {
	t.Parallel()

	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/activities", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"Trail Run": {"description": "5k", "schedule": "Sat 8am", "max_participants": 10, "participants": ["a@x.io", "b@x.io", "c@x.io"]},
			"Chess Club": {"description": "Think", "max_participants": 10, "participants_count": 12},
			"Art": {"participants": "not-a-list", "participants_count": "3"},
			"Broken": null
		}`))
	})

	activities, err := client.Activities(context.Background())
	require.NoError(t, err)
	require.Len(t, activities, 4)

	names := []string{}
	for _, a := range activities {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"Trail Run", "Chess Club", "Art", "Broken"}, names, "server order is kept")

	run := activities[0]
	assert.Equal(t, "5k", run.Description)
	assert.Equal(t, "Sat 8am", run.Schedule)
	assert.True(t, run.HasParticipants)
	assert.Equal(t, 7, run.SpotsLeft())

	chess := activities[1]
	assert.Empty(t, chess.Schedule)
	assert.False(t, chess.HasParticipants)
	require.NotNil(t, chess.ParticipantsCount)
	assert.Equal(t, -2, chess.SpotsLeft())

	art := activities[2]
	assert.False(t, art.HasParticipants)
	assert.Nil(t, art.ParticipantsCount)
	assert.Zero(t, art.SpotsLeft())

	assert.Equal(t, "Broken", activities[3].Name)
}

func TestActivitiesEmptyAndNull(t *testing.T) {
	t.Parallel()

	for _, body := range []string{`{}`, `null`} {
		body := body
		t.Run(body, func(t *testing.T) {
			t.Parallel()

			client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(body))
			})

			activities, err := client.Activities(context.Background())
			require.NoError(t, err)
			assert.Empty(t, activities)
		})
	}
}

func TestActivitiesFailures(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		status  int
		body    string
		checkFn func(t *testing.T, err error)
	}{
		{
			name:   "Server error",
			status: http.StatusInternalServerError,
			body:   `{"detail": "boom"}`,
			checkFn: func(t *testing.T, err error) {
				var statusErr *StatusError
				require.True(t, errors.As(err, &statusErr))
				assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
			},
		},
		{
			name:   "Not JSON",
			status: http.StatusOK,
			body:   `<html>`,
			checkFn: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, ErrMalformedPayload))
			},
		},
		{
			name:   "Array",
			status: http.StatusOK,
			body:   `["Trail Run"]`,
			checkFn: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, ErrMalformedPayload))
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			_, err := client.Activities(context.Background())
			require.Error(t, err)
			tc.checkFn(t, err)
		})
	}
}

func TestActivitiesUnreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	client := New(srv.URL, srv.Client())
	srv.Close()

	_, err := client.Activities(context.Background())
	assert.Error(t, err)
}

func TestSignup(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		title       string
		userName    string
		status      int
		body        string
		expectPath  string
		expectQuery map[string]string
		expected    SignupResult
	}{
		{
			name:        "Success with name",
			title:       "Kayaking Trip",
			userName:    "Jane Doe",
			status:      http.StatusOK,
			body:        `{"message": "Signed up!"}`,
			expectPath:  "/activities/Kayaking%20Trip/signup",
			expectQuery: map[string]string{"email": "jane@example.com", "name": "Jane Doe"},
			expected:    SignupResult{OK: true, Status: http.StatusOK, Message: "Signed up!"},
		},
		{
			name:        "Success without name",
			title:       "A/B Testing",
			status:      http.StatusOK,
			body:        `{}`,
			expectPath:  "/activities/A%2FB%20Testing/signup",
			expectQuery: map[string]string{"email": "jane@example.com"},
			expected:    SignupResult{OK: true, Status: http.StatusOK},
		},
		{
			name:        "Detail wins",
			title:       "Trail Run",
			status:      http.StatusBadRequest,
			body:        `{"detail": "Already signed up", "message": "ignored"}`,
			expectPath:  "/activities/Trail%20Run/signup",
			expectQuery: map[string]string{"email": "jane@example.com"},
			expected:    SignupResult{Status: http.StatusBadRequest, Message: "Already signed up"},
		},
		{
			name:        "Message fallback",
			title:       "Trail Run",
			status:      http.StatusNotFound,
			body:        `{"message": "Activity not found"}`,
			expectPath:  "/activities/Trail%20Run/signup",
			expectQuery: map[string]string{"email": "jane@example.com"},
			expected:    SignupResult{Status: http.StatusNotFound, Message: "Activity not found"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, tc.expectPath, r.URL.EscapedPath())
				q := r.URL.Query()
				assert.Len(t, q, len(tc.expectQuery))
				for k, v := range tc.expectQuery {
					assert.Equal(t, v, q.Get(k))
				}
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			res, err := client.Signup(context.Background(), tc.title, "jane@example.com", tc.userName)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, res)
		})
	}
}

func TestSignupNotJSON(t *testing.T) {
	t.Parallel()

	client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("Bad Gateway"))
	})

	_, err := client.Signup(context.Background(), "Trail Run", "a@x.io", "")
	assert.True(t, errors.Is(err, ErrMalformedPayload))
}

func TestUnregister(t *testing.T) {
	t.Parallel()

	seen := make(chan *http.Request, 1)
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		seen <- r
		_, _ = w.Write([]byte(`whatever`))
	})

	res := client.Unregister(context.Background(), "Trail Run", "bob+1@example.com")
	assert.False(t, res.Failed())

	r := <-seen
	assert.Equal(t, http.MethodPost, r.Method)
	assert.Equal(t, "/activities/Trail%20Run/unregister", r.URL.EscapedPath())
	assert.Equal(t, "bob+1@example.com", r.URL.Query().Get("email"))
}

func TestUnregisterFailures(t *testing.T) {
	t.Parallel()

	rejected := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	res := rejected.Unregister(context.Background(), "Trail Run", "a@x.io")
	require.True(t, res.Failed())
	var statusErr *StatusError
	assert.True(t, errors.As(res.Err, &statusErr))

	srv := httptest.NewServer(http.NotFoundHandler())
	unreachable := New(srv.URL, srv.Client())
	srv.Close()
	assert.True(t, unreachable.Unregister(context.Background(), "Trail Run", "a@x.io").Failed())
}
