package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microblog/internal/apierrors"
	"microblog/internal/model"
	"microblog/internal/testutil"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *SessionStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	session := NewSessionStore(t.TempDir())
	return New(srv.URL, session, testutil.MakeNoopLogger()), session
}

func TestClient_Login_PersistsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ana@x.com", req["email"])
		assert.Equal(t, "secret", req["password"])

		_ = json.NewEncoder(w).Encode(model.Identity{ID: 3, Name: "Ana", Email: "ana@x.com"})
	})

	c, session := newTestClient(t, mux)

	identity, err := c.Login(context.Background(), "ana@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(3), identity.ID)

	held := c.Identity()
	require.NotNil(t, held)
	assert.Equal(t, identity, *held)

	// a fresh client over the same store picks the session back up
	restored := New("http://unused", session, testutil.MakeNoopLogger())
	require.NotNil(t, restored.Identity())
	assert.Equal(t, identity, *restored.Identity())
}

func TestClient_Login_InvalidEmailSkipsNetwork(t *testing.T) {
	called := false
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	_, err := c.Login(context.Background(), "not-an-email", "secret")

	assert.ErrorIs(t, err, ErrInvalidEmail)
	assert.False(t, called)
	assert.Nil(t, c.Identity())
}

func TestClient_Login_WrongPassword(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"incorrect password"}`))
	}))

	_, err := c.Login(context.Background(), "ana@x.com", "wrong")

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.HTTPCode)
	assert.Equal(t, "incorrect password", apiErr.Message)
	assert.Nil(t, c.Identity())
}

func TestClient_Signup_PersistsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/signup", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		_ = json.NewEncoder(w).Encode(model.Identity{ID: 5, Name: "Bo", Email: "bo@x.com"})
	})

	c, session := newTestClient(t, mux)

	identity, err := c.Signup(context.Background(), "Bo", "bo@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(5), identity.ID)
	require.NotNil(t, session.Load())
}

func TestClient_Logout_ClearsSession(t *testing.T) {
	c, session := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	require.NoError(t, session.Save(model.Identity{ID: 1, Name: "Ana", Email: "ana@x.com"}))
	c.identity = session.Load()

	require.NoError(t, c.Logout())

	assert.Nil(t, c.Identity())
	assert.Nil(t, session.Load())
}

func TestClient_Refresh_ReplacesFeed(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		_, _ = w.Write([]byte(`[
			{"id":2,"content":"second","created_at":"2024-05-01T12:01:00Z","author":1,"author_name":"Ana","author_email":"ana@x.com"},
			{"id":1,"content":"first","created_at":"2024-05-01T12:00:00Z","author":1,"author_name":"Ana","author_email":"ana@x.com"}
		]`))
	})

	c, _ := newTestClient(t, mux)

	require.NoError(t, c.Refresh(context.Background()))

	feed := c.Feed()
	require.Len(t, feed, 2)
	assert.Equal(t, int64(2), feed[0].ID)
	assert.Equal(t, "Ana", feed[0].AuthorName)
	assert.Equal(t, int64(1), feed[1].ID)
}

func TestClient_CreatePost_NotLoggedIn(t *testing.T) {
	called := false
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	_, err := c.CreatePost(context.Background(), "hi")

	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.False(t, called)
}

func TestClient_CreatePost_PrependsConfirmedPost(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hi", req["value"])
		assert.Equal(t, float64(3), req["userId"])

		_, _ = w.Write([]byte(`{"id":9,"content":"hi","created_at":"2024-05-01T12:02:00Z","author":3}`))
	})

	c, _ := newTestClient(t, mux)
	c.identity = &model.Identity{ID: 3, Name: "Ana", Email: "ana@x.com"}
	c.feed = makeFeed(2, 1)

	post, err := c.CreatePost(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, int64(9), post.ID)
	assert.Equal(t, "Ana", post.AuthorName)
	assert.Equal(t, "ana@x.com", post.AuthorEmail)

	assert.Equal(t, []int64{9, 2, 1}, feedIDs(c.Feed()))
}

func TestClient_CreatePost_FailureLeavesFeedUntouched(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
	}))
	c.identity = &model.Identity{ID: 3, Name: "Ana", Email: "ana@x.com"}
	c.feed = makeFeed(2, 1)

	_, err := c.CreatePost(context.Background(), "hi")

	require.Error(t, err)
	assert.Equal(t, []int64{2, 1}, feedIDs(c.Feed()))
}

func TestClient_DeletePost_RemovesConfirmedPost(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, float64(2), req["postId"])
		assert.Equal(t, float64(3), req["userId"])

		_, _ = w.Write([]byte(`{"success":true}`))
	})

	c, _ := newTestClient(t, mux)
	c.identity = &model.Identity{ID: 3, Name: "Ana", Email: "ana@x.com"}
	c.feed = makeFeed(3, 2, 1)

	require.NoError(t, c.DeletePost(context.Background(), 2))

	assert.Equal(t, []int64{3, 1}, feedIDs(c.Feed()))
}

func TestClient_DeletePost_NotOwnerLeavesFeedUntouched(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"post not found or does not belong to the user"}`))
	}))
	c.identity = &model.Identity{ID: 3, Name: "Ana", Email: "ana@x.com"}
	c.feed = makeFeed(3, 2, 1)

	err := c.DeletePost(context.Background(), 2)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.HTTPCode)
	assert.Equal(t, []int64{3, 2, 1}, feedIDs(c.Feed()))
}

func TestClient_BadGatewayIsRetryable(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	err := c.Refresh(context.Background())

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.HTTPCode)
}

func TestClient_ErrorBodyWithoutMessageFallsBackToStatusText(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	err := c.Refresh(context.Background())

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), apiErr.Message)
}
