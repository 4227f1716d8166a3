package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"microblog/internal/apierrors"
	"microblog/internal/logger"
	"microblog/internal/model"
)

var (
	// ErrNotLoggedIn is returned when an operation requires an identity
	// and none is held. No network call is made in that case.
	ErrNotLoggedIn = errors.New("please log in first")
	// ErrInvalidEmail is returned before any network call when the email
	// does not look like an address.
	ErrInvalidEmail = errors.New("invalid email address")
)

// Client holds the session state for one user of the posting service:
// the last-authenticated identity (persisted across restarts) and a
// local mirror of the post feed, reconciled optimistically against
// confirmed server responses.
type Client struct {
	baseURL  string
	http     *http.Client
	session  *SessionStore
	identity *model.Identity
	feed     []model.PostWithAuthor
	validate *validator.Validate
	logger   *logger.Logger
}

// New creates a Client against baseURL, rehydrating any persisted
// session. A corrupt session entry starts the client unauthenticated.
func New(baseURL string, session *SessionStore, logger *logger.Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		http:     &http.Client{},
		session:  session,
		identity: session.Load(),
		validate: validator.New(),
		logger:   logger,
	}
}

// Identity returns the held identity record, or nil when not logged in.
func (c *Client) Identity() *model.Identity {
	if c.identity == nil {
		return nil
	}
	identity := *c.identity
	return &identity
}

// Feed returns a copy of the locally known post list.
func (c *Client) Feed() []model.PostWithAuthor {
	out := make([]model.PostWithAuthor, len(c.feed))
	copy(out, c.feed)
	return out
}

// Refresh replaces the local feed with the server's current list.
func (c *Client) Refresh(ctx context.Context) error {
	var posts []model.PostWithAuthor
	if err := c.do(ctx, http.MethodGet, "/api", nil, &posts); err != nil {
		return fmt.Errorf("failed to fetch posts: %w", err)
	}

	c.feed = posts
	c.logger.Debug("client: feed refreshed", "count", len(posts))
	return nil
}

// Login authenticates and replaces the held identity wholesale.
func (c *Client) Login(ctx context.Context, email, password string) (model.Identity, error) {
	if err := c.validate.Var(email, "required,email"); err != nil {
		return model.Identity{}, ErrInvalidEmail
	}

	var identity model.Identity
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &identity); err != nil {
		return model.Identity{}, fmt.Errorf("login failed: %w", err)
	}

	c.identity = &identity
	if err := c.session.Save(identity); err != nil {
		return model.Identity{}, fmt.Errorf("failed to persist session: %w", err)
	}

	c.logger.Info("client: logged in", "user_id", identity.ID)
	return identity, nil
}

// Signup registers and replaces the held identity wholesale.
func (c *Client) Signup(ctx context.Context, name, email, password string) (model.Identity, error) {
	if err := c.validate.Var(email, "required,email"); err != nil {
		return model.Identity{}, ErrInvalidEmail
	}

	var identity model.Identity
	body := map[string]string{"name": name, "email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", body, &identity); err != nil {
		return model.Identity{}, fmt.Errorf("signup failed: %w", err)
	}

	c.identity = &identity
	if err := c.session.Save(identity); err != nil {
		return model.Identity{}, fmt.Errorf("failed to persist session: %w", err)
	}

	c.logger.Info("client: signed up", "user_id", identity.ID)
	return identity, nil
}

// Logout clears the held identity in memory and on disk.
func (c *Client) Logout() error {
	c.identity = nil
	if err := c.session.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	c.logger.Info("client: logged out")
	return nil
}

// CreatePost submits a post and, once the server confirms it, prepends
// it to the local feed with the session's author fields filled in.
func (c *Client) CreatePost(ctx context.Context, content string) (model.PostWithAuthor, error) {
	if c.identity == nil {
		return model.PostWithAuthor{}, ErrNotLoggedIn
	}

	var post model.Post
	body := map[string]any{"value": content, "userId": c.identity.ID}
	if err := c.do(ctx, http.MethodPost, "/api", body, &post); err != nil {
		return model.PostWithAuthor{}, fmt.Errorf("failed to create post: %w", err)
	}

	withAuthor := model.PostWithAuthor{
		Post:        post,
		AuthorName:  c.identity.Name,
		AuthorEmail: c.identity.Email,
	}
	c.feed = prependPost(c.feed, withAuthor)

	c.logger.Info("client: post created", "post_id", post.ID)
	return withAuthor, nil
}

// DeletePost deletes an owned post and, once the server confirms it,
// removes it from the local feed.
func (c *Client) DeletePost(ctx context.Context, postID int64) error {
	if c.identity == nil {
		return ErrNotLoggedIn
	}

	body := map[string]any{"postId": postID, "userId": c.identity.ID}
	if err := c.do(ctx, http.MethodDelete, "/api", body, nil); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	c.feed = removePost(c.feed, postID)

	c.logger.Info("client: post deleted", "post_id", postID)
	return nil
}

// do performs one JSON request/response cycle and maps failure statuses
// onto the API error taxonomy. A 502 from an intermediary is surfaced
// as a retryable unavailability, distinct from a hard 500.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusBadGateway {
			return apierrors.NewErrUpstreamUnavailable()
		}
		var errResp struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr != nil || errResp.Error == "" {
			errResp.Error = http.StatusText(resp.StatusCode)
		}
		return &apierrors.APIError{HTTPCode: resp.StatusCode, Message: errResp.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
