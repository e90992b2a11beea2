// Package dockerhub implements the registry client against Docker Hub.
package dockerhub

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/ascensive/stevedore/pkg/domain/interfaces"
	"github.com/ascensive/stevedore/pkg/domain/model"
	"github.com/ascensive/stevedore/pkg/domain/types"
	"github.com/ascensive/stevedore/pkg/infra/build"
)

const (
	defaultAPIBase = "https://hub.docker.com"
	defaultEngine  = "docker"

	loginTimeout = 30 * time.Second
)

// Client talks to Docker Hub. Authentication goes through the Hub API
// (token exchange) plus an engine login; pushes go through the engine.
type Client struct {
	httpClient *http.Client
	runner     *build.Runner
	apiBase    string
	engine     string
}

// Option is a functional option for Client configuration
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for the Hub API
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithAPIBase sets the Hub API base URL
func WithAPIBase(base string) Option {
	return func(c *Client) {
		c.apiBase = strings.TrimSuffix(base, "/")
	}
}

// WithEngine sets the container engine binary (default "docker")
func WithEngine(engine string) Option {
	return func(c *Client) {
		c.engine = engine
	}
}

// NewClient creates a Docker Hub client
func NewClient(runner *build.Runner, opts ...Option) interfaces.RegistryClient {
	c := &Client{
		httpClient: &http.Client{Timeout: loginTimeout},
		runner:     runner,
		apiBase:    defaultAPIBase,
		engine:     defaultEngine,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Authenticate exchanges the credential for an authenticated session.
// It validates the credential against the Hub API and logs the engine
// into the registry. An empty or rejected credential fails with an
// authentication error before any push can happen.
func (c *Client) Authenticate(ctx context.Context, cred model.Credential) (*model.Session, error) {
	logger := ctxlog.From(ctx)

	if cred.IsEmpty() {
		return nil, goerr.New("registry credential is empty", goerr.T(types.ErrTagAuth))
	}

	body, err := json.Marshal(loginRequest{Username: cred.Username, Password: cred.Token})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode login request", goerr.T(types.ErrTagAuth))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+"/v2/users/login", bytes.NewReader(body))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create login request", goerr.T(types.ErrTagAuth))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "registry login request failed", goerr.T(types.ErrTagAuth))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, goerr.New("registry rejected credential",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(raw)),
			goerr.T(types.ErrTagAuth),
		)
	}

	var loginResp loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		return nil, goerr.Wrap(err, "failed to decode login response", goerr.T(types.ErrTagAuth))
	}
	if loginResp.Token == "" {
		return nil, goerr.New("registry returned empty session token", goerr.T(types.ErrTagAuth))
	}

	sess := &model.Session{
		Username: cred.Username,
		Token:    loginResp.Token,
		IssuedAt: time.Now(),
	}

	// The session token is a JWT; its exp claim bounds the session.
	if tok, err := jwt.Parse([]byte(loginResp.Token), jwt.WithVerify(false), jwt.WithValidate(false)); err == nil {
		sess.ExpiresAt = tok.Expiration()
	}

	// Engine login so the subsequent push is authenticated.
	if out, err := c.runner.RunInput(ctx, cred.Token, c.engine, "login", "--username", cred.Username, "--password-stdin"); err != nil {
		return nil, goerr.Wrap(err, "engine login failed",
			goerr.V("output", out),
			goerr.T(types.ErrTagAuth),
		)
	}

	logger.Info("authenticated with registry",
		"username", sess.Username,
		"expires_at", sess.ExpiresAt,
	)

	return sess, nil
}

// Push publishes the built image under tag. The registry mutates on
// success; a failed push is surfaced directly with no retry and no
// partial-publish cleanup.
func (c *Client) Push(ctx context.Context, sess *model.Session, tag model.ImageTag) (*model.Receipt, error) {
	logger := ctxlog.From(ctx)

	if sess == nil {
		return nil, goerr.New("push requires an authenticated session", goerr.T(types.ErrTagPush))
	}

	out, err := c.runner.Run(ctx, c.engine, "push", tag.String())
	if err != nil {
		return nil, goerr.Wrap(err, "image push failed",
			goerr.V("tag", tag.String()),
			goerr.V("output", out),
			goerr.T(types.ErrTagPush),
		)
	}

	receipt := &model.Receipt{
		ID:       uuid.NewString(),
		Tag:      tag,
		Digest:   parseDigest(out),
		PushedAt: time.Now(),
	}

	logger.Info("pushed image",
		"tag", tag.String(),
		"digest", receipt.Digest,
		"receipt_id", receipt.ID,
	)

	return receipt, nil
}

// parseDigest extracts the manifest digest from push output, e.g.
// "latest: digest: sha256:abc... size: 1234". Returns "" when the
// engine did not report one.
func parseDigest(out string) string {
	for _, line := range strings.Split(out, "\n") {
		idx := strings.Index(line, "digest: ")
		if idx < 0 {
			continue
		}
		rest := line[idx+len("digest: "):]
		if fields := strings.Fields(rest); len(fields) > 0 && strings.HasPrefix(fields[0], "sha256:") {
			return fields[0]
		}
	}
	return ""
}
