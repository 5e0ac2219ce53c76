package ravy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const defaultUserAgent = "ravy-go (github.com/ravyapi/ravy)"

// Client is an authenticated Ravy API client. It owns the token's granted
// permission snapshot and is the PermissionSource for its own guard, so
// every endpoint service hanging off it is permission-checked before any
// request is built.
//
// A Client is safe for concurrent use. The permission snapshot is read
// under a lock; refreshing it concurrently with in-flight calls is fine,
// each check simply observes whichever snapshot is visible at read time.
type Client struct {
	baseURL   string
	token     string
	userAgent string
	http      *http.Client
	log       logrus.FieldLogger
	cache     Cache
	cacheTTL  time.Duration

	mu      sync.RWMutex
	granted GrantedSet

	guard *Guard
	paths Paths

	// Endpoint services, one per resource family.
	Avatars *AvatarsService
	Guilds  *GuildsService
	Tokens  *TokensService
	URLs    *URLsService
	Users   *UsersService
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Useful for tests and proxies.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets the underlying *http.Client. Timeouts and transport
// tuning belong there, not in this package.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger sets a logger for debug-level request logging. By default
// nothing is logged.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithCache attaches a response cache for GET lookups. Entries expire
// after ttl.
func WithCache(cache Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.cacheTTL = ttl
	}
}

// WithRedisCache attaches a Redis-backed response cache for GET lookups.
//
// Example:
//
//	rdb := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	client, err := ravy.New(token, ravy.WithRedisCache(rdb, 5*time.Minute))
func WithRedisCache(client *redis.Client, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = NewRedisCache(client, "ravy:")
		c.cacheTTL = ttl
	}
}

// New creates a Client for an API token. Tokens are sent as-is when they
// already carry a scheme ("Ravy ..." or "KSoft ..."), otherwise the Ravy
// scheme is assumed.
//
// The returned client's permission snapshot is unset; call
// [Client.SyncPermissions] before the first guarded endpoint call.
func New(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, ErrTokenRequired
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Client{
		baseURL:   DefaultBaseURL,
		token:     authorizationFor(token),
		userAgent: defaultUserAgent,
		http:      &http.Client{Timeout: 30 * time.Second},
		log:       discard,
		paths:     NewPaths(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.guard = NewGuard(c)

	c.Avatars = &AvatarsService{client: c}
	c.Guilds = &GuildsService{client: c}
	c.Tokens = &TokensService{client: c}
	c.URLs = &URLsService{client: c}
	c.Users = &UsersService{client: c}

	return c, nil
}

func authorizationFor(token string) string {
	if strings.HasPrefix(token, "Ravy ") || strings.HasPrefix(token, "KSoft ") {
		return token
	}
	return "Ravy " + token
}

// GrantedPermissions returns the current permission snapshot. It
// implements PermissionSource for the client's own guard.
func (c *Client) GrantedPermissions() GrantedSet {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.granted
}

// SyncPermissions fetches the current token's granted permissions and
// replaces the snapshot. It must run once before the first guarded call;
// afterwards it is an explicit refresh, never an implicit per-call fetch.
func (c *Client) SyncPermissions(ctx context.Context) error {
	info, err := c.Tokens.Current(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.granted = NewGrantedSet(info.Access)
	c.mu.Unlock()

	c.log.WithField("permissions", len(info.Access)).Debug("permission snapshot synced")
	return nil
}

// Paths returns the route path builder the client uses.
func (c *Client) Paths() Paths {
	return c.paths
}

// do performs one API request. GET responses are served from and stored
// into the cache when one is configured.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	cacheable := c.cache != nil && method == http.MethodGet && out != nil
	return c.roundTrip(ctx, method, path, query, body, out, cacheable)
}

// doFresh is do without cache participation. The permission bootstrap
// uses it: an explicit refresh must always observe the API, otherwise a
// configured cache would freeze grant changes until its TTL expired.
func (c *Client) doFresh(ctx context.Context, method, path string, query url.Values, body, out any) error {
	return c.roundTrip(ctx, method, path, query, body, out, false)
}

// roundTrip issues one request. Relative paths are joined onto the base
// URL; absolute ones (the avatars route) are used verbatim.
func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body, out any, cacheable bool) error {
	full := path
	if !strings.HasPrefix(full, "http://") && !strings.HasPrefix(full, "https://") {
		full = c.baseURL + full
	}
	if len(query) > 0 {
		full += "?" + query.Encode()
	}

	if cacheable {
		cached, ok, err := c.cache.Get(ctx, full)
		if err != nil {
			c.log.WithError(err).Warn("cache read failed")
		} else if ok {
			c.log.WithField("url", full).Debug("cache hit")
			return json.Unmarshal(cached, out)
		}
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("ravy: encoding request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, full, reader)
	if err != nil {
		return fmt.Errorf("ravy: building request: %w", err)
	}

	requestID := GetRequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	req.Header.Set("Authorization", c.token)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.WithFields(logrus.Fields{
		"method":     method,
		"url":        full,
		"request_id": requestID,
	}).Debug("request")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ravy: reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("ravy: decoding response body: %w", err)
		}
	}

	if cacheable {
		if err := c.cache.Set(ctx, full, raw, c.cacheTTL); err != nil {
			c.log.WithError(err).Warn("cache write failed")
		}
	}

	return nil
}

func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	message := http.StatusText(status)
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			message = payload.Error
		}
		if payload.Details != "" {
			message += ": " + payload.Details
		}
	}
	return &APIError{Status: status, Message: message}
}
