package safemocker

import (
	"github.com/charmbracelet/log"

	"github.com/Priya28092000/safemocker/schema"
)

// Client owns the resolved configuration and the middleware registry, and
// acts as the factory for action builders.
//
// The middleware registry is a live, append-only list: every action built
// from a client reads the list at invocation time, not at build time, so a
// Use call made after an action was built is still observed by that action.
// This aliasing matches the emulated framework and is intentional; keep all
// Use calls ahead of InputSchema in tests that care about ordering.
type Client struct {
	cfg         Config
	middlewares []Middleware
	logger      *log.Logger
}

// Option configures a Client at construction time. Supplied options are
// merged over the documented defaults; nothing is validated, so a malformed
// combination is accepted as-is like the emulated framework accepts a
// malformed config object.
type Option func(*Client)

// WithDefaultServerError overrides the message reported for runtime
// failures when the real message is unavailable or suppressed.
func WithDefaultServerError(msg string) Option {
	return func(c *Client) { c.cfg.DefaultServerError = msg }
}

// WithProduction toggles production mode. In production every runtime
// failure reports the default server error, never the real message.
func WithProduction(on bool) Option {
	return func(c *Client) { c.cfg.IsProduction = on }
}

// WithAuth overrides the test identity used by the auth middleware.
func WithAuth(auth AuthConfig) Option {
	return func(c *Client) { c.cfg.Auth = auth }
}

// WithConfig replaces the whole resolved configuration, e.g. one loaded
// from a safemocker.toml file. Later options still apply on top.
func WithConfig(cfg Config) Option {
	return func(c *Client) { c.cfg = cfg }
}

// WithLogger attaches a charmbracelet/log Logger. When set, the engine
// traces each invocation phase at debug level. When nil the engine is
// silent.
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a client with the documented defaults, then applies
// opts in order.
func NewClient(opts ...Option) *Client {
	c := &Client{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns the resolved client configuration.
func (c *Client) Config() Config { return c.cfg }

// Use appends mw to the middleware registry and returns the same client so
// registrations chain fluently. Middleware run in registration order.
// Actions already built from this client observe the appended middleware on
// their next invocation (live list, documented above). Registering nil is a
// no-op so optional middleware can be wired conditionally.
func (c *Client) Use(mw Middleware) *Client {
	if mw == nil {
		return c
	}
	c.middlewares = append(c.middlewares, mw)
	return c
}

// UseAuth registers the built-in auth middleware configured from this
// client's AuthConfig. Shorthand for c.Use(AuthMiddleware(c.Config().Auth)).
func (c *Client) UseAuth() *Client {
	return c.Use(AuthMiddleware(c.cfg.Auth))
}

// InputSchema starts a new action chain validating raw input against s.
// The returned builder snapshots the client configuration but shares the
// live middleware list.
func (c *Client) InputSchema(s schema.Schema) ActionBuilder {
	return ActionBuilder{client: c, inputSchema: s}
}
