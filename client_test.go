package safemocker_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Priya28092000/safemocker"
	"github.com/Priya28092000/safemocker/schema"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := safemocker.DefaultConfig()

	assert.Equal(t, "Something went wrong", cfg.DefaultServerError)
	assert.False(t, cfg.IsProduction)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, "test-user-id", cfg.Auth.TestUserID)
	assert.Equal(t, "test@example.com", cfg.Auth.TestUserEmail)
	assert.Equal(t, "test-auth-token", cfg.Auth.TestAuthToken)
}

func TestNewClient_OptionsMergeOverDefaults(t *testing.T) {
	t.Parallel()

	client := safemocker.NewClient(
		safemocker.WithDefaultServerError("boom"),
		safemocker.WithProduction(true),
	)

	cfg := client.Config()
	assert.Equal(t, "boom", cfg.DefaultServerError)
	assert.True(t, cfg.IsProduction)
	// Untouched sections keep their defaults.
	assert.Equal(t, "test-user-id", cfg.Auth.TestUserID)
}

func TestNewClient_WithConfigThenOptions(t *testing.T) {
	t.Parallel()

	cfg := safemocker.DefaultConfig()
	cfg.DefaultServerError = "from file"

	client := safemocker.NewClient(
		safemocker.WithConfig(cfg),
		safemocker.WithProduction(true),
	)

	got := client.Config()
	assert.Equal(t, "from file", got.DefaultServerError)
	assert.True(t, got.IsProduction, "options after WithConfig still apply")
}

func TestClient_UseIsFluent(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var trace []string
	mw := func(label string) safemocker.Middleware {
		return func(ctx context.Context, mc *safemocker.MiddlewareContext) (any, error) {
			mu.Lock()
			trace = append(trace, label)
			mu.Unlock()
			return mc.Next(nil)
		}
	}

	client := safemocker.NewClient().Use(mw("A")).Use(mw("B")).Use(mw("C"))
	action := client.InputSchema(schema.Any()).Action(func(ctx context.Context, in safemocker.HandlerInput) (any, error) {
		return nil, nil
	})

	require.True(t, action(context.Background(), nil).Ok())
	assert.Equal(t, []string{"A", "B", "C"}, trace)
}

func TestClient_UseNilIsNoOp(t *testing.T) {
	t.Parallel()

	client := safemocker.NewClient().Use(nil)
	action := client.InputSchema(schema.Any()).Action(func(ctx context.Context, in safemocker.HandlerInput) (any, error) {
		return "ok", nil
	})

	res := action(context.Background(), nil)
	assert.Equal(t, "ok", res.Data)
}

// The middleware registry is live: a Use call made after an action is built
// is observed by that action on its next invocation. This mirrors the
// emulated framework's aliasing and is documented on Client.
func TestClient_UseAfterBuildIsObserved(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var trace []string
	mw := func(label string) safemocker.Middleware {
		return func(ctx context.Context, mc *safemocker.MiddlewareContext) (any, error) {
			mu.Lock()
			trace = append(trace, label)
			mu.Unlock()
			return mc.Next(nil)
		}
	}

	client := safemocker.NewClient().Use(mw("early"))
	action := client.InputSchema(schema.Any()).Action(func(ctx context.Context, in safemocker.HandlerInput) (any, error) {
		return nil, nil
	})

	client.Use(mw("late"))

	require.True(t, action(context.Background(), nil).Ok())
	assert.Equal(t, []string{"early", "late"}, trace,
		"actions read the live middleware list at call time")
}
