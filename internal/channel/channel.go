package channel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	apperr "github.com/idlefit/healthstat/internal/core/errors"
)

var (
	// ErrNotImplemented is returned by handlers for methods they do not serve.
	ErrNotImplemented = errors.New("method not implemented")

	// ErrChannelNotFound is returned when no handler is registered for a channel.
	ErrChannelNotFound = errors.New("channel not found")
)

// MethodCall is one invocation on a named channel.
type MethodCall struct {
	Method    string
	Arguments any
}

// Handler serves method calls for one channel.
type Handler interface {
	HandleMethodCall(ctx context.Context, call MethodCall) (any, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, call MethodCall) (any, error)

func (f HandlerFunc) HandleMethodCall(ctx context.Context, call MethodCall) (any, error) {
	return f(ctx, call)
}

type callIDKey struct{}

// WithCallID attaches a call ID used for log correlation.
func WithCallID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, callIDKey{}, id)
}

// CallID returns the call ID attached to ctx, or "".
func CallID(ctx context.Context) string {
	id, _ := ctx.Value(callIDKey{}).(string)
	return id
}

// Registry maps channel names to handlers. Names are case-sensitive.
// Registration happens once at startup; Invoke is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register binds handler to channel name.
func (r *Registry) Register(name string, handler Handler) error {
	if name == "" {
		return fmt.Errorf("channel: name required")
	}
	if handler == nil {
		return fmt.Errorf("channel: handler required for %s", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[name]; exists {
		return fmt.Errorf("channel: %s already registered", name)
	}
	r.handlers[name] = handler
	return nil
}

// Names returns the sorted registered channel names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke dispatches call to the handler registered for name.
func (r *Registry) Invoke(ctx context.Context, name string, call MethodCall) (any, error) {
	r.mu.RLock()
	handler, ok := r.handlers[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrChannelNotFound, name)
	}

	callID := CallID(ctx)
	if callID == "" {
		callID = uuid.NewString()
		ctx = WithCallID(ctx, callID)
	}

	started := time.Now()
	result, err := handler.HandleMethodCall(ctx, call)

	attrs := []any{
		"call_id", callID,
		"channel", name,
		"method", call.Method,
		"duration", time.Since(started),
	}
	switch {
	case err == nil:
		slog.Info("[Channel] Method call resolved", attrs...)
	case errors.Is(err, ErrNotImplemented):
		slog.Warn("[Channel] Method not implemented", attrs...)
	default:
		slog.Warn("[Channel] Method call failed", append(attrs, "code", apperr.CodeOf(err), "error", err)...)
	}

	return result, err
}
