package provider

import (
	"context"
	"fmt"
)

// ConfigurationError reports a consumer running without a provider in scope.
type ConfigurationError struct {
	Missing string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("theme: must be used within %s", e.Missing)
}

type contextKey struct{}

// WithProvider returns a context carrying p.
func WithProvider(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// FromContext returns the provider carried by ctx.
func FromContext(ctx context.Context) (*Provider, error) {
	if ctx != nil {
		if p, ok := ctx.Value(contextKey{}).(*Provider); ok && p != nil {
			return p, nil
		}
	}

	return nil, &ConfigurationError{Missing: "ThemeProvider"}
}

// MustFromContext is FromContext that panics with *ConfigurationError.
func MustFromContext(ctx context.Context) *Provider {
	p, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return p
}
