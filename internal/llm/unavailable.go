package llm

import "context"

// unavailableProvider fails every generation call with the configuration
// error that prevented a real provider from being built. It lets the
// application start without a credential: callers with a fallback degrade
// to it, callers without one surface the original error.
type unavailableProvider struct {
	err error
}

// NewUnavailableProvider wraps a construction error as a Provider.
func NewUnavailableProvider(err error) Provider {
	return unavailableProvider{err: err}
}

func (p unavailableProvider) Generate(context.Context, Request) (*Response, error) {
	return nil, p.err
}

func (p unavailableProvider) ModelID() string {
	return "unavailable"
}
