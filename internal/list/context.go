package list

import "context"

type storeKey struct{}

// NewContext returns a copy of ctx that carries s.
func NewContext(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, storeKey{}, s)
}

// FromContext returns the Store carried by ctx. A missing or uninitialized
// store is a contract violation.
func FromContext(ctx context.Context) (*Store, error) {
	if ctx == nil {
		return nil, contractErr("FromContext", ErrNoStore)
	}
	s, ok := ctx.Value(storeKey{}).(*Store)
	if !ok || s == nil {
		return nil, contractErr("FromContext", ErrNoStore)
	}
	if !s.initialized() {
		return nil, contractErr("FromContext", ErrNotInitialized)
	}
	return s, nil
}

// MustFromContext is FromContext for callers that cannot continue without a
// store. It panics with the contract error.
func MustFromContext(ctx context.Context) *Store {
	s, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return s
}
