package list

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := NewContext(context.Background(), s)
	got, err := FromContext(ctx)
	require.NoError(t, err)
	require.Same(t, s, got)
	require.Same(t, s, MustFromContext(ctx))
}

func TestFromContextWithoutStore(t *testing.T) {
	t.Parallel()

	_, err := FromContext(context.Background())
	require.ErrorIs(t, err, ErrNoStore)
	require.True(t, IsContractViolation(err))

	_, err = FromContext(NewContext(context.Background(), nil))
	require.ErrorIs(t, err, ErrNoStore)

	_, err = FromContext(NewContext(context.Background(), &Store{}))
	require.ErrorIs(t, err, ErrNotInitialized)

	require.Panics(t, func() { MustFromContext(context.Background()) })
}

func TestIsContractViolationIgnoresOtherErrors(t *testing.T) {
	t.Parallel()

	require.False(t, IsContractViolation(nil))
	require.False(t, IsContractViolation(context.Canceled))
}
