package schema_registry

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func delayed[T any](d time.Duration, value T, err error) endpointCall[T] {
	return func(ctx context.Context) (T, error) {
		select {
		case <-time.After(d):
			return value, err
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
}

func TestRaceSingleSuccess(t *testing.T) {
	value, err := race(context.Background(), []endpointCall[int]{
		delayed(0, 42, nil),
	})
	require.NoError(t, err)
	assert.Equal(t, 42, value)
}

func TestRaceFastestSuccessWins(t *testing.T) {
	start := time.Now()
	value, err := race(context.Background(), []endpointCall[string]{
		delayed(50*time.Millisecond, "slow", nil),
		delayed(10*time.Millisecond, "fast", nil),
	})
	require.NoError(t, err)
	assert.Equal(t, "fast", value)
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestRaceSuccessBeatsEarlierFailure(t *testing.T) {
	value, err := race(context.Background(), []endpointCall[string]{
		delayed(0, "", errors.New("down")),
		delayed(20*time.Millisecond, "up", nil),
	})
	require.NoError(t, err)
	assert.Equal(t, "up", value)
}

func TestRaceAllFailReturnsLastError(t *testing.T) {
	first := errors.New("first")
	last := errors.New("last")

	_, err := race(context.Background(), []endpointCall[int]{
		delayed(50*time.Millisecond, 0, last),
		delayed(10*time.Millisecond, 0, first),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, last)
}

func TestRaceEmpty(t *testing.T) {
	_, err := race[int](context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoEndpoints)
}

func TestRaceCancelsLosers(t *testing.T) {
	var cancelled atomic.Bool
	done := make(chan struct{})

	loser := func(ctx context.Context) (int, error) {
		defer close(done)
		<-ctx.Done()
		cancelled.Store(true)
		return 0, ctx.Err()
	}

	value, err := race(context.Background(), []endpointCall[int]{
		loser,
		delayed(0, 1, nil),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, value)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("losing call was not cancelled")
	}
	assert.True(t, cancelled.Load())
}
