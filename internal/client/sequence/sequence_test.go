package sequence

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryControl - ControlStore в памяти
type memoryControl struct {
	values  map[string]int64
	failSet bool
}

func (m *memoryControl) ControlValue(_ context.Context, key string) (int64, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memoryControl) SetControlValue(_ context.Context, key string, value int64) error {
	if m.failSet {
		return errors.New("disk full")
	}
	m.values[key] = value
	return nil
}

func TestCounter_Next(t *testing.T) {
	tests := []struct {
		name          string
		persisted     int64
		serverCounter int64
		expected      int64
	}{
		{"Fresh store", 0, 0, 1},
		{"Local ahead of server", 10, 3, 11},
		{"Server ahead of local", 10, 25, 26},
		{"Equal counters", 7, 7, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memoryControl{values: map[string]int64{ControlKey: tt.persisted}}
			c := New()

			got, err := c.Next(context.Background(), store, tt.serverCounter)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.expected, store.values[ControlKey], "counter should be persisted")
			assert.Equal(t, tt.expected, c.Current())
		})
	}
}

func TestCounter_Next_Monotonicity(t *testing.T) {
	store := &memoryControl{values: map[string]int64{}}
	c := New()
	ctx := context.Background()

	var previous int64
	for i := 0; i < 50; i++ {
		// сервер иногда отстает, иногда опережает
		server := int64(0)
		if i%10 == 0 {
			server = previous + 5
		}
		current, err := c.Next(ctx, store, server)
		require.NoError(t, err)
		assert.Greater(t, current, previous, "Next should always increase")
		previous = current
	}
}

func TestCounter_Next_SaveError(t *testing.T) {
	store := &memoryControl{values: map[string]int64{ControlKey: 4}, failSet: true}
	c := New()

	_, err := c.Next(context.Background(), store, 0)
	require.Error(t, err)

	// после сбоя значение перечитывается из хранилища
	store.failSet = false
	got, err := c.Next(context.Background(), store, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got)
}

func TestCounter_Reset(t *testing.T) {
	store := &memoryControl{values: map[string]int64{}}
	c := New()

	_, err := c.Next(context.Background(), store, 100)
	require.NoError(t, err)

	c.Reset()
	store.values = map[string]int64{}
	assert.Equal(t, int64(0), c.Current())

	got, err := c.Next(context.Background(), store, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestCounter_Concurrency(t *testing.T) {
	store := &lockedControl{memoryControl: memoryControl{values: map[string]int64{}}}
	c := New()

	const goroutines = 20
	results := make(chan int64, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.Next(context.Background(), store, 0)
			assert.NoError(t, err)
			results <- v
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int64]bool)
	for v := range results {
		assert.False(t, seen[v], "duplicate number %d", v)
		seen[v] = true
	}
	assert.Len(t, seen, goroutines)
}

type lockedControl struct {
	memoryControl
	mu sync.Mutex
}

func (l *lockedControl) ControlValue(ctx context.Context, key string) (int64, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.memoryControl.ControlValue(ctx, key)
}

func (l *lockedControl) SetControlValue(ctx context.Context, key string, value int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.memoryControl.SetControlValue(ctx, key, value)
}
