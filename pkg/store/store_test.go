package store_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/utilkit/utilkit/pkg/store"
)

type counterAction struct {
	delta int
}

func counterReducer(state int, action counterAction) int {
	return state + action.delta
}

func TestStore(t *testing.T) {
	t.Run("holds the initial state", func(t *testing.T) {
		s := store.New(counterReducer, 10)
		assert.Equal(t, 10, s.State())
	})

	t.Run("dispatch runs the reducer", func(t *testing.T) {
		s := store.New(counterReducer, 0)
		s.Dispatch(counterAction{delta: 2})
		s.Dispatch(counterAction{delta: 3})
		assert.Equal(t, 5, s.State())
	})

	t.Run("notifies subscribers with the new state", func(t *testing.T) {
		s := store.New(counterReducer, 0)
		var seen []int
		s.Subscribe(func(state int) { seen = append(seen, state) })

		s.Dispatch(counterAction{delta: 1})
		s.Dispatch(counterAction{delta: 1})
		assert.Equal(t, []int{1, 2}, seen)
	})

	t.Run("unsubscribed listeners are not notified", func(t *testing.T) {
		s := store.New(counterReducer, 0)
		calls := 0
		unsubscribe := s.Subscribe(func(int) { calls++ })

		s.Dispatch(counterAction{delta: 1})
		unsubscribe()
		unsubscribe() // second call is harmless
		s.Dispatch(counterAction{delta: 1})

		assert.Equal(t, 1, calls)
	})

	t.Run("listeners may read the store", func(t *testing.T) {
		s := store.New(counterReducer, 0)
		var observed int
		s.Subscribe(func(int) { observed = s.State() })

		s.Dispatch(counterAction{delta: 7})
		assert.Equal(t, 7, observed)
	})

	t.Run("nil reducer panics", func(t *testing.T) {
		assert.Panics(t, func() { store.New[int, counterAction](nil, 0) })
	})

	t.Run("concurrent dispatches keep state consistent", func(t *testing.T) {
		s := store.New(counterReducer, 0)

		var wg sync.WaitGroup
		for range 100 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.Dispatch(counterAction{delta: 1})
			}()
		}
		wg.Wait()

		assert.Equal(t, 100, s.State())
	})
}
