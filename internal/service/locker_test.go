package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamLocker(t *testing.T) {
	t.Run("операции над одной командой сериализуются", func(t *testing.T) {
		locker := newTeamLocker()

		const workers = 50
		counter := 0
		var wg sync.WaitGroup

		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock := locker.Lock("team-1")
				defer unlock()
				// Небезопасный инкремент остается корректным только под замком
				counter++
			}()
		}
		wg.Wait()

		assert.Equal(t, workers, counter)
	})

	t.Run("разные команды не блокируют друг друга", func(t *testing.T) {
		locker := newTeamLocker()

		unlockA := locker.Lock("team-a")
		defer unlockA()

		// не блокируется, пока team-a под замком (иначе тест зависнет)
		unlockB := locker.Lock("team-b")
		unlockB()
	})

	t.Run("записи освобождаются после снятия последнего замка", func(t *testing.T) {
		locker := newTeamLocker()

		unlock := locker.Lock("team-1")
		unlock()

		locker.mu.Lock()
		defer locker.mu.Unlock()
		require.Empty(t, locker.locks, "карта замков не должна расти после освобождения")
	})
}
