package service

import "sync"

// teamLocker сериализует мутации по id команды: цикл "загрузить - проверить -
// записать" выполняется атомарно относительно других операций над той же
// командой. Операции над разными командами друг друга не блокируют.
type teamLocker struct {
	mu    sync.Mutex
	locks map[string]*teamLock
}

type teamLock struct {
	mu   sync.Mutex
	refs int
}

func newTeamLocker() *teamLocker {
	return &teamLocker{locks: make(map[string]*teamLock)}
}

// Lock захватывает мьютекс команды и возвращает функцию освобождения.
// Записи удаляются из карты, когда последний владелец отпускает замок,
// поэтому карта не растет после удаления команд.
func (l *teamLocker) Lock(teamID string) (unlock func()) {
	l.mu.Lock()
	entry, ok := l.locks[teamID]
	if !ok {
		entry = &teamLock{}
		l.locks[teamID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, teamID)
		}
		l.mu.Unlock()
	}
}
