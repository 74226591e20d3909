package stdmap

import "sync"

var (
	once     sync.Once
	instance *StdMap
)

// Shared returns the standard board, built once and cached. Callers must
// not mutate the returned map; every caller in a process shares it.
func Shared() *StdMap {
	once.Do(func() {
		instance = Standard()
	})
	return instance
}
