package usecase

import "sync"

const cacheGuardStripes = 256

// cacheGuard не даёт фоновому заполнению кэша записать карточку, инвалидированную
// после её чтения из БД. Ключи делят фиксированное число полос: совпадение полос
// только пропускает заполнение.
type cacheGuard struct {
	stripes [cacheGuardStripes]guardStripe
}

type guardStripe struct {
	mu  sync.Mutex
	gen uint64
}

func (g *cacheGuard) stripe(id int64) *guardStripe {
	return &g.stripes[uint64(id)%cacheGuardStripes]
}

// generation возвращает поколение, которое нужно запомнить до чтения из БД.
func (g *cacheGuard) generation(id int64) uint64 {
	s := g.stripe(id)
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.gen
}

// bump вызывается перед удалением карточки из кэша.
func (g *cacheGuard) bump(id int64) {
	s := g.stripe(id)
	s.mu.Lock()
	s.gen++
	s.mu.Unlock()
}

// fill выполняет запись, только если поколение не изменилось. false означает пропуск.
func (g *cacheGuard) fill(id int64, gen uint64, write func() error) (bool, error) {
	s := g.stripe(id)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen != gen {
		return false, nil
	}

	return true, write()
}
