package infra

import (
	"fmt"
	"sync"

	"controle-acesso/access/domain"
)

// Gate é o portão de admissão com a ocupação embutida.
//
// Fichas livres e ocupação ficam sob o mesmo mutex. As primitivas
// (tryAcquire, increment, ...) não são exportadas e só rodam com mu travado;
// fora do pacote só existem as operações já pareadas.
type Gate struct {
	mu        sync.Mutex
	capacity  int
	tokens    int
	occupancy int
}

var _ domain.Gate = (*Gate)(nil)

// NewGate cria um portão com todas as fichas livres e ocupação zero.
func NewGate(capacity int) (*Gate, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("gate: %w (got %d)", domain.ErrInvalidCapacity, capacity)
	}
	return &Gate{capacity: capacity, tokens: capacity}, nil
}

func (g *Gate) Capacity() int { return g.capacity }

// TryAdmit consome uma ficha e incrementa a ocupação na mesma seção crítica.
// Nunca bloqueia esperando vaga.
func (g *Gate) TryAdmit() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.tryAcquire() {
		return false
	}
	g.increment()
	return true
}

// Leave decrementa a ocupação e devolve uma ficha.
// Com ocupação zero é no-op (saída espúria).
func (g *Gate) Leave() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.decrement() {
		return false
	}
	g.release()
	return true
}

// Drain zera a ocupação e devolve as fichas correspondentes.
func (g *Gate) Drain() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	prior := g.forceZero()
	g.releaseMany(prior)
	return prior
}

func (g *Gate) Snapshot() domain.Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return domain.Snapshot{
		Occupancy: g.occupancy,
		Available: g.tokens,
		Capacity:  g.capacity,
	}
}

// --- primitivas (exigem mu travado) -----------------------------------------

func (g *Gate) tryAcquire() bool {
	if g.tokens <= 0 {
		return false
	}
	g.tokens--
	return true
}

func (g *Gate) release() {
	if g.tokens >= g.capacity {
		panic("gate: release above capacity")
	}
	g.tokens++
}

func (g *Gate) releaseMany(n int) {
	if n < 0 || g.tokens+n > g.capacity {
		panic(fmt.Sprintf("gate: releaseMany(%d) with %d/%d tokens", n, g.tokens, g.capacity))
	}
	g.tokens += n
}

func (g *Gate) increment() { g.occupancy++ }

func (g *Gate) decrement() bool {
	if g.occupancy == 0 {
		return false
	}
	g.occupancy--
	return true
}

func (g *Gate) forceZero() int {
	prior := g.occupancy
	g.occupancy = 0
	return prior
}
