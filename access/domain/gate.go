package domain

import "errors"

// ErrInvalidCapacity indica uma capacidade <= 0 na inicialização.
var ErrInvalidCapacity = errors.New("capacity must be > 0")

// Snapshot é uma leitura consistente do portão num instante.
//
// Invariante: Available + Occupancy == Capacity.
type Snapshot struct {
	Occupancy int
	Available int
	Capacity  int
}

// Tier deriva a faixa de status da leitura.
func (s Snapshot) Tier() Tier { return TierOf(s.Occupancy, s.Capacity) }

// OccupancyReader é o lado somente-leitura usado pelas projeções.
type OccupancyReader interface {
	Snapshot() Snapshot
}

// Gate representa o portão de admissão e a ocupação como um único recurso.
//
// Fichas e contagem andam sempre juntas: cada operação abaixo altera as duas
// dentro da mesma seção crítica, então nenhum chamador precisa parear nada.
type Gate interface {
	OccupancyReader

	// TryAdmit tenta admitir um ocupante sem bloquear.
	// Retorna false se não há vaga (lotado).
	TryAdmit() bool

	// Leave registra a saída de um ocupante.
	// Retorna false (e não altera nada) se a ocupação já é zero.
	Leave() bool

	// Drain zera a ocupação e devolve todas as fichas.
	// Retorna quantos ocupantes havia antes.
	Drain() int
}
