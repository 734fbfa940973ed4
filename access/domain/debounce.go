package domain

// Key identifica um gatilho (ex: "entrada", "saida").
type Key string

// Limiter decide se um novo disparo é aceito agora.
//
// A camada de infra usa golang.org/x/time/rate para impor o espaçamento
// mínimo entre disparos (debounce).
type Limiter interface {
	Allow() bool
}

// LimiterStore obtém o limiter de cada gatilho. Cada gatilho tem estado próprio.
type LimiterStore interface {
	Get(Key) Limiter
}
