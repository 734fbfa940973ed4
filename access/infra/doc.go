// Package infra contém implementações concretas (infraestrutura) para os contratos
// definidos no pacote domain.
//
// Exemplos:
//   - Gate: fichas de admissão e ocupação sob um único mutex
//   - Signal: sinal de reset de interrupção, com fusão de disparos
//   - ChanPool: semáforo simples; com 1 vaga é o lock do display
//   - DebounceStore: espaçamento mínimo por gatilho usando golang.org/x/time/rate
//   - MemoryStatsStore: contadores de eventos em memória
//   - Console*: periféricos de console para rodar fora da placa
package infra
