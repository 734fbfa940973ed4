// Package access liga o núcleo de controle de lotação às tarefas periódicas e
// aos periféricos.
//
// Visão geral (camadas):
//
//   - domain: contratos e tipos do domínio (sem dependência de hardware)
//   - application: casos de uso (admissão, reset, projeções, arbitragem do display)
//   - infra: implementações concretas (portão, sinal de reset, debounce, console)
//   - access (este pacote): gatilhos por polling + System, que sobe as tarefas
//
// Tarefas que System.Run executa:
//
//  1. entrada: lê o botão A, tenta admitir; se lotado, bipe curto
//  2. saida: lê o botão B, registra saída (no-op com ocupação zero)
//  3. reset: bloqueia no sinal da interrupção, bipe duplo, zera e devolve as vagas
//  4. led: cor do LED RGB por faixa de status
//  5. display: tela de status sob o lock do display
//
// System.Interrupt é o ponto de entrada da interrupção de reset: só posta o
// sinal e retorna.
package access
