// Package application contém os casos de uso do controle de acesso:
// admissão/saída, controlador de reset, projeções de status (LED e display)
// e a arbitragem do display compartilhado.
//
// Ele depende apenas do pacote domain e não conhece GPIO, PWM ou I2C.
// Ex.: AdmissionService.Enter() retorna uma Decision (admitido/negado + leitura).
package application
