// Package domain define contratos e tipos de domínio do controle de acesso.
//
// Este pacote não depende de hardware nem de implementações concretas.
// A intenção é permitir testes de unidade puros e desacoplar as regras de
// lotação dos detalhes de GPIO, PWM e display.
package domain
