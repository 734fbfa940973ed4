// utilitário pequeno para montar as linhas do display sem fmt.

package application

import "strconv"

const (
	titleLine        = "Controle acesso"
	instructionsLine = "A entrar B sair"
)

func occupantsLine(n, capacity int) string {
	return "Usuarios: " + strconv.Itoa(n) + "/" + strconv.Itoa(capacity)
}

func availableLine(n int) string { return "Vagas: " + strconv.Itoa(n) }

func statusLine(label string) string { return "Status: " + label }
