package domain

// Tier é a faixa de status derivada da ocupação.
type Tier uint8

const (
	TierEmpty Tier = iota
	TierAvailable
	TierLastSlot
	TierFull
)

// TierOf calcula a faixa para uma ocupação e capacidade.
//
// Vazio tem prioridade sobre última vaga quando capacity == 1.
func TierOf(count, capacity int) Tier {
	switch {
	case count <= 0:
		return TierEmpty
	case count >= capacity:
		return TierFull
	case count == capacity-1:
		return TierLastSlot
	default:
		return TierAvailable
	}
}

func (t Tier) String() string {
	switch t {
	case TierEmpty:
		return "empty"
	case TierAvailable:
		return "available"
	case TierLastSlot:
		return "last-slot"
	case TierFull:
		return "full"
	default:
		return "unknown"
	}
}

// Label é o texto exibido no display.
func (t Tier) Label() string {
	switch t {
	case TierEmpty:
		return "Vazio"
	case TierAvailable:
		return "Livre"
	case TierLastSlot:
		return "Ultima"
	case TierFull:
		return "Lotado"
	default:
		return "?"
	}
}

// Color é a cor do LED RGB para a faixa.
type Color struct {
	R, G, B uint8
}

// Color retorna azul (vazio), verde (livre), amarelo (última vaga) ou vermelho (lotado).
func (t Tier) Color() Color {
	switch t {
	case TierEmpty:
		return Color{0, 0, 255}
	case TierAvailable:
		return Color{0, 255, 0}
	case TierLastSlot:
		return Color{255, 255, 0}
	default:
		return Color{255, 0, 0}
	}
}
