package domain

// Contratos dos periféricos externos. As implementações reais (GPIO, PWM,
// I2C) ficam fora deste módulo; infra traz uma versão de console.

// Button é um botão lido por polling.
type Button interface {
	// Pressed retorna o nível atual: true enquanto pressionado.
	Pressed() bool
}

// Tone controla a intensidade do buzzer. Nível 0 é silêncio.
type Tone interface {
	SetTone(level uint8)
}

// Light controla o LED RGB.
type Light interface {
	SetRGB(r, g, b uint8)
}

// Canvas são as primitivas de desenho usadas dentro de uma renderização.
type Canvas interface {
	Clear()
	DrawString(text string, x, y int)
}

// Surface é o display compartilhado: desenha no buffer e envia no Flush.
type Surface interface {
	Canvas
	Flush() error
}
