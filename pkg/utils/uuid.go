package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera o identificador curto usado por conteúdos e entradas do
// sweet spot. Seis caracteres alfanuméricos são suficientes para o volume
// esperado e mantêm as URLs legíveis.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
