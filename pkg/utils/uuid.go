package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

// Alfabeto sem símbolos para IDs legíveis em URLs e logs
const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const idLength = 12

// GenerateID gera um identificador curto aleatório para entidades da aplicação
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
