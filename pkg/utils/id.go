package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// TokenIDLength é o tamanho do jti dos tokens de acesso
	TokenIDLength = 16
)

// GenerateID gera um identificador alfanumérico para o jti dos tokens
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, TokenIDLength)
}
