// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrInvalidIdentifier indica um id que não pode ser convertido para a chave do banco
var ErrInvalidIdentifier = errors.New("identificador inválido")

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, errors.Wrapf(ErrInvalidIdentifier, "id %q", id)
	}
	return parsed, nil
}
