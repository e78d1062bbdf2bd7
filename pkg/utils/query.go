package utils

import (
	"strconv"
	"strings"
)

// ParseUintOrDefault converte um parâmetro de query; vazio retorna o padrão
func ParseUintOrDefault(value string, def uint64) (uint64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return def, nil
	}

	return strconv.ParseUint(value, 10, 64)
}

// StringOrDefault retorna o padrão quando o valor está vazio
func StringOrDefault(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
