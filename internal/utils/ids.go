package utils

import (
	"strings"

	"github.com/google/uuid"
)

// ParseNotionID valida um identificador do Notion (UUID com ou sem hífens)
// e devolve a forma canônica com hífens
func ParseNotionID(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if len(value) != 32 && len(value) != 36 {
		return "", false
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return "", false
	}
	return id.String(), true
}

// IsNotionID indica se o valor é um identificador bem formado
func IsNotionID(value string) bool {
	_, ok := ParseNotionID(value)
	return ok
}

// CompactNotionID remove os hífens (formato das URLs do site)
func CompactNotionID(id string) string {
	return strings.ReplaceAll(id, "-", "")
}
