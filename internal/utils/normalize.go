package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NormalizeSegment prepara um segmento de URL para comparação: NFC (caminhos
// coreanos podem chegar decompostos), sem espaços e sem a barra inicial.
// Exemplo: "/%E1%84%8B..." já decodificado em NFD -> mesmo texto em NFC
func NormalizeSegment(segment string) string {
	segment = strings.TrimSpace(segment)
	segment = strings.TrimPrefix(segment, "/")
	return norm.NFC.String(segment)
}

// FoldName compara nomes de categoria sem diferenciar maiúsculas.
// Exemplo: "About" -> "about", "ÜBER" -> "über"
func FoldName(name string) string {
	if name == "" {
		return name
	}
	// Caser não é seguro para uso concorrente: um por chamada
	return cases.Fold().String(norm.NFC.String(name))
}

// DefaultURLPath é o caminho usado quando a categoria não define "URL 경로"
func DefaultURLPath(categoryName string) string {
	return "/" + strings.ToLower(categoryName)
}
