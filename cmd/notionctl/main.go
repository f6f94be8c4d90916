// notionctl consulta o workspace do Notion com a mesma lógica do site:
// navegação, galeria, resolução de rotas e páginas renderizadas.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
