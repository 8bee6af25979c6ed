// gen_plantilla escribe en disco las plantillas de ejemplo de la carga masiva
// de carta (CSV y Excel), las mismas que sirve GET /api/menu/import/plantilla.
//
// Uso: go run ./cmd/gen_plantilla [directorio-destino]
// Por defecto escribe en el directorio actual.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	appmenuimport "github.com/jhoicas/Carta-api/internal/application/menuimport"
	"github.com/jhoicas/Carta-api/internal/infrastructure/tabular"
)

func main() {
	dir := "."
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	decoder := tabular.NewFileDecoder()
	for _, format := range []appmenuimport.Format{appmenuimport.FormatCSV, appmenuimport.FormatExcel} {
		data, filename, err := decoder.Template(format)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Generar plantilla %s: %v\n", format, err)
			os.Exit(1)
		}
		dst := filepath.Join(dir, filename)
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Escribir %s: %v\n", dst, err)
			os.Exit(1)
		}
		fmt.Printf("Escrito %s (%d bytes)\n", dst, len(data))
	}
}
