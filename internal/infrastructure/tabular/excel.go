package tabular

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// decodeExcel lee la primera hoja de un .xlsx a registros.
// Los .xls binarios antiguos no son un contenedor OOXML: fallan aquí y el
// caller los reporta como archivo inválido.
func decodeExcel(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("abrir Excel: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("el libro no tiene hojas")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", sheets[0], err)
	}
	return rows, nil
}
