package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// decodeCSV lee un CSV completo a registros. Tolera lo que suele venir de
// Excel "guardar como CSV": BOM, separador ';' y codificación ISO-8859-1.
func decodeCSV(data []byte) ([][]string, error) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	// Excel en español suele exportar en ISO-8859-1
	if !utf8.Valid(data) {
		converted, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), data)
		if err != nil {
			return nil, fmt.Errorf("codificación no reconocida: %w", err)
		}
		data = converted
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = sniffDelimiter(data)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("leer CSV: %w", err)
	}
	return records, nil
}

// sniffDelimiter decide entre ';' y ',' contando ocurrencias en la primera línea.
func sniffDelimiter(data []byte) rune {
	line := string(data)
	if i := strings.IndexAny(line, "\r\n"); i >= 0 {
		line = line[:i]
	}
	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';'
	}
	return ','
}
