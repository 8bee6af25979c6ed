// Package tabular decodifica archivos de carga masiva (CSV y Excel) a filas
// del motor de importación, y genera las plantillas de ejemplo descargables.
// Aquí solo se valida la estructura del archivo (columnas requeridas, filas de
// datos); la validación fila a fila es del motor de reconciliación.
package tabular

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	appmenuimport "github.com/jhoicas/Carta-api/internal/application/menuimport"
	"github.com/jhoicas/Carta-api/internal/domain"
	"github.com/jhoicas/Carta-api/internal/domain/menuimport"
)

// Encabezados esperados (tras normalizar: minúsculas, sin acentos, espacios -> "_").
const (
	colCategoria               = "categoria"
	colDescripcionCategoria    = "descripcion_categoria"
	colOrdenCategoria          = "orden_categoria"
	colSubcategoria            = "subcategoria"
	colDescripcionSubcategoria = "descripcion_subcategoria"
	colOrdenSubcategoria       = "orden_subcategoria"
)

// Asegura que FileDecoder implementa los puertos de la carga masiva.
var (
	_ appmenuimport.RowDecoder        = (*FileDecoder)(nil)
	_ appmenuimport.TemplateGenerator = (*FileDecoder)(nil)
)

// FileDecoder decodifica CSV y XLSX según el formato declarado por el transporte.
type FileDecoder struct{}

// NewFileDecoder construye el decodificador.
func NewFileDecoder() *FileDecoder { return &FileDecoder{} }

// Decode convierte los bytes crudos en filas de importación.
// Cualquier error es fatal para la carga completa: el archivo se rechaza
// entero, nunca hay resultado parcial de decodificación.
func (d *FileDecoder) Decode(data []byte, format appmenuimport.Format) ([]menuimport.ImportRow, error) {
	var (
		records [][]string
		err     error
	)
	switch format {
	case appmenuimport.FormatCSV:
		records, err = decodeCSV(data)
	case appmenuimport.FormatExcel:
		records, err = decodeExcel(data)
	default:
		return nil, domain.ErrFormatoNoSoportado
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrArchivoInvalido, err)
	}
	return mapRecords(records)
}

// mapRecords interpreta el encabezado y convierte cada fila de datos.
func mapRecords(records [][]string) ([]menuimport.ImportRow, error) {
	if len(records) == 0 {
		return nil, domain.ErrImportVacio
	}

	cols := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		cols[normalizeHeader(h)] = i
	}
	if _, ok := cols[colCategoria]; !ok {
		return nil, fmt.Errorf("%w: falta la columna requerida %q", domain.ErrArchivoInvalido, colCategoria)
	}
	if _, ok := cols[colSubcategoria]; !ok {
		return nil, fmt.Errorf("%w: falta la columna requerida %q", domain.ErrArchivoInvalido, colSubcategoria)
	}

	var rows []menuimport.ImportRow
	num := 0
	for _, record := range records[1:] {
		if isEmptyRecord(record) {
			continue
		}
		num++
		rows = append(rows, menuimport.ImportRow{
			Row:                     num,
			Categoria:               cell(record, cols, colCategoria),
			DescripcionCategoria:    cell(record, cols, colDescripcionCategoria),
			OrdenCategoria:          cellInt(record, cols, colOrdenCategoria),
			Subcategoria:            cell(record, cols, colSubcategoria),
			DescripcionSubcategoria: cell(record, cols, colDescripcionSubcategoria),
			OrdenSubcategoria:       cellInt(record, cols, colOrdenSubcategoria),
		})
	}
	if len(rows) == 0 {
		return nil, domain.ErrImportVacio
	}
	return rows, nil
}

// normalizeHeader admite variantes razonables del encabezado: mayúsculas,
// acentos ("Categoría") y espacios ("orden categoria").
func normalizeHeader(h string) string {
	s := strings.ToLower(strings.TrimSpace(h))
	deaccent := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(deaccent, s); err == nil {
		s = out
	}
	return strings.ReplaceAll(s, " ", "_")
}

func cell(record []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// cellInt parsea un orden opcional; vacío o no numérico vale 0.
func cellInt(record []string, cols map[string]int, name string) int {
	s := cell(record, cols, name)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func isEmptyRecord(record []string) bool {
	for _, c := range record {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
