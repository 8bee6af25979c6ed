package tabular_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	appmenuimport "github.com/jhoicas/Carta-api/internal/application/menuimport"
	"github.com/jhoicas/Carta-api/internal/domain"
	"github.com/jhoicas/Carta-api/internal/infrastructure/tabular"
)

// ──────────────────────────────────────────────────────────────────────────────
// CSV
// ──────────────────────────────────────────────────────────────────────────────

func TestDecode_CSVBasico(t *testing.T) {
	csvData := []byte("categoria,descripcion_categoria,orden_categoria,subcategoria,descripcion_subcategoria,orden_subcategoria\n" +
		"Bebidas,Frías,3,Jugos,Naturales,1\n" +
		"Bebidas,Frías,3,Gaseosas,,2\n")

	rows, err := tabular.NewFileDecoder().Decode(csvData, appmenuimport.FormatCSV)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 1, rows[0].Row)
	assert.Equal(t, "Bebidas", rows[0].Categoria)
	assert.Equal(t, "Frías", rows[0].DescripcionCategoria)
	assert.Equal(t, 3, rows[0].OrdenCategoria)
	assert.Equal(t, "Jugos", rows[0].Subcategoria)
	assert.Equal(t, 1, rows[0].OrdenSubcategoria)
	assert.Equal(t, 2, rows[1].Row)
	assert.Equal(t, "Gaseosas", rows[1].Subcategoria)
}

func TestDecode_CSVConPuntoYComaYBOM(t *testing.T) {
	// Excel "guardar como CSV" en español: BOM + separador ';'
	csvData := append([]byte{0xEF, 0xBB, 0xBF}, []byte("categoria;subcategoria\nBebidas;Jugos\n")...)

	rows, err := tabular.NewFileDecoder().Decode(csvData, appmenuimport.FormatCSV)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Bebidas", rows[0].Categoria)
	assert.Equal(t, "Jugos", rows[0].Subcategoria)
}

func TestDecode_CSVEnISO88591(t *testing.T) {
	utf8Data := []byte("categoria,subcategoria\nCafé,Espressos\n")
	latin1, _, err := transform.Bytes(charmap.ISO8859_1.NewEncoder(), utf8Data)
	require.NoError(t, err)
	require.False(t, bytes.Equal(utf8Data, latin1), "el fixture debe ser realmente ISO-8859-1")

	rows, decErr := tabular.NewFileDecoder().Decode(latin1, appmenuimport.FormatCSV)
	require.NoError(t, decErr)
	require.Len(t, rows, 1)
	assert.Equal(t, "Café", rows[0].Categoria)
}

func TestDecode_EncabezadosConAcentosYMayusculas(t *testing.T) {
	csvData := []byte("Categoría,Descripción Categoría,SUBCATEGORIA\nBebidas,Frías,Jugos\n")

	rows, err := tabular.NewFileDecoder().Decode(csvData, appmenuimport.FormatCSV)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Frías", rows[0].DescripcionCategoria)
}

func TestDecode_FilasVaciasSeOmiten(t *testing.T) {
	csvData := []byte("categoria,subcategoria\nBebidas,Jugos\n,\n  ,  \nPostres,Helados\n")

	rows, err := tabular.NewFileDecoder().Decode(csvData, appmenuimport.FormatCSV)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// La numeración cuenta solo filas de datos no vacías.
	assert.Equal(t, 1, rows[0].Row)
	assert.Equal(t, 2, rows[1].Row)
	assert.Equal(t, "Postres", rows[1].Categoria)
}

func TestDecode_OrdenNoNumericoValeCero(t *testing.T) {
	csvData := []byte("categoria,orden_categoria,subcategoria\nBebidas,tres,Jugos\n")

	rows, err := tabular.NewFileDecoder().Decode(csvData, appmenuimport.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, 0, rows[0].OrdenCategoria)
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores estructurales
// ──────────────────────────────────────────────────────────────────────────────

func TestDecode_SinColumnaCategoria_ArchivoInvalido(t *testing.T) {
	csvData := []byte("nombre,subcategoria\nBebidas,Jugos\n")

	_, err := tabular.NewFileDecoder().Decode(csvData, appmenuimport.FormatCSV)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrArchivoInvalido))
	assert.Contains(t, err.Error(), "categoria")
}

func TestDecode_SinColumnaSubcategoria_ArchivoInvalido(t *testing.T) {
	csvData := []byte("categoria,otra\nBebidas,Jugos\n")

	_, err := tabular.NewFileDecoder().Decode(csvData, appmenuimport.FormatCSV)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrArchivoInvalido))
}

func TestDecode_ArchivoVacio_ImportVacio(t *testing.T) {
	_, err := tabular.NewFileDecoder().Decode(nil, appmenuimport.FormatCSV)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrImportVacio))
}

func TestDecode_SoloEncabezado_ImportVacio(t *testing.T) {
	csvData := []byte("categoria,subcategoria\n")

	_, err := tabular.NewFileDecoder().Decode(csvData, appmenuimport.FormatCSV)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrImportVacio))
}

func TestDecode_FormatoDesconocido(t *testing.T) {
	_, err := tabular.NewFileDecoder().Decode([]byte("x"), appmenuimport.Format("pdf"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFormatoNoSoportado))
}

func TestDecode_XLSBinario_ArchivoInvalido(t *testing.T) {
	// Firma OLE2 de un .xls antiguo: no es un contenedor OOXML.
	ole2 := []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1, 0x00, 0x00}

	_, err := tabular.NewFileDecoder().Decode(ole2, appmenuimport.FormatExcel)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrArchivoInvalido))
}

// ──────────────────────────────────────────────────────────────────────────────
// Excel y plantillas
// ──────────────────────────────────────────────────────────────────────────────

func TestDecode_Excel(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"categoria", "subcategoria", "orden_subcategoria"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Bebidas", "Jugos", 1}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"Postres", "Helados", 2}))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	rows, err := tabular.NewFileDecoder().Decode(buf.Bytes(), appmenuimport.FormatExcel)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Bebidas", rows[0].Categoria)
	assert.Equal(t, 1, rows[0].OrdenSubcategoria)
	assert.Equal(t, "Helados", rows[1].Subcategoria)
}

func TestTemplate_CSVEsDecodificable(t *testing.T) {
	d := tabular.NewFileDecoder()
	data, filename, err := d.Template(appmenuimport.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "plantilla_carta.csv", filename)

	rows, err := d.Decode(data, appmenuimport.FormatCSV)
	require.NoError(t, err)
	assert.NotEmpty(t, rows, "la plantilla debe pasar por el propio decodificador")
}

func TestTemplate_ExcelEsDecodificable(t *testing.T) {
	d := tabular.NewFileDecoder()
	data, filename, err := d.Template(appmenuimport.FormatExcel)
	require.NoError(t, err)
	assert.Equal(t, "plantilla_carta.xlsx", filename)

	rows, err := d.Decode(data, appmenuimport.FormatExcel)
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, "Entradas", rows[0].Categoria)
	assert.Equal(t, "Sopas", rows[0].Subcategoria)
}

func TestTemplate_FormatoDesconocido(t *testing.T) {
	_, _, err := tabular.NewFileDecoder().Template(appmenuimport.Format("pdf"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFormatoNoSoportado))
}
