package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"

	appmenuimport "github.com/jhoicas/Carta-api/internal/application/menuimport"
	"github.com/jhoicas/Carta-api/internal/domain"
)

// Nombres de archivo de la plantilla descargable.
const (
	plantillaCSV   = "plantilla_carta.csv"
	plantillaExcel = "plantilla_carta.xlsx"
)

var plantillaHeader = []string{
	colCategoria, colDescripcionCategoria, colOrdenCategoria,
	colSubcategoria, colDescripcionSubcategoria, colOrdenSubcategoria,
}

// Filas de ejemplo de la plantilla: una carta mínima reconocible.
var plantillaRows = [][]string{
	{"Entradas", "Para empezar", "1", "Sopas", "Sopas del día", "1"},
	{"Entradas", "Para empezar", "1", "Picadas", "Para compartir", "2"},
	{"Platos Fuertes", "Lo principal", "2", "Carnes", "Res y cerdo a la parrilla", "1"},
	{"Platos Fuertes", "Lo principal", "2", "Pescados", "Pesca del día", "2"},
	{"Bebidas", "", "3", "Jugos Naturales", "En agua o en leche", "1"},
	{"Bebidas", "", "3", "Gaseosas", "", "2"},
	{"Postres", "Para terminar", "4", "Helados", "", "1"},
}

// Template genera la plantilla de ejemplo en el formato pedido.
func (d *FileDecoder) Template(format appmenuimport.Format) ([]byte, string, error) {
	switch format {
	case appmenuimport.FormatCSV:
		data, err := templateCSV()
		return data, plantillaCSV, err
	case appmenuimport.FormatExcel:
		data, err := templateExcel()
		return data, plantillaExcel, err
	default:
		return nil, "", domain.ErrFormatoNoSoportado
	}
}

func templateCSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(plantillaHeader); err != nil {
		return nil, fmt.Errorf("escribir encabezado: %w", err)
	}
	for _, row := range plantillaRows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("escribir fila: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func templateExcel() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := make([]any, len(plantillaHeader))
	for i, h := range plantillaHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("escribir encabezado: %w", err)
	}
	for i, row := range plantillaRows {
		cells := make([]any, len(row))
		for j, c := range row {
			cells[j] = c
		}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, addr, &cells); err != nil {
			return nil, fmt.Errorf("escribir fila %d: %w", i+1, err)
		}
	}
	_ = f.SetColWidth(sheet, "A", "F", 24)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}
