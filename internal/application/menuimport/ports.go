package menuimport

import (
	"context"

	dommenuimport "github.com/jhoicas/Carta-api/internal/domain/menuimport"
	"github.com/jhoicas/Carta-api/internal/domain/repository"
)

// Format formato declarado del archivo subido. Lo decide el transporte a
// partir de la extensión; el decodificador confía en esta declaración.
type Format string

// Formatos soportados por la carga masiva.
const (
	FormatCSV   Format = "csv"
	FormatExcel Format = "excel"
)

// RowDecoder decodifica los bytes crudos de un archivo en filas de carga.
// Un error aquí es fatal para toda la petición (archivo ilegible, columnas
// requeridas ausentes o cero filas de datos); la validación fila a fila no
// ocurre aquí sino en el motor de reconciliación.
type RowDecoder interface {
	Decode(data []byte, format Format) ([]dommenuimport.ImportRow, error)
}

// TemplateGenerator produce la plantilla de ejemplo descargable en el formato pedido.
type TemplateGenerator interface {
	Template(format Format) (data []byte, filename string, err error)
}

// ImportTxRunner ejecuta la fase de resolución con repos atados a una misma transacción.
type ImportTxRunner interface {
	RunImport(ctx context.Context, fn func(
		catRepo repository.CategoryRepository,
		subRepo repository.SubCategoryRepository,
	) error) error
}
