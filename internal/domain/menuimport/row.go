package menuimport

// ImportRow es una fila ya decodificada del archivo de carga masiva (CSV o
// Excel). Transporta nombres legibles; nunca identificadores persistidos.
// Row es el número de fila de datos (1-based, sin contar el encabezado) y se
// usa solo para reportar errores en orden estable.
type ImportRow struct {
	Row                     int
	Categoria               string
	DescripcionCategoria    string
	OrdenCategoria          int
	Subcategoria            string
	DescripcionSubcategoria string
	OrdenSubcategoria       int
}
