package menuimport

// RowError describe un fallo recuperable de una fila: se reporta y la carga continúa.
type RowError struct {
	Row    int
	Reason string
}

// RowNote registra una subcategoría repetida dentro de la misma carga.
// No es un error: la primera aparición gana y la repetida se descarta.
type RowNote struct {
	Row          int
	Categoria    string
	Subcategoria string
}

// ImportResult resume una carga masiva. Invariantes:
//
//	CategoriesCreated + CategoriesMatched   == nombres de categoría distintos entre filas válidas
//	SubCategoriesCreated                    == pares (categoría, subcategoría) distintos entre filas válidas
//	SubCategoriesCreated + SubCategoriesDuplicated == filas válidas procesadas
type ImportResult struct {
	CategoriesCreated       int
	CategoriesMatched       int
	SubCategoriesCreated    int
	SubCategoriesDuplicated int
	Errors                  []RowError
	Duplicates              []RowNote
}

// ValidRows devuelve el número de filas válidas procesadas.
func (r *ImportResult) ValidRows() int {
	return r.SubCategoriesCreated + r.SubCategoriesDuplicated
}
