package dto

// ImportRowErrorResponse error recuperable de una fila de la carga masiva.
type ImportRowErrorResponse struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportDuplicateResponse subcategoría repetida, descartada sin error.
type ImportDuplicateResponse struct {
	Row          int    `json:"row"`
	Categoria    string `json:"categoria"`
	Subcategoria string `json:"subcategoria"`
}

// ImportResultResponse resumen de la carga masiva de carta.
// Los errores de fila no abortan la carga: vienen listados junto a los conteos.
type ImportResultResponse struct {
	CategoriesCreated       int                       `json:"categories_created"`
	CategoriesMatched       int                       `json:"categories_matched"`
	SubCategoriesCreated    int                       `json:"subcategories_created"`
	SubCategoriesDuplicated int                       `json:"subcategories_duplicated"`
	Errors                  []ImportRowErrorResponse  `json:"errors"`
	Duplicates              []ImportDuplicateResponse `json:"duplicates,omitempty"`
}
