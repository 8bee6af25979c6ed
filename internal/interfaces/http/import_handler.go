package http

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Carta-api/internal/application/dto"
	appmenuimport "github.com/jhoicas/Carta-api/internal/application/menuimport"
	"github.com/jhoicas/Carta-api/internal/domain"
)

// ImportHandler maneja la carga masiva de la carta y la descarga de plantillas.
type ImportHandler struct {
	uc             *appmenuimport.ImportUseCase
	maxUploadBytes int64
}

// NewImportHandler construye el handler. maxUploadBytes limita el tamaño
// del archivo subido (el archivo completo se carga en memoria para decodificar).
func NewImportHandler(uc *appmenuimport.ImportUseCase, maxUploadBytes int64) *ImportHandler {
	return &ImportHandler{uc: uc, maxUploadBytes: maxUploadBytes}
}

// formatFromFilename resuelve el formato declarado a partir de la extensión.
func formatFromFilename(name string) (appmenuimport.Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return appmenuimport.FormatCSV, nil
	case ".xlsx", ".xls":
		return appmenuimport.FormatExcel, nil
	}
	return "", domain.ErrFormatoNoSoportado
}

// Import godoc
// @Summary      Carga masiva de categorías y subcategorías desde CSV o Excel
// @Description  Acepta un archivo multipart "file" (.csv, .xlsx o .xls). Las filas
// @Description  inválidas no abortan la carga: el resumen lista errores y duplicados.
// @Tags         import
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo de carta"
// @Success      200   {object}  dto.ImportResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      413   {object}  dto.ErrorResponse
// @Router       /api/menu/import [post]
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "se requiere el archivo multipart 'file'"})
	}
	if fileHeader.Size > h.maxUploadBytes {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{
			Code:    "FILE_TOO_LARGE",
			Message: fmt.Sprintf("el archivo supera el máximo de %d bytes", h.maxUploadBytes),
		})
	}

	format, err := formatFromFilename(fileHeader.Filename)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_FORMAT", Message: "formato no soportado: use .csv, .xlsx o .xls"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxUploadBytes+1))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	if int64(len(data)) > h.maxUploadBytes {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{
			Code:    "FILE_TOO_LARGE",
			Message: fmt.Sprintf("el archivo supera el máximo de %d bytes", h.maxUploadBytes),
		})
	}

	result, err := h.uc.Import(c.Context(), companyID, format, data)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrImportVacio):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_IMPORT", Message: "el archivo no contiene filas de datos"})
		case errors.Is(err, domain.ErrArchivoInvalido):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
		case errors.Is(err, domain.ErrFormatoNoSoportado):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_FORMAT", Message: "formato no soportado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(result)
}

// Template godoc
// @Summary      Descargar plantilla de carga masiva
// @Tags         import
// @Security     Bearer
// @Produce      octet-stream
// @Param        formato  query  string  false  "csv o excel (por defecto csv)"
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/menu/import/plantilla [get]
func (h *ImportHandler) Template(c *fiber.Ctx) error {
	format := appmenuimport.Format(c.Query("formato", string(appmenuimport.FormatCSV)))
	data, filename, err := h.uc.Template(format)
	if err != nil {
		if errors.Is(err, domain.ErrFormatoNoSoportado) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_FORMAT", Message: "formato no soportado: use csv o excel"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
	return c.Send(data)
}
