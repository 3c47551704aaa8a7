package http

import (
	"fmt"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/menu-api/internal/application/ports"
	"github.com/jhoicas/menu-api/internal/domain"
)

// maxImageBytes tope de lectura por archivo; el límite global lo da BodyLimit de Fiber.
const maxImageBytes = 5 << 20

// readImage lee el archivo del campo indicado. Campo ausente o vacío: (nil, nil).
func readImage(c *fiber.Ctx, field string) (*ports.ImageFile, error) {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil || fh.Size == 0 {
		return nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("abrir %s: %w", field, err)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", field, err)
	}
	if len(data) > maxImageBytes {
		return nil, domain.NewValidationError(field, "La imagen supera el tamaño máximo de 5 MB.")
	}
	return &ports.ImageFile{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// optionalFormValue devuelve el valor del campo si viene en el formulario (multipart o
// urlencoded), aunque esté vacío; nil si no viene.
func optionalFormValue(c *fiber.Ctx, key string) *string {
	if strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return nil
		}
		if vals, ok := form.Value[key]; ok && len(vals) > 0 {
			v := vals[0]
			return &v
		}
		return nil
	}
	args := c.Request().PostArgs()
	if !args.Has(key) {
		return nil
	}
	v := string(args.Peek(key))
	return &v
}

func isJSON(c *fiber.Ctx) bool {
	return strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEApplicationJSON)
}
