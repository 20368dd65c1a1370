package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// ErrorHandler traduce los errores no atendidos por los handlers:
//   - rutas inexistentes (404/405) → 404 {"error":"route not found"}
//   - errores de validación → 422
//   - cualquier otro → 500 sin detalle; el error solo va al log.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var ve *dto.ValidationError
		if errors.As(err, &ve) {
			return validationFailed(c, ve.Details)
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			switch {
			case fe.Code == fiber.StatusNotFound || fe.Code == fiber.StatusMethodNotAllowed:
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "route not found"})
			case fe.Code == fiber.StatusUnprocessableEntity:
				return validationFailed(c, fe.Message)
			case fe.Code < fiber.StatusInternalServerError:
				return c.Status(fe.Code).JSON(dto.ErrorResponse{Error: fe.Message})
			}
		}

		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("request_id", requestID(c)).
			Msg("error no controlado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Internal Server Error"})
	}
}
