package rekuest

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/prypal/backend/internal/pkg/pperr"
)

var Validate = NewValidator()

type ErrorResponse struct {
	Field     string `json:"field,omitempty"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

func translate(ve validator.ValidationErrors) []*ErrorResponse {
	trans := make([]*ErrorResponse, 0, len(ve))
	for _, fe := range ve {
		trans = append(trans, &ErrorResponse{
			Field:     fe.Namespace(),
			Violation: fe.Tag(),
			Message:   fe.Error(),
		})
	}
	return trans
}

func validateStruct(s any) []*ErrorResponse {
	err := Validate.Struct(s)
	if err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			panic(err)
		}
		return translate(errs)
	}
	return nil
}

// ValidBody will get the body from *fiber.Ctx using fiber#BodyParser(), and
// validate it using the validator singleton. If the validation passed it will
// write the unmarshalled body to dest and return nil, otherwise it returns an
// error. Notice that dest shall always be a pointer.
func ValidBody(ctx *fiber.Ctx, dest any) error {
	if err := ctx.BodyParser(dest); err != nil {
		return pperr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	if errs := validateStruct(dest); errs != nil {
		return pperr.NewInvalidViolations(errs)
	}

	return nil
}

func ValidStruct(dest any) error {
	if errs := validateStruct(dest); errs != nil {
		return pperr.NewInvalidViolations(errs)
	}

	return nil
}
