package pperr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInternalError  = "INTERNAL_ERROR"

	CodeInvalidScanFormat    = "INVALID_SCAN_FORMAT"
	CodeMissingQuantity      = "MISSING_QUANTITY"
	CodeDuplicateDrum        = "DUPLICATE_DRUM"
	CodeMaterialMismatch     = "MATERIAL_MISMATCH"
	CodeGenerationNotAllowed = "GENERATION_NOT_ALLOWED"
	CodeNoActiveDrums        = "NO_ACTIVE_DRUMS"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(fiber.StatusBadRequest, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")

	// ErrInvalidScanFormat is returned when a raw scan string cannot be split
	// into a drum type and a drum number.
	ErrInvalidScanFormat = New(fiber.StatusBadRequest, CodeInvalidScanFormat, "invalid scan: expected \"<DRUM_TYPE> <DRUM_NUMBER>\"")

	// ErrMissingQuantity is returned when a scan omits the standard quantity for
	// a material that requires it.
	ErrMissingQuantity = New(fiber.StatusBadRequest, CodeMissingQuantity, "standard quantity is required for this material")

	// ErrDuplicateDrum is returned when the scanned drum number already exists
	// anywhere in the drums collection. Use Duplicate() to attach the prior
	// pallet context.
	ErrDuplicateDrum = New(fiber.StatusConflict, CodeDuplicateDrum, "drum scanned twice on this pallet. please check")

	// ErrMaterialMismatch is returned when the material code on the label does
	// not match the pallet currently being packed.
	ErrMaterialMismatch = New(fiber.StatusConflict, CodeMaterialMismatch, "wrong material label for the pallet being packed")

	// ErrGenerationNotAllowed is returned when pallet assembly is attempted
	// outside the legal active-drum count window.
	ErrGenerationNotAllowed = New(fiber.StatusConflict, CodeGenerationNotAllowed, "pallet generation is not allowed with the current drum count")

	// ErrNoActiveDrums is returned by undo when no active drum exists for the
	// material. This is a branchable outcome, not a fault.
	ErrNoActiveDrums = New(fiber.StatusNotFound, CodeNoActiveDrums, "no active drums exist for this material")
)

type Extras map[string]interface{}

type PryPalError struct {
	StatusCode int    `example:"400"`
	ErrorCode  string `example:"INVALID_REQUEST"`
	Message    string `example:"invalid request: some or all request parameters are invalid"`
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *PryPalError {
	return &PryPalError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e PryPalError) Msg(format string, parts ...interface{}) *PryPalError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e PryPalError) WithExtras(extras Extras) *PryPalError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations interface{}) *PryPalError {
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

// Duplicate builds the DUPLICATE_DRUM error for a drum found in history.
// When the prior record is sealed to a pallet, the message carries the pallet
// id and its creation time so the operator can investigate a mislabeling; an
// empty priorPalletID means the drum is still active somewhere and no pallet
// is referenced.
func Duplicate(priorPalletID, priorCreatedAt string) *PryPalError {
	if priorPalletID == "" {
		return ErrDuplicateDrum
	}
	return ErrDuplicateDrum.
		Msg("this drum is already sealed on pallet %s from %s. please check", priorPalletID, priorCreatedAt).
		WithExtras(Extras{
			"priorPalletId":  priorPalletID,
			"priorCreatedAt": priorCreatedAt,
		})
}

func (e *PryPalError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
