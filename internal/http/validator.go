package http

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"vinylapi/internal/httpx"
)

var validate *validator.Validate

var barcodePattern = regexp.MustCompile(`^\d{8,14}$`)

func init() {
	validate = validator.New()

	validate.RegisterValidation("barcode", validateBarcode)
}

// validateBarcode accepts EAN-8 through EAN-14 digit strings.
func validateBarcode(fl validator.FieldLevel) bool {
	barcode := strings.ReplaceAll(fl.Field().String(), " ", "")
	return barcodePattern.MatchString(barcode)
}

func ValidateStruct(s interface{}) []httpx.ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var details []httpx.ErrorDetail
	for _, fieldErr := range err.(validator.ValidationErrors) {
		field := fieldErr.Field()
		tag := fieldErr.Tag()
		param := fieldErr.Param()

		var message string
		switch tag {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", field)
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", field, param)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, param)
		case "barcode":
			message = fmt.Sprintf("%s must be 8 to 14 digits", field)
		case "gte", "lte":
			message = fmt.Sprintf("%s is out of range", field)
		case "url":
			message = fmt.Sprintf("%s must be a valid URL", field)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		fieldName := strings.ToLower(field[:1]) + field[1:]
		details = append(details, httpx.ErrorDetail{
			Field:   fieldName,
			Message: message,
		})
	}

	return details
}
