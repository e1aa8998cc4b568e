package dto

import (
	"github.com/SscSPs/shiftpay/internal/core/domain"
	"github.com/SscSPs/shiftpay/internal/utils/money"
	"github.com/SscSPs/shiftpay/internal/utils/shifttime"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the request validators used in binding tags:
// timeofday ("HH:MM"), currency (a known ISO code) and paytype.
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("timeofday", validateTimeOfDay); err != nil {
		return err
	}
	if err := v.RegisterValidation("currency", validateCurrency); err != nil {
		return err
	}
	return v.RegisterValidation("paytype", validatePayType)
}

func validateTimeOfDay(fl validator.FieldLevel) bool {
	_, err := shifttime.ParseTimeOfDay(fl.Field().String())
	return err == nil
}

func validateCurrency(fl validator.FieldLevel) bool {
	return money.IsKnownCurrency(fl.Field().String())
}

func validatePayType(fl validator.FieldLevel) bool {
	return domain.PayType(fl.Field().String()).Valid()
}
