package validators

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

var messages = map[string]string{
	"required":     "is required",
	"min":          "must be at least %s",
	"max":          "must be at most %s",
	"gt":           "must be greater than %s",
	"gte":          "must be at least %s",
	"dive":         "is invalid",
	"clinic_email": "is not a valid email",
	"password":     "must be 6-64 characters and contain a digit",
	"hhmm":         "must be a time as HH:MM",
	"ymd":          "must be a date as YYYY-MM-DD",
	"blood_group":  "is not a known blood group",
}

// Register adds the clinic rules to v.
func Register(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"clinic_email": func(fl validator.FieldLevel) bool { return IsEmail(fl.Field().String()) },
		"password":     func(fl validator.FieldLevel) bool { return IsPassword(fl.Field().String()) },
		"hhmm": func(fl validator.FieldLevel) bool {
			_, err := schedule.ParseTimeOfDay(fl.Field().String())
			return err == nil
		},
		"ymd": func(fl validator.FieldLevel) bool {
			_, err := schedule.ParseDate(fl.Field().String())
			return err == nil
		},
		"blood_group": func(fl validator.FieldLevel) bool {
			g := fl.Field().String()
			for _, bg := range models.BloodGroups {
				if bg == g {
					return true
				}
			}
			return false
		},
	}

	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// RegisterWithGin installs the rules on gin's binding validator.
func RegisterWithGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not validator/v10")
	}
	return Register(v)
}

func IsPassword(p string) bool {
	if len(p) < 6 || len(p) > 64 {
		return false
	}
	for _, r := range p {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// Describe turns the first binding failure into a readable message.
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request body"
	}

	fe := verrs[0]
	msg, ok := messages[fe.Tag()]
	if !ok {
		msg = "is invalid"
	}
	if strings.Contains(msg, "%s") {
		msg = fmt.Sprintf(msg, fe.Param())
	}
	return fmt.Sprintf("%s %s", fe.Field(), msg)
}
