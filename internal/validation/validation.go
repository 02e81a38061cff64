package validation

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	cpfPattern = regexp.MustCompile(`^\d{11}$`)
	crmPattern = regexp.MustCompile(`^\d{1,10}$`)
)

// Register installs the clinic-specific binding rules on gin's validator.
// Safe to call more than once.
func Register() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("cpf", validCPF)
	v.RegisterValidation("crm", validCRM)
}

func validCPF(fl validator.FieldLevel) bool {
	return cpfPattern.MatchString(fl.Field().String())
}

func validCRM(fl validator.FieldLevel) bool {
	return crmPattern.MatchString(fl.Field().String())
}
