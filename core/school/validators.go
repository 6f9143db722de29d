package school

import (
	"github.com/go-playground/validator/v10"

	"github.com/Guilherme-Bernal/distributed-programming-final-project/core"
)

var (
	semesterTag  = "semester"
	semesterText = "invalid semester"
)

func init() {
	// register validators
	_ = core.Validate.RegisterValidation(semesterTag, semesterValidation)
	core.RegisterCustomTranslation(semesterTag, semesterText)
}

// semesterValidation only allows the enumerated semester tokens.
func semesterValidation(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, semester := range Semesters {
		if val == semester {
			return true
		}
	}
	return false
}
