package validators

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/mentor-scheduler/internal/domain/directory"
)

var registerOnce sync.Once

// Register adiciona as regras customizadas ao validator do gin.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("hhmm", hhmm)
	})
}

// hhmm aceita "HH:MM" e "HH:MM:SS".
func hhmm(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) == 8 && s[5] == ':' {
		s = s[:5]
	}
	return directory.IsHHMM(s)
}
