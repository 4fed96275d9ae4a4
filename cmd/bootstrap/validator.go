package bootstrap

import (
	"errors"

	reqdto "coworking-booking/internal/handler/dto/request"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

var ValidatorModule = fx.Module("validator",
	fx.Invoke(RegisterValidators),
)

// RegisterValidators adds the custom binding tags to gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	return reqdto.RegisterValidators(v)
}
