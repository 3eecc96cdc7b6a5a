package canonical

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var getValidator = sync.OnceValue(func() *validator.Validate {
	validate := validator.New()

	// bigint accepts non-negative base-10 integers of any size.
	if err := validate.RegisterValidation("bigint", func(fl validator.FieldLevel) bool {
		_, err := ParseAmount(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(fmt.Sprintf("failed to register bigint validation: %v", err))
	}
	return validate
})
