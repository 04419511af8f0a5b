package http

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/yanqian/calorie-advisor/internal/domain/calorie"
)

var registerOnce sync.Once

func registerValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("place", calorie.ValidatePlace)
		}
	})
}
