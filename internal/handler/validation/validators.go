package validation

import (
	"sync"

	"ride-together/internal/domain/availability"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// Register installs the custom binding tags on gin's validator.
func Register() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		err = RegisterOn(v)
	})
	return err
}

func RegisterOn(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"ymd":        parses(func(s string) error { _, err := availability.ParseRideDate(s); return err }),
		"hhmm":       parses(func(s string) error { _, err := availability.ParseTimeOfDay(s); return err }),
		"trailtype":  parses(func(s string) error { _, err := availability.ParseTrailType(s); return err }),
		"visibility": parses(func(s string) error { _, err := availability.ParseVisibility(s); return err }),
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func parses(parse func(string) error) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return parse(fl.Field().String()) == nil
	}
}
