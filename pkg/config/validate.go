// pkg/config/validate.go

package config

import (
	"time"

	"github.com/CodeMonkeyCybersecurity/logdir/pkg/logpath"
	"github.com/go-playground/validator/v10"
)

// reference time used to check that a date layout yields a single path segment
var layoutProbe = time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC)

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("pathsegment", func(fl validator.FieldLevel) bool {
		return logpath.IsPathSegment(fl.Field().String())
	})
	_ = v.RegisterValidation("datesegment", func(fl validator.FieldLevel) bool {
		return logpath.IsPathSegment(layoutProbe.Format(fl.Field().String()))
	})
	return v
}
