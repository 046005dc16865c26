package dto

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"skill-gap/internal/pkg/response"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)
	})
	return validate
}

// Validate checks struct tags and returns the offending fields, or nil.
func Validate(v any) []response.ValidationError {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []response.ValidationError{{Field: "", Rule: err.Error()}}
	}
	out := make([]response.ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, response.ValidationError{Field: fe.Namespace(), Rule: fe.Tag()})
	}
	return out
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}
