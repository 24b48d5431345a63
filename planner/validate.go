package planner

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = validate.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
			f := fl.Field().Float()
			return !math.IsInf(f, 0) && !math.IsNaN(f)
		})
	})

	return validate
}

// Validate checks the request and the parameters of its method.
//
// Errors:
//   - ErrInvalidRequest wrapping every field problem.
func (r Request) Validate() error {
	v := validatorInstance()
	if err := v.Struct(r); err != nil {
		return formatValidation(err)
	}
	switch r.Method {
	case MethodKMeans:
		if err := v.Struct(r.KMeans); err != nil {
			return formatValidation(err)
		}
	case MethodGenetic:
		if err := v.Struct(r.Genetic); err != nil {
			return formatValidation(err)
		}
		if r.Genetic.MaxSize > 0 && r.Genetic.MaxSize < r.Genetic.MinSize {
			return fmt.Errorf("%w: maxSize %d below minSize %d", ErrInvalidRequest, r.Genetic.MaxSize, r.Genetic.MinSize)
		}
	}

	return nil
}

func formatValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("%s failed %q (%s)", fe.Namespace(), fe.Tag(), fe.Param())
		}
		msgs = append(msgs, msg)
	}

	return fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(msgs, "; "))
}
