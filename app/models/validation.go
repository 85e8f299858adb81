package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// Report JSON field names instead of Go field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate checks that every required field of the post payload is present.
func (p *NewPost) Validate() error {
	return describe(validate.Struct(p))
}

// Validate checks that every required field of the comment payload is present.
func (c *NewComment) Validate() error {
	return describe(validate.Struct(c))
}

// describe turns validator errors into a single readable error.
func describe(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("missing field `%s`", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("field `%s` failed %s", fe.Field(), fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, ", "))
}
