package utils

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
)

// Minimal internal validator to avoid external dependency. Supports:
// - required
// - empcode (letters and digits, 3-20 chars, e.g. EMP001)
// - pin (4-8 digits)

var (
	reEmpCode = regexp.MustCompile(`^[A-Za-z0-9]{3,20}$`)
	rePin     = regexp.MustCompile(`^[0-9]{4,8}$`)
)

// ValidateStruct inspects struct tags `validate:"..."` and returns the first error encountered.
func ValidateStruct(s interface{}) error {
	v := reflect.ValueOf(s)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return errors.New("ValidateStruct expects a struct or pointer to struct")
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}
		parts := strings.Split(tag, ",")
		fv := v.Field(i)
		var sval string
		if fv.IsValid() && fv.Kind() == reflect.String {
			sval = fv.String()
		}
		for _, p := range parts {
			switch strings.TrimSpace(p) {
			case "required":
				if sval == "" {
					return errors.New(field.Name + " is required")
				}
			case "empcode":
				if sval != "" && !reEmpCode.MatchString(sval) {
					return errors.New(field.Name + " must be an alphanumeric employee code")
				}
			case "pin":
				if sval != "" && !rePin.MatchString(sval) {
					return errors.New(field.Name + " must be a 4-8 digit PIN")
				}
			}
		}
	}
	return nil
}
