package dto

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var symbolRe = regexp.MustCompile(`^\s*[A-Za-z0-9]{1,12}\s*$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("symbol", validateSymbol)
	}
}

// validateSymbol accepts a short alphanumeric ticker, surrounding blanks allowed.
func validateSymbol(fl validator.FieldLevel) bool {
	return symbolRe.MatchString(fl.Field().String())
}

// sanitizeSymbol is the sanitize tag value for tickers: trimmed and upper-cased.
const sanitizeSymbol = "symbol"

// SanitizeStruct cleans the string fields (including *string) of a struct
// pointer according to their sanitize tag. Every string is trimmed; free text
// such as notes is otherwise kept as sent.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}

	rv = rv.Elem()
	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		if f.Kind() == reflect.Ptr {
			if f.IsNil() {
				continue
			}
			f = f.Elem()
		}
		if f.Kind() == reflect.String {
			f.SetString(sanitize(f.String(), rt.Field(i).Tag.Get("sanitize")))
		}
	}
}

func sanitize(s, mode string) string {
	s = strings.TrimSpace(s)
	if mode == sanitizeSymbol {
		return strings.ToUpper(s)
	}
	return s
}
