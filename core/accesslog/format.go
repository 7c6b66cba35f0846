package accesslog

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// valueEscaper keeps one record on one line.
var valueEscaper = strings.NewReplacer("\t", `\t`, "\n", `\n`, "\r", `\r`)

// formatValue coerces a field value to text. nil, including typed nil
// pointers, becomes the empty string.
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case time.Time:
		return x.Format(time.RFC3339Nano)
	}

	if isNilPointer(v) {
		return ""
	}

	switch x := v.(type) {
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func escapeValue(s string) string {
	if !strings.ContainsAny(s, "\t\n\r") {
		return s
	}
	return valueEscaper.Replace(s)
}
