package cmds

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

func parsable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func parseArg(t reflect.Type, str string) (reflect.Value, error) {
	ret := reflect.New(t).Elem()
	switch t.Kind() {

	case reflect.String:
		ret.SetString(str)

	case reflect.Bool:
		v, err := parseBool(str)
		if err != nil {
			return ret, err
		}
		ret.SetBool(v)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("%q is not a valid %v: %w", str, t, err)
		}
		ret.SetInt(v)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(str, 10, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("%q is not a valid %v: %w", str, t, err)
		}
		ret.SetUint(v)

	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(str, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("%q is not a valid %v: %w", str, t, err)
		}
		ret.SetFloat(v)

	}
	return ret, nil
}

func parseBool(str string) (bool, error) {
	switch strings.ToLower(str) {
	case "true", "t", "yes", "y", "on", "1":
		return true, nil
	case "false", "f", "no", "n", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("%q is not a valid bool", str)
}
