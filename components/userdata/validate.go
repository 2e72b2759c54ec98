package userdata

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/pepperico/ssm-ec2-rdp/components/ami"
	"github.com/pepperico/ssm-ec2-rdp/components/os"
)

const (
	minPort = 1
	maxPort = 65535
)

// Validate checks an extension config for info's OS and returns one message per
// violation. It never fails; an empty result means the config is usable.
//
// Exclusive options of the other OS are reported when the OS is known. List
// values are checked entry by entry whatever the OS. Toggles are not type
// checked.
func Validate(info ami.AMIInfo, config any) []string {
	cfg, ok := asConfig(config)
	if !ok {
		return []string{fmt.Sprintf("extension config must be a mapping, got %T", config)}
	}

	var errs []string
	for _, o := range options {
		value, present := cfg[o.Name]
		if !present {
			continue
		}

		if otherFamily(info.Family, o) {
			errs = append(errs, fmt.Sprintf("'%s' is not supported on %s", o.Name, info.Family.Label()))
		}

		errs = append(errs, validateValue(o, value)...)
	}
	return errs
}

func otherFamily(family os.Family, o Option) bool {
	return o.Exclusive && family != os.UnknownFamily && !o.appliesTo(family)
}

func validateValue(o Option, value any) []string {
	switch o.Type {
	case TypeStringList:
		items, ok := asList(value)
		if !ok {
			return []string{fmt.Sprintf("'%s' must be a list", o.Name)}
		}
		var errs []string
		for i, item := range items {
			s, isString := item.(string)
			switch {
			case !isString && o.Name == OptionCustomCommands:
				errs = append(errs, fmt.Sprintf("custom command %d must be a string", i+1))
			case !isString || (o.Name == OptionInstallPackages && strings.TrimSpace(s) == ""):
				errs = append(errs, fmt.Sprintf("%s[%d]: invalid package name: %q", o.Name, i, fmt.Sprint(item)))
			}
		}
		return errs
	case TypePortList:
		items, ok := asList(value)
		if !ok {
			return []string{fmt.Sprintf("'%s' must be a list", o.Name)}
		}
		var errs []string
		for i, item := range items {
			if _, ok := asPort(item); !ok {
				errs = append(errs, fmt.Sprintf("%s[%d]: invalid port number: %v", o.Name, i, item))
			}
		}
		return errs
	default:
		return nil
	}
}

func asConfig(v any) (Config, bool) {
	switch c := v.(type) {
	case Config:
		return c, c != nil
	case map[string]any:
		return c, c != nil
	default:
		return nil, false
	}
}

// asList accepts any slice or array.
func asList(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

// asPort accepts integers, and whole floats as produced by JSON decoding, in
// the TCP port range.
func asPort(v any) (int, bool) {
	var n int64
	switch p := v.(type) {
	case int:
		n = int64(p)
	case int8:
		n = int64(p)
	case int16:
		n = int64(p)
	case int32:
		n = int64(p)
	case int64:
		n = p
	case uint:
		n = int64(p)
	case uint8:
		n = int64(p)
	case uint16:
		n = int64(p)
	case uint32:
		n = int64(p)
	case uint64:
		if p > math.MaxInt32 {
			return 0, false
		}
		n = int64(p)
	case float64:
		if p != math.Trunc(p) || p < minPort || p > maxPort {
			return 0, false
		}
		n = int64(p)
	default:
		return 0, false
	}
	if n < minPort || n > maxPort {
		return 0, false
	}
	return int(n), true
}
