package microflag

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/huandu/xstrings"
	"github.com/pkg/errors"
)

// Bind derives a flag table from a struct. config must be a pointer to a
// struct; every exported settable field of a supported type becomes one
// declaration, in field order:
//
//	bool    -> Bool
//	byte    -> Char
//	string  -> String
//	int     -> Int
//	float64 -> Double
//
// The long name is "--" plus the kebab-case form of the field name, and
// the field's current value acts as the default. A "flag" struct tag
// adjusts the declaration:
//
//	type args struct {
//		Output  string `flag:"short=o,help=set output file"`
//		Number  int    `flag:"name=num,help='print this, a number'"`
//		scratch string `flag:"-"`
//	}
//
// "name" overrides the derived long name, "short" adds a one-letter short
// name (matched as "-o"), "help" sets the description, and "-" skips the
// field. Tag values may be single-quoted to protect commas. Anonymous
// embedded structs are walked recursively. Unsupported field types and
// unknown tag keys are errors.
func Bind(config any) ([]Flag, error) {
	v := reflect.ValueOf(config)
	if !v.IsValid() || v.Kind() != reflect.Ptr || v.IsNil() {
		return nil, errors.Errorf("config must be a struct pointer (got %v)", reflect.TypeOf(config))
	}
	elem := v.Elem()
	if elem.Kind() != reflect.Struct {
		return nil, errors.Errorf("config must be a struct pointer (got %s)", v.Type())
	}
	return bindStruct(elem)
}

// MustBind is like Bind but panics on error, for tables declared at
// program start.
func MustBind(config any) []Flag {
	flags, err := Bind(config)
	if err != nil {
		panic(fmt.Sprintf("microflag: %s", err))
	}
	return flags
}

// sv must be a reflected struct value.
func bindStruct(sv reflect.Value) ([]Flag, error) {
	flags := []Flag{}
	for i := 0; i < sv.NumField(); i++ {
		sf := sv.Type().Field(i)
		val := sv.Field(i)

		// ignore unaddressable and unexported fields
		if !val.CanSet() {
			continue
		}

		tags := parseTag(sf.Tag.Get("flag"))
		pop := func(key string) (string, bool) {
			v, ok := tags[key]
			if ok {
				delete(tags, key)
			}
			return v, ok
		}

		// fields with the "-" tag are skipped (like json)
		if _, ok := pop("-"); ok {
			continue
		}

		if sf.Anonymous && val.Kind() == reflect.Struct {
			embedded, err := bindStruct(val)
			if err != nil {
				return nil, err
			}
			flags = append(flags, embedded...)
			continue
		}

		name, _ := pop("name")
		if name == "" {
			name = xstrings.ToKebabCase(sf.Name)
		}

		short := ""
		if s, ok := pop("short"); ok {
			if len(s) != 1 {
				return nil, errors.Errorf("field %s: short name must be 1 letter", sf.Name)
			}
			short = "-" + s
		}

		help, _ := pop("help")

		if len(tags) > 0 {
			keys := make([]string, 0, len(tags))
			for k := range tags {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			return nil, errors.Errorf("field %s: unknown tags: %s", sf.Name, strings.Join(keys, ", "))
		}

		f, err := bindField(val, short, "--"+name, help)
		if err != nil {
			return nil, errors.Wrapf(err, "field %s", sf.Name)
		}
		flags = append(flags, f)
	}
	return flags, nil
}

func bindField(val reflect.Value, short, long, help string) (Flag, error) {
	switch p := val.Addr().Interface().(type) {
	case *bool:
		return Bool(p, short, long, help), nil
	case *byte:
		return Char(p, short, long, help), nil
	case *string:
		return String(p, short, long, help), nil
	case *int:
		return Int(p, short, long, help), nil
	case *float64:
		return Double(p, short, long, help), nil
	default:
		return Flag{}, errors.Errorf("no flag type for %s", val.Type())
	}
}
