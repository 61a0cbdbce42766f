// Package query builds request targets for the Estfor API: the resource
// path, percent-encoded path segments and the query string derived from a
// filter struct.
//
// Filters are plain structs whose fields carry a `url:"<key>"` tag. Fields
// are visited in declaration order (embedded structs are expanded in place):
//
//   - nil pointers and nil slices are omitted
//   - slices produce one key=value pair per element, in element order
//   - strings, bools, integers and floats are formatted with strconv
//
// Keys and values are percent-encoded; a space becomes %20, not '+'.
package query

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Encode returns the query string for filter without the leading '?'.
// A nil filter, or one whose fields are all absent, encodes to "".
func Encode(filter any) (string, error) {
	if filter == nil {
		return "", nil
	}
	v := reflect.ValueOf(filter)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "", nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return "", fmt.Errorf("query: unsupported filter type %s", v.Type())
	}

	var pairs []string
	if err := appendStruct(&pairs, v); err != nil {
		return "", err
	}
	return strings.Join(pairs, "&"), nil
}

// Target composes {baseURL}/{resource}/{segments...}{?query}.
//
// Each segment is escaped on its own, so a '/' inside an address cannot
// introduce an extra path level. Without segments the resource keeps its
// trailing slash; without a query there is no '?'. An empty segment is
// rejected since it would address the resource's list instead.
func Target(baseURL, resource string, filter any, segments ...string) (string, error) {
	for i, s := range segments {
		if s == "" {
			return "", fmt.Errorf("%s: path segment %d cannot be empty", resource, i)
		}
	}
	q, err := Encode(filter)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(baseURL)
	b.WriteByte('/')
	b.WriteString(resource)
	b.WriteByte('/')
	for i, s := range segments {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(url.PathEscape(s))
	}
	if q != "" {
		b.WriteByte('?')
		b.WriteString(q)
	}
	return b.String(), nil
}

// Escape percent-encodes s for use as a query key or value.
func Escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func appendStruct(pairs *[]string, v reflect.Value) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fv := v.Field(i)

		if f.Anonymous {
			if fv.Kind() == reflect.Pointer {
				if fv.IsNil() {
					continue
				}
				fv = fv.Elem()
			}
			if fv.Kind() == reflect.Struct {
				if err := appendStruct(pairs, fv); err != nil {
					return err
				}
				continue
			}
		}

		key := f.Tag.Get("url")
		if key == "" || key == "-" || !f.IsExported() {
			continue
		}
		if err := appendField(pairs, key, fv); err != nil {
			return fmt.Errorf("query: field %s: %w", f.Name, err)
		}
	}
	return nil
}

func appendField(pairs *[]string, key string, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return appendField(pairs, key, v.Elem())
	case reflect.Slice:
		if v.IsNil() {
			return nil
		}
		fallthrough
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			s, err := scalar(v.Index(i))
			if err != nil {
				return err
			}
			*pairs = append(*pairs, Escape(key)+"="+Escape(s))
		}
		return nil
	}

	s, err := scalar(v)
	if err != nil {
		return err
	}
	*pairs = append(*pairs, Escape(key)+"="+Escape(s))
	return nil
}

func scalar(v reflect.Value) (string, error) {
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), nil
	case reflect.Pointer:
		if v.IsNil() {
			return "", fmt.Errorf("nil element")
		}
		return scalar(v.Elem())
	default:
		return "", fmt.Errorf("unsupported kind %s", v.Kind())
	}
}
