package mlsolid

import (
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/MKhiriev/mlsolid-go/models"
)

// ParseMetrics converts a [Run.Log] mapping into metrics, one per key,
// ordered by key.
func ParseMetrics(data map[string]any) ([]models.Metric, error) {
	names := make([]string, 0, len(data))
	for name := range data {
		names = append(names, name)
	}
	sort.Strings(names)

	metrics := make([]models.Metric, 0, len(names))
	for _, name := range names {
		m, err := ParseMetric(name, data[name])
		if err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}

	return metrics, nil
}

// ParseMetric types a single logged value.
//
// Slices and arrays are flattened one level. Integers count as floats, so a
// series of numbers becomes a float metric and a series of strings a string
// metric. Anything else, including a mix of numbers and strings, becomes a
// string metric of the formatted values.
//
// A numeric series containing NaN or an infinity is rejected with
// [ErrInvalidMetric]: such doubles cannot be encoded.
func ParseMetric(name string, value any) (models.Metric, error) {
	if name == "" {
		return models.Metric{}, fmt.Errorf("%w: empty name", ErrInvalidMetric)
	}
	if value == nil {
		return models.Metric{}, fmt.Errorf("%w: %q has no value", ErrInvalidMetric, name)
	}

	flat := flatten(value)

	floats := make([]float64, 0, len(flat))
	strs := make([]string, 0, len(flat))
	allNumbers, allStrings := true, true

	for _, v := range flat {
		if f, ok := asFloat(v); ok {
			floats = append(floats, f)
		} else {
			allNumbers = false
		}
		if s, ok := v.(string); ok {
			strs = append(strs, s)
		} else {
			allStrings = false
		}
	}

	switch {
	case len(flat) == 0:
		return models.StrMetric(name), nil
	case allNumbers:
		for _, f := range floats {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return models.Metric{}, fmt.Errorf("%w: %q holds non-finite value %v", ErrInvalidMetric, name, f)
			}
		}
		return models.FloatMetric(name, floats...), nil
	case allStrings:
		return models.StrMetric(name, strs...), nil
	}

	// Mixed series are formatted element by element after flattening, so
	// []any{1, "a"} becomes ["1", "a"] rather than one string for the slice.
	formatted := make([]string, 0, len(flat))
	for _, v := range flat {
		formatted = append(formatted, fmt.Sprint(v))
	}
	return models.StrMetric(name, formatted...), nil
}

func flatten(value any) []any {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{value}
	}

	out := make([]any, 0, rv.Len())
	for i := range rv.Len() {
		out = append(out, rv.Index(i).Interface())
	}
	return out
}

func asFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
