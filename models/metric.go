// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MetricKind is the value type shared by every value of a [Metric].
type MetricKind string

const (
	MetricKindFloat  MetricKind = "float"
	MetricKindInt    MetricKind = "int"
	MetricKindString MetricKind = "string"
)

// Val is a single metric value. Exactly one of the fields is set; on the
// wire it is encoded as an object with a single key, e.g. {"double": 0.5}.
type Val struct {
	Double *float64 `json:"double,omitempty"`
	Int    *int64   `json:"int,omitempty"`
	Str    *string  `json:"str,omitempty"`
}

// DoubleVal wraps v into a [Val].
func DoubleVal(v float64) Val { return Val{Double: &v} }

// IntVal wraps v into a [Val].
func IntVal(v int64) Val { return Val{Int: &v} }

// StrVal wraps v into a [Val].
func StrVal(v string) Val { return Val{Str: &v} }

// Kind reports which field of the value is set. A zero Val is reported as a
// string value.
func (v Val) Kind() MetricKind {
	switch {
	case v.Double != nil:
		return MetricKindFloat
	case v.Int != nil:
		return MetricKindInt
	default:
		return MetricKindString
	}
}

// Value returns the value held by v as float64, int64 or string.
func (v Val) Value() any {
	switch {
	case v.Double != nil:
		return *v.Double
	case v.Int != nil:
		return *v.Int
	case v.Str != nil:
		return *v.Str
	default:
		return ""
	}
}

// Metric is a named series of values recorded against a run.
type Metric struct {
	Name string `json:"name"`
	Vals []Val  `json:"vals"`
}

// FloatMetric builds a metric of double values.
func FloatMetric(name string, vals ...float64) Metric {
	m := Metric{Name: name, Vals: make([]Val, 0, len(vals))}
	for _, v := range vals {
		m.Vals = append(m.Vals, DoubleVal(v))
	}
	return m
}

// IntMetric builds a metric of integer values.
func IntMetric(name string, vals ...int64) Metric {
	m := Metric{Name: name, Vals: make([]Val, 0, len(vals))}
	for _, v := range vals {
		m.Vals = append(m.Vals, IntVal(v))
	}
	return m
}

// StrMetric builds a metric of string values.
func StrMetric(name string, vals ...string) Metric {
	m := Metric{Name: name, Vals: make([]Val, 0, len(vals))}
	for _, v := range vals {
		m.Vals = append(m.Vals, StrVal(v))
	}
	return m
}

// Kind is decided by the first value; a metric without values is a string
// metric.
func (m Metric) Kind() MetricKind {
	if len(m.Vals) == 0 {
		return MetricKindString
	}
	return m.Vals[0].Kind()
}

// Values unwraps every value of the metric.
func (m Metric) Values() []any {
	out := make([]any, 0, len(m.Vals))
	for _, v := range m.Vals {
		out = append(out, v.Value())
	}
	return out
}
