// Package ptr provides helpers for moving between values and the pointers
// used by the optional members of the glue structures.
package ptr

import "time"

// Of returns a pointer to v. It works for any type, including the glue
// enumerations.
func Of[T any](v T) *T {
	return &v
}

// Value returns the value p points to or the zero value if p is nil.
func Value[T any](p *T) T {
	if p != nil {
		return *p
	}
	var zero T
	return zero
}

// String returns a pointer to the string value passed in.
func String(v string) *string {
	return &v
}

// ToString returns the value of the string pointer passed in or
// "" if the pointer is nil.
func ToString(p *string) string {
	return Value(p)
}

// Bool returns a pointer to the bool value passed in.
func Bool(v bool) *bool {
	return &v
}

// ToBool returns the value of the bool pointer passed in or
// false if the pointer is nil.
func ToBool(p *bool) bool {
	return Value(p)
}

// Int32 returns a pointer to the int32 value passed in.
func Int32(v int32) *int32 {
	return &v
}

// ToInt32 returns the value of the int32 pointer passed in or
// 0 if the pointer is nil.
func ToInt32(p *int32) int32 {
	return Value(p)
}

// Int64 returns a pointer to the int64 value passed in.
func Int64(v int64) *int64 {
	return &v
}

// ToInt64 returns the value of the int64 pointer passed in or
// 0 if the pointer is nil.
func ToInt64(p *int64) int64 {
	return Value(p)
}

// Float64 returns a pointer to the float64 value passed in.
func Float64(v float64) *float64 {
	return &v
}

// ToFloat64 returns the value of the float64 pointer passed in or
// 0 if the pointer is nil.
func ToFloat64(p *float64) float64 {
	return Value(p)
}

// Time returns a pointer to the time.Time value passed in.
func Time(v time.Time) *time.Time {
	return &v
}

// ToTime returns the value of the time.Time pointer passed in or
// time.Time{} if the pointer is nil.
func ToTime(p *time.Time) time.Time {
	return Value(p)
}
