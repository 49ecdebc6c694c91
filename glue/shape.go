package glue

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Shape is implemented by every structure in the model.
type Shape interface {
	fmt.Stringer
	// ShapeName returns the model name of the structure.
	ShapeName() string
	// Hash returns a hash consistent with the structure's Equal method.
	Hash() uint64
}

type debugWriter struct {
	b strings.Builder
}

func newDebugWriter() *debugWriter {
	w := &debugWriter{}
	w.b.WriteByte('{')
	return w
}

// field writes "name: value". The separator is skipped only after the
// structure's last member, so a set field followed by unset ones still
// carries a trailing comma.
func (w *debugWriter) field(name string, v any, last bool) {
	w.b.WriteString(name)
	w.b.WriteString(": ")
	w.b.WriteString(formatValue(v))
	if !last {
		w.b.WriteByte(',')
	}
}

func (w *debugWriter) String() string {
	return w.b.String() + "}"
}

func formatValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(v)
}

func formatList[T any](v []T) string {
	parts := make([]string, len(v))
	for i := range v {
		if s, ok := any(&v[i]).(fmt.Stringer); ok {
			parts[i] = s.String()
			continue
		}
		parts[i] = formatValue(v[i])
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatMap[V any](m map[string]V) string {
	parts := make([]string, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		parts = append(parts, k+"="+formatValue(m[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

const hashSeed uint64 = 1

func hashMix(h, v uint64) uint64 {
	return 31*h + v
}

type hasher interface {
	Hash() uint64
}

func hashPtr[T any](v *T) uint64 {
	if v == nil {
		return 0
	}
	return hashElem(v)
}

func hashElem[T any](p *T) uint64 {
	if h, ok := any(p).(hasher); ok {
		return h.Hash()
	}
	return hashValue(*p)
}

func hashValue(v any) uint64 {
	switch v := v.(type) {
	case string:
		return xxhash.Sum64String(v)
	case bool:
		if v {
			return 1231
		}
		return 1237
	case int32:
		return uint64(uint32(v))
	case int64:
		return uint64(v)
	case float32:
		return floatBits(float64(v))
	case float64:
		return floatBits(v)
	case UnixTime:
		return uint64(v.UnixNano())
	case fmt.Stringer:
		return xxhash.Sum64String(v.String())
	}
	return xxhash.Sum64String(fmt.Sprint(v))
}

func hashList[T any](v []T) uint64 {
	if v == nil {
		return 0
	}
	h := hashSeed
	for i := range v {
		h = hashMix(h, hashElem(&v[i]))
	}
	return h
}

// hashMap is order independent.
func hashMap[V any](m map[string]V) uint64 {
	if m == nil {
		return 0
	}
	var h uint64
	for k, v := range m {
		h += hashValue(k) ^ hashElem(&v)
	}
	return h
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// canonicalNaN is the single bit pattern every NaN compares and hashes as.
const canonicalNaN uint64 = 0x7ff8000000000000

// floatBits orders floats like Double.equals: every NaN is the same value and
// 0.0 differs from -0.0.
func floatBits(v float64) uint64 {
	if math.IsNaN(v) {
		return canonicalNaN
	}
	return math.Float64bits(v)
}

func equalFloat[F float32 | float64](a, b *F) bool {
	if a == nil || b == nil {
		return a == b
	}
	return floatBits(float64(*a)) == floatBits(float64(*b))
}

func equalTime(a, b *UnixTime) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Time.Equal(b.Time)
}

func equalList[T comparable](a, b []T) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return slices.Equal(a, b)
}

func equalShapes[T any, P interface {
	*T
	Equal(P) bool
}](a, b []T) bool {
	if (a == nil) != (b == nil) || len(a) != len(b) {
		return false
	}
	for i := range a {
		if !P(&a[i]).Equal(P(&b[i])) {
			return false
		}
	}
	return true
}

func equalMap[V comparable](a, b map[string]V) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return maps.Equal(a, b)
}
