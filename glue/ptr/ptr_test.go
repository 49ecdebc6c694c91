package ptr_test

import (
	"testing"
	"time"

	"github.com/nandemo-ya/gluemodel/glue"
	"github.com/nandemo-ya/gluemodel/glue/ptr"
)

func TestString(t *testing.T) {
	v := "test"
	p := ptr.String(v)
	if p == nil || *p != v {
		t.Errorf("Expected %s, got %v", v, p)
	}

	if ptr.ToString(p) != v {
		t.Errorf("Expected %s, got %s", v, ptr.ToString(p))
	}

	if ptr.ToString(nil) != "" {
		t.Errorf("Expected empty string for nil, got %s", ptr.ToString(nil))
	}
}

func TestBool(t *testing.T) {
	p := ptr.Bool(true)
	if p == nil || !*p {
		t.Errorf("Expected true, got %v", p)
	}

	if ptr.ToBool(nil) {
		t.Errorf("Expected false for nil")
	}
}

func TestInt32(t *testing.T) {
	v := int32(42)
	p := ptr.Int32(v)
	if p == nil || *p != v {
		t.Errorf("Expected %d, got %v", v, p)
	}

	if ptr.ToInt32(p) != v {
		t.Errorf("Expected %d, got %d", v, ptr.ToInt32(p))
	}

	if ptr.ToInt32(nil) != 0 {
		t.Errorf("Expected 0 for nil, got %d", ptr.ToInt32(nil))
	}
}

func TestInt64AndFloat64(t *testing.T) {
	if ptr.ToInt64(ptr.Int64(7)) != 7 {
		t.Errorf("Expected 7")
	}
	if ptr.ToInt64(nil) != 0 {
		t.Errorf("Expected 0 for nil")
	}
	if ptr.ToFloat64(ptr.Float64(1.5)) != 1.5 {
		t.Errorf("Expected 1.5")
	}
	if ptr.ToFloat64(nil) != 0 {
		t.Errorf("Expected 0 for nil")
	}
}

func TestTime(t *testing.T) {
	v := time.Now()
	p := ptr.Time(v)
	if p == nil || !p.Equal(v) {
		t.Errorf("Expected %v, got %v", v, p)
	}

	if !ptr.ToTime(p).Equal(v) {
		t.Errorf("Expected %v, got %v", v, ptr.ToTime(p))
	}

	if !ptr.ToTime(nil).IsZero() {
		t.Errorf("Expected zero time for nil, got %v", ptr.ToTime(nil))
	}
}

func TestOfAndValue(t *testing.T) {
	p := ptr.Of(glue.WorkerTypeG1x)
	if p == nil || *p != glue.WorkerTypeG1x {
		t.Errorf("Expected %s, got %v", glue.WorkerTypeG1x, p)
	}

	if ptr.Value(p) != glue.WorkerTypeG1x {
		t.Errorf("Expected %s, got %s", glue.WorkerTypeG1x, ptr.Value(p))
	}

	var missing *glue.WorkerType
	if ptr.Value(missing) != "" {
		t.Errorf("Expected empty enum for nil, got %s", ptr.Value(missing))
	}
}
