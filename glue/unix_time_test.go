package glue

import (
	"encoding/json"
	"testing"
	"time"
)

func TestUnixTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		check   func(t *testing.T, ut *UnixTime)
	}{
		{
			name:  "numeric unix timestamp",
			input: `1755005925.233`,
			check: func(t *testing.T, ut *UnixTime) {
				expected := time.Unix(1755005925, 233000000)
				if !ut.Time.Equal(expected) {
					t.Errorf("expected %v, got %v", expected, ut.Time)
				}
			},
		},
		{
			name:  "integer unix timestamp",
			input: `1755005925`,
			check: func(t *testing.T, ut *UnixTime) {
				expected := time.Unix(1755005925, 0)
				if !ut.Time.Equal(expected) {
					t.Errorf("expected %v, got %v", expected, ut.Time)
				}
			},
		},
		{
			name:  "RFC3339 string",
			input: `"2025-01-10T15:30:00Z"`,
			check: func(t *testing.T, ut *UnixTime) {
				expected, _ := time.Parse(time.RFC3339, "2025-01-10T15:30:00Z")
				if !ut.Time.Equal(expected) {
					t.Errorf("expected %v, got %v", expected, ut.Time)
				}
			},
		},
		{
			name:    "invalid format",
			input:   `"not a timestamp"`,
			wantErr: true,
		},
		{
			name:  "null value",
			input: `null`,
			check: func(t *testing.T, ut *UnixTime) {
				if !ut.Time.IsZero() {
					t.Errorf("expected zero time for null, got %v", ut.Time)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ut UnixTime
			err := ut.UnmarshalJSON([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && tt.check != nil {
				tt.check(t, &ut)
			}
		})
	}
}

func TestUnixTime_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		time UnixTime
		want string
	}{
		{
			name: "normal timestamp",
			time: UnixTime{Time: time.Unix(1755005925, 233000000)},
			want: `1755005925.233`,
		},
		{
			name: "sub-millisecond precision is dropped",
			time: UnixTime{Time: time.Unix(1755005925, 233999999)},
			want: `1755005925.233`,
		},
		{
			name: "zero time",
			time: UnixTime{},
			want: `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.time)
			if err != nil {
				t.Fatalf("MarshalJSON() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("MarshalJSON() = %v, want %v", string(got), tt.want)
			}
		})
	}
}

func TestUnixTime_String(t *testing.T) {
	ut := UnixTime{Time: time.Date(2025, 1, 10, 15, 30, 0, 0, time.FixedZone("JST", 9*3600))}
	if got := ut.String(); got != "2025-01-10T06:30:00Z" {
		t.Errorf("String() = %s", got)
	}
}

func TestFromTimeAndToTime(t *testing.T) {
	if FromTime(nil) != nil {
		t.Errorf("expected nil for nil input")
	}
	var nilTime *UnixTime
	if nilTime.ToTime() != nil {
		t.Errorf("expected nil for nil receiver")
	}

	now := time.Now()
	ut := FromTime(&now)
	if !ut.ToTime().Equal(now) {
		t.Errorf("expected %v, got %v", now, ut.ToTime())
	}
}
