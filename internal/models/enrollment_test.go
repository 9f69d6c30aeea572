package models

import (
	"encoding/json"
	"testing"
)

func TestBoolFlagUnmarshal(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  BoolFlag
	}{
		{"bool true", `true`, true},
		{"bool false", `false`, false},
		{"string true", `"true"`, true},
		{"string false", `"false"`, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var flag BoolFlag
			if err := json.Unmarshal([]byte(tc.input), &flag); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.input, err)
			}
			if flag != tc.want {
				t.Errorf("got %v, want %v", flag, tc.want)
			}
		})
	}
}

func TestBoolFlagRejectsOtherValues(t *testing.T) {
	for _, input := range []string{`"yes"`, `1`, `null`} {
		var flag BoolFlag
		if err := json.Unmarshal([]byte(input), &flag); err == nil {
			t.Errorf("expected unmarshal of %s to fail", input)
		}
	}
}

func TestBoolFlagMarshalsAsBool(t *testing.T) {
	data, err := json.Marshal(BoolFlag(true))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "true" {
		t.Errorf("got %s, want true", data)
	}
}
