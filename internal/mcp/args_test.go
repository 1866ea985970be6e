package mcp

import (
	"errors"
	"testing"
)

func TestRequireString(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]any
		key     string
		want    string
		wantErr string
	}{
		{name: "plain string", args: map[string]any{"jobId": "job001"}, key: "jobId", want: "job001"},
		{name: "zero stays zero", args: map[string]any{"quantity": float64(0)}, key: "quantity", want: "0"},
		{name: "false stays false", args: map[string]any{"flag": false}, key: "flag", want: "false"},
		{name: "empty string is present", args: map[string]any{"notes": ""}, key: "notes", want: ""},
		{name: "float keeps fraction", args: map[string]any{"lat": 40.7128}, key: "lat", want: "40.7128"},
		{name: "absent", args: map[string]any{}, key: "jobId", wantErr: "Missing required argument: jobId"},
		{name: "null", args: map[string]any{"jobId": nil}, key: "jobId", wantErr: "Missing required argument: jobId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RequireString(tt.args, tt.key)
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("error = %v, want %q", err, tt.wantErr)
				}
				var missing *MissingArgumentError
				if !errors.As(err, &missing) {
					t.Fatalf("error type = %T, want *MissingArgumentError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOptionalString(t *testing.T) {
	if got := OptionalString(map[string]any{}, "date"); got != nil {
		t.Fatalf("absent key: got %q, want nil", *got)
	}
	if got := OptionalString(map[string]any{"date": nil}, "date"); got != nil {
		t.Fatalf("null value: got %q, want nil", *got)
	}
	if got := OptionalString(map[string]any{"date": "2025-06-03"}, "date"); got == nil || *got != "2025-06-03" {
		t.Fatalf("present value: got %v, want 2025-06-03", got)
	}
	if got := OptionalString(map[string]any{"n": float64(7)}, "n"); got == nil || *got != "7" {
		t.Fatalf("numeric value: got %v, want 7", got)
	}
}

func TestRequireNumber(t *testing.T) {
	if _, err := RequireNumber(map[string]any{}, "latitude"); err == nil || err.Error() != "Missing required argument: latitude" {
		t.Fatalf("absent: error = %v", err)
	}

	if _, err := RequireNumber(map[string]any{"latitude": "north"}, "latitude"); err == nil || err.Error() != "Invalid number for argument: latitude" {
		t.Fatalf("unparseable: error = %v", err)
	}
	var invalid *InvalidArgumentError
	_, err := RequireNumber(map[string]any{"latitude": "north"}, "latitude")
	if !errors.As(err, &invalid) {
		t.Fatalf("error type = %T, want *InvalidArgumentError", err)
	}

	got, err := RequireNumber(map[string]any{"latitude": 40.7128}, "latitude")
	if err != nil || got != 40.7128 {
		t.Fatalf("float: got %v, %v", got, err)
	}
	got, err = RequireNumber(map[string]any{"latitude": "12.5"}, "latitude")
	if err != nil || got != 12.5 {
		t.Fatalf("numeric string: got %v, %v", got, err)
	}
}

func TestOptionalNumber(t *testing.T) {
	n, err := OptionalNumber(map[string]any{}, "breakMinutes")
	if err != nil || n != nil {
		t.Fatalf("absent: got %v, %v", n, err)
	}
	n, err = OptionalNumber(map[string]any{"breakMinutes": float64(15)}, "breakMinutes")
	if err != nil || n == nil || *n != 15 {
		t.Fatalf("present: got %v, %v", n, err)
	}
	if _, err := OptionalNumber(map[string]any{"breakMinutes": "soon"}, "breakMinutes"); err == nil {
		t.Fatal("unparseable: want error")
	}
}
