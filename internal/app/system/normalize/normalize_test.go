package normalize

import "testing"

func TestNameKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Jane Doe", "jane doe"},
		{" Jane  Doe ", "jane doe"},
		{"jane doe", "jane doe"},
		{"JANE\tDOE", "jane doe"},
		{"Jane   van   Doe", "jane van doe"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := NameKey(tt.input)
			if got != tt.want {
				t.Errorf("NameKey(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNameKey_Idempotent(t *testing.T) {
	inputs := []string{" Jane  Doe ", "A\t B\nC", "", "already normal"}
	for _, in := range inputs {
		once := NameKey(in)
		twice := NameKey(once)
		if once != twice {
			t.Errorf("NameKey(NameKey(%q)) = %q, want %q", in, twice, once)
		}
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Jane Doe", "Jane Doe"},
		{"  Jane Doe  ", "Jane Doe"},
		{"UPPERCASE NAME", "UPPERCASE NAME"}, // Name preserves case
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Name(tt.input)
			if got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
