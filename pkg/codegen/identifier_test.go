package codegen

import "testing"

func TestMakePascal(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		fallback  string
		want      string
	}{
		{"snake case", "go_home", "Fallback", "GoHome"},
		{"spaces", "deliver the package", "Fallback", "DeliverThePackage"},
		{"camel input", "dealCompleted", "Fallback", "DealCompleted"},
		{"pascal input", "OnDealCompleted", "Fallback", "OnDealCompleted"},
		{"punctuation stripped", "go, home!", "Fallback", "GoHome"},
		{"empty", "", "Fallback", "Fallback"},
		{"only symbols", "!!!", "Fallback", "Fallback"},
		{"leading digit", "1st_objective", "Fallback", "Fallback"},
		{"digit inside kept", "visit_2nd_floor", "Fallback", "Visit2NdFloor"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MakePascal(tt.candidate, tt.fallback); got != tt.want {
				t.Errorf("MakePascal(%q) = %q, want %q", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestMakeCamel(t *testing.T) {
	tests := []struct {
		candidate string
		fallback  string
		want      string
	}{
		{"go_home", "fallback", "goHome"},
		{"OnDealCompleted", "fallback", "onDealCompleted"},
		{"", "fallback", "fallback"},
		{"99", "fallback", "fallback"},
	}
	for _, tt := range tests {
		if got := MakeCamel(tt.candidate, tt.fallback); got != tt.want {
			t.Errorf("MakeCamel(%q) = %q, want %q", tt.candidate, got, tt.want)
		}
	}
}

func TestMakePascal_Deterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got := MakePascal("some quest name", "X"); got != "SomeQuestName" {
			t.Fatalf("run %d: got %q", i, got)
		}
	}
}

func TestEnsureUnique(t *testing.T) {
	used := make(map[string]struct{})

	if got := EnsureUnique("handler", used, 2); got != "handler" {
		t.Errorf("first use should keep base, got %q", got)
	}
	if got := EnsureUnique("handler", used, 2); got != "handler2" {
		t.Errorf("second use should suffix, got %q", got)
	}
	if got := EnsureUnique("handler", used, 2); got != "handler3" {
		t.Errorf("third use should count up, got %q", got)
	}
}

func TestEnsureUnique_CaseInsensitive(t *testing.T) {
	used := make(map[string]struct{})
	EnsureUnique("GoHome", used, 2)

	if got := EnsureUnique("goHome", used, 2); got != "goHome2" {
		t.Errorf("expected case-insensitive collision to suffix, got %q", got)
	}
}
