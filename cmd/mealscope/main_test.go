package main

import (
	"testing"
)

func TestRootPersistentFlags(t *testing.T) {
	cmd := newRootCmd()
	f := cmd.PersistentFlags()

	input, _ := f.GetString("input")
	if input != "dishes.json" {
		t.Errorf("default input = %q, want dishes.json", input)
	}

	for _, flag := range []string{"input", "config"} {
		if f.Lookup(flag) == nil {
			t.Errorf("missing persistent flag: %s", flag)
		}
	}
}

func TestAnalyzeCmdFlags(t *testing.T) {
	cmd := newAnalyzeCmd(&rootOptions{})
	f := cmd.Flags()

	format, _ := f.GetString("format")
	if format != "terminal" {
		t.Errorf("default format = %q, want terminal", format)
	}

	for _, flag := range []string{"format", "excel", "save"} {
		if f.Lookup(flag) == nil {
			t.Errorf("missing flag: %s", flag)
		}
	}
}

func TestChartCmdFlags(t *testing.T) {
	cmd := newChartCmd(&rootOptions{})
	f := cmd.Flags()

	for _, flag := range []string{"out", "mode"} {
		if f.Lookup(flag) == nil {
			t.Errorf("missing flag: %s", flag)
		}
	}
}

func TestComboCmdFlags(t *testing.T) {
	cmd := newComboCmd(&rootOptions{})
	f := cmd.Flags()

	limit, _ := f.GetInt("limit")
	if limit != 5 {
		t.Errorf("default limit = %d, want 5", limit)
	}

	calorieLimit, _ := f.GetFloat64("calorie-limit")
	if calorieLimit != 2000 {
		t.Errorf("default calorie-limit = %v, want 2000", calorieLimit)
	}
}

func TestServeCmdFlags(t *testing.T) {
	cmd := newServeCmd(&rootOptions{})
	f := cmd.Flags()

	for _, flag := range []string{"addr", "watch", "open", "mode"} {
		if f.Lookup(flag) == nil {
			t.Errorf("missing flag: %s", flag)
		}
	}
}

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"a", "b", "c"}, "a"},
		{[]string{"", "b", "c"}, "b"},
		{[]string{"", "", "c"}, "c"},
		{[]string{"", "", ""}, ""},
	}

	for _, tt := range tests {
		got := firstNonEmpty(tt.args...)
		if got != tt.want {
			t.Errorf("firstNonEmpty(%v) = %q, want %q", tt.args, got, tt.want)
		}
	}
}
