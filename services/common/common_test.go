package common

import (
	"reflect"
	"testing"
)

func TestResultPattern(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"04-17-22-35-48-59", true},
		{"1-2-3-4-5-6", true},
		{"1-2-3", false},
		{"123-4-5-6-7-8", false},
		{"1-2-3-4-5-6-7", false},
		{"a-b-c-d-e-f", false},
		{"1,2,3,4,5,6", false},
		{"", false},
		{"1-2-3-4-5-", false},
	}

	for _, tt := range tests {
		if got := ResultPattern.MatchString(tt.input); got != tt.valid {
			t.Errorf("ResultPattern(%q): expected %v, got %v", tt.input, tt.valid, got)
		}
	}
}

func TestParseNumbers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sep      string
		expected []int
	}{
		{"draw result", "04-17-22-35-48-59", "-", []int{4, 17, 22, 35, 48, 59}},
		{"game", "1,2,3,4,5,6", ",", []int{1, 2, 3, 4, 5, 6}},
		{"bad tokens skipped", "1,x,3", ",", []int{1, 3}},
		{"empty", "", ",", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseNumbers(tt.input, tt.sep)
			if !reflect.DeepEqual(tt.expected, got) {
				t.Errorf("ParseNumbers(%q): expected %v, got %v", tt.input, tt.expected, got)
			}
		})
	}
}

func TestFormatGame(t *testing.T) {
	got := FormatGame([]int{1, 2, 3, 40, 50, 60})
	if got != "1,2,3,40,50,60" {
		t.Errorf("expected 1,2,3,40,50,60, got %s", got)
	}
}
