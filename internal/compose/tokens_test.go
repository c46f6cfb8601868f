package compose

import (
	"reflect"
	"testing"
)

func TestUnique_PreservesFirstOccurrenceOrder(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"no duplicates", []string{"pain", "head"}, []string{"pain", "head"}},
		{"adjacent duplicates", []string{"pain", "pain", "head"}, []string{"pain", "head"}},
		{"interleaved duplicates", []string{"pain", "head", "pain", "need", "head"}, []string{"pain", "head", "need"}},
		{"empty", nil, []string{}},
	}

	for _, tt := range tests {
		got := Unique(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: Unique(%v) = %v, want %v", tt.name, tt.input, got, tt.want)
		}
	}
}

func TestUnique_Unbounded(t *testing.T) {
	input := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}
	got := Unique(input)
	if len(got) != 9 {
		t.Errorf("Expected Unique to keep all 9 tokens, got %d", len(got))
	}
}

func TestUniqueLimited_TruncatesToSeven(t *testing.T) {
	input := []string{"a", "b", "a", "c", "d", "e", "f", "g", "h", "i"}
	got := uniqueLimited(input)

	want := []string{"a", "b", "c", "d", "e", "f", "g"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("uniqueLimited(%v) = %v, want %v", input, got, want)
	}
}

func TestUniqueLimited_ShortInputUntouched(t *testing.T) {
	input := []string{"pain", "head"}
	got := uniqueLimited(input)
	if !reflect.DeepEqual(got, input) {
		t.Errorf("uniqueLimited(%v) = %v, want unchanged", input, got)
	}
}
