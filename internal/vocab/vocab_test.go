package vocab

import (
	"reflect"
	"testing"

	"github.com/signbridge/signbridge/internal/model"
)

func TestCategorize_BasicBuckets(t *testing.T) {
	cats := Categorize([]string{"pain", "medication", "doctor", "head", "need", "today", "very", "pharmacy"})

	checks := []struct {
		name string
		got  []string
		want []string
	}{
		{"symptoms", cats.Symptoms, []string{"pain"}},
		{"treatments", cats.Treatments, []string{"medication"}},
		{"personnel", cats.Personnel, []string{"doctor"}},
		{"body parts", cats.BodyParts, []string{"head"}},
		{"actions", cats.Actions, []string{"need"}},
		{"time words", cats.TimeWords, []string{"today"}},
		{"severity", cats.Severity, []string{"very"}},
		{"locations", cats.Locations, []string{"pharmacy"}},
	}

	for _, c := range checks {
		if !reflect.DeepEqual(c.got, c.want) {
			t.Errorf("Expected %s %v, got %v", c.name, c.want, c.got)
		}
	}
}

func TestCategorize_PriorityResolvesOverlap(t *testing.T) {
	// Tokens present in more than one category list must land in the
	// highest-priority bucket only.
	tests := []struct {
		token string
		want  model.Category
		other model.Category
	}{
		{"throat", model.CategorySymptom, model.CategoryBodyPart},
		{"hospital", model.CategoryPersonnel, model.CategoryLocation},
		{"emergency", model.CategoryPersonnel, model.CategoryLocation},
	}

	for _, tt := range tests {
		cats := Categorize([]string{tt.token})
		if got := cats.Bucket(tt.want); len(got) != 1 || got[0] != tt.token {
			t.Errorf("Expected %q in %s bucket, got %v", tt.token, tt.want, got)
		}
		if got := cats.Bucket(tt.other); len(got) != 0 {
			t.Errorf("Expected %q absent from %s bucket, got %v", tt.token, tt.other, got)
		}
	}
}

func TestCategorize_UnknownTokensDropped(t *testing.T) {
	cats := Categorize([]string{"xyz", "pain", "abc"})

	if !reflect.DeepEqual(cats.Symptoms, []string{"pain"}) {
		t.Errorf("Expected symptoms [pain], got %v", cats.Symptoms)
	}

	all := [][]string{
		cats.Treatments, cats.Personnel, cats.BodyParts, cats.Actions,
		cats.TimeWords, cats.Severity, cats.Locations,
	}
	for _, bucket := range all {
		if len(bucket) != 0 {
			t.Errorf("Expected empty bucket for unknown tokens, got %v", bucket)
		}
	}
}

func TestCategorize_EmptyInput(t *testing.T) {
	cats := Categorize(nil)
	if !reflect.DeepEqual(cats, model.Categorized{}) {
		t.Errorf("Expected all-empty buckets, got %+v", cats)
	}
}

func TestCategorize_CommutesWithDeduplication(t *testing.T) {
	// Categorizing deduplicated input must equal categorizing then
	// deduplicating each bucket.
	input := []string{"pain", "medication", "pain", "doctor", "medication", "head"}

	dedup := func(tokens []string) []string {
		seen := make(map[string]bool)
		var out []string
		for _, tok := range tokens {
			if !seen[tok] {
				seen[tok] = true
				out = append(out, tok)
			}
		}
		return out
	}

	fromUnique := Categorize(dedup(input))

	raw := Categorize(input)
	perBucket := model.Categorized{
		Symptoms:   dedup(raw.Symptoms),
		Treatments: dedup(raw.Treatments),
		Personnel:  dedup(raw.Personnel),
		BodyParts:  dedup(raw.BodyParts),
		Actions:    dedup(raw.Actions),
		TimeWords:  dedup(raw.TimeWords),
		Severity:   dedup(raw.Severity),
		Locations:  dedup(raw.Locations),
	}

	if !reflect.DeepEqual(fromUnique, perBucket) {
		t.Errorf("Categorization does not commute with deduplication:\n dedup-first: %+v\n dedup-after: %+v", fromUnique, perBucket)
	}
}

func TestCategorize_PreservesInputOrder(t *testing.T) {
	cats := Categorize([]string{"fever", "cough", "pain"})
	want := []string{"fever", "cough", "pain"}
	if !reflect.DeepEqual(cats.Symptoms, want) {
		t.Errorf("Expected symptoms %v, got %v", want, cats.Symptoms)
	}
}
