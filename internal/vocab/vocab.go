// Package vocab holds the static medical sign-language vocabulary and the
// word categorizer built on top of it.
package vocab

import "github.com/signbridge/signbridge/internal/model"

// Category membership lists for the recognized medical vocabulary. The lists
// are not disjoint ("throat" is both a symptom and a body part, "hospital" is
// both personnel-adjacent and a location); assignment is resolved by the
// priority order below, not by the lists themselves.
var (
	symptomWords = []string{
		"pain", "headache", "fever", "nausea", "dizzy", "tired", "cough",
		"cold", "flu", "throat", "chest", "breathing", "stomach", "back",
		"knee", "shoulder", "hurt", "sick", "worse",
	}
	treatmentWords = []string{
		"medication", "treatment", "surgery", "prescription", "recovery",
		"medicine", "help", "better",
	}
	personnelWords = []string{"doctor", "nurse", "hospital", "emergency"}
	bodyPartWords  = []string{"heart", "lungs", "throat", "blood", "pressure", "head", "body"}
	actionWords    = []string{
		"need", "want", "go", "get", "make", "cannot", "sleep", "wake",
		"work", "move", "walk", "swallow", "spin",
	}
	timeWords     = []string{"yesterday", "today", "morning", "night", "week", "now", "start", "continue"}
	severityWords = []string{"very", "too", "much", "high", "hard", "urgent"}
	locationWords = []string{"pharmacy", "hospital", "emergency", "room"}
)

// entry pairs a category with its membership set.
type entry struct {
	cat model.Category
	set map[string]bool
}

// priority is the fixed categorization order. A token joins the first
// category whose set contains it; later categories are not checked.
var priority = []entry{
	{model.CategorySymptom, wordSet(symptomWords)},
	{model.CategoryTreatment, wordSet(treatmentWords)},
	{model.CategoryPersonnel, wordSet(personnelWords)},
	{model.CategoryBodyPart, wordSet(bodyPartWords)},
	{model.CategoryAction, wordSet(actionWords)},
	{model.CategoryTimeWord, wordSet(timeWords)},
	{model.CategorySeverity, wordSet(severityWords)},
	{model.CategoryLocation, wordSet(locationWords)},
}

func wordSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// Categorize partitions tokens into category buckets. Each token is assigned
// to at most one bucket (highest-priority match); tokens outside the
// vocabulary are dropped. Order within a bucket follows input order. Empty
// input yields all-empty buckets.
func Categorize(tokens []string) model.Categorized {
	var cats model.Categorized
	for _, token := range tokens {
		for _, e := range priority {
			if e.set[token] {
				cats.Append(e.cat, token)
				break // only the first matching category counts
			}
		}
	}
	return cats
}
