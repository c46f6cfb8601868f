package model

// Category classifies a gloss token into one of the eight medical buckets.
type Category string

const (
	CategorySymptom   Category = "symptom"
	CategoryTreatment Category = "treatment"
	CategoryPersonnel Category = "personnel"
	CategoryBodyPart  Category = "body_part"
	CategoryAction    Category = "action"
	CategoryTimeWord  Category = "time_word"
	CategorySeverity  Category = "severity"
	CategoryLocation  Category = "location"
)

// Categorized groups gloss tokens by category. Order within each bucket
// matches order of appearance in the input. Tokens that match no category
// are dropped and appear in no bucket.
type Categorized struct {
	Symptoms   []string `json:"symptoms,omitempty"`
	Treatments []string `json:"treatments,omitempty"`
	Personnel  []string `json:"personnel,omitempty"`
	BodyParts  []string `json:"body_parts,omitempty"`
	Actions    []string `json:"actions,omitempty"`
	TimeWords  []string `json:"time_words,omitempty"`
	Severity   []string `json:"severity,omitempty"`
	Locations  []string `json:"locations,omitempty"`
}

// Append adds a token to the bucket for the given category.
func (c *Categorized) Append(cat Category, token string) {
	switch cat {
	case CategorySymptom:
		c.Symptoms = append(c.Symptoms, token)
	case CategoryTreatment:
		c.Treatments = append(c.Treatments, token)
	case CategoryPersonnel:
		c.Personnel = append(c.Personnel, token)
	case CategoryBodyPart:
		c.BodyParts = append(c.BodyParts, token)
	case CategoryAction:
		c.Actions = append(c.Actions, token)
	case CategoryTimeWord:
		c.TimeWords = append(c.TimeWords, token)
	case CategorySeverity:
		c.Severity = append(c.Severity, token)
	case CategoryLocation:
		c.Locations = append(c.Locations, token)
	}
}

// Bucket returns the tokens collected for the given category.
func (c *Categorized) Bucket(cat Category) []string {
	switch cat {
	case CategorySymptom:
		return c.Symptoms
	case CategoryTreatment:
		return c.Treatments
	case CategoryPersonnel:
		return c.Personnel
	case CategoryBodyPart:
		return c.BodyParts
	case CategoryAction:
		return c.Actions
	case CategoryTimeWord:
		return c.TimeWords
	case CategorySeverity:
		return c.Severity
	case CategoryLocation:
		return c.Locations
	default:
		return nil
	}
}
