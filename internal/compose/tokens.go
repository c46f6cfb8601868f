package compose

// maxTokens bounds the unique-token sequence fed into the composers; longer
// inputs lose coherence in the template rules.
const maxTokens = 7

// NoSignsMessage is the terminal response for empty input.
const NoSignsMessage = "No medical signs detected"

// Unique returns the unique tokens of the input in first-occurrence order.
func Unique(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	unique := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if seen[token] {
			continue
		}
		seen[token] = true
		unique = append(unique, token)
	}
	return unique
}

// uniqueLimited deduplicates and truncates to the first maxTokens unique
// tokens. Applied before categorization in both composer variants.
func uniqueLimited(tokens []string) []string {
	unique := Unique(tokens)
	if len(unique) > maxTokens {
		unique = unique[:maxTokens]
	}
	return unique
}
