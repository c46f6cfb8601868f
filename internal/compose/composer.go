// Package compose turns recognized sign-language gloss tokens into a single
// natural-language sentence for a medical context. It is a deterministic rule
// engine: tokens are deduplicated, bucketed by category, and matched against
// a priority-ordered table of sentence patterns, falling back to the grammar
// corrector when no pattern applies.
package compose

import (
	"context"
	"fmt"
	"strings"

	"github.com/signbridge/signbridge/internal/grammar"
	"github.com/signbridge/signbridge/internal/model"
	"github.com/signbridge/signbridge/internal/vocab"
)

// smoothingThreshold gates the second correction pass in the free-text
// variant: inputs of this many raw tokens or fewer are returned as composed.
const smoothingThreshold = 3

// Composer evaluates sentence patterns over categorized tokens. The corrector
// may be nil, in which case the fallback and smoothing paths return an error.
type Composer struct {
	corrector grammar.Corrector
}

// New creates a composer backed by the given grammar corrector.
func New(corrector grammar.Corrector) *Composer {
	return &Composer{corrector: corrector}
}

// state carries the per-call inputs the pattern predicates inspect. Built
// fresh per call; nothing is shared across requests.
type state struct {
	unique []string
	cats   model.Categorized
}

func newState(words []string) *state {
	unique := uniqueLimited(words)
	return &state{
		unique: unique,
		cats:   vocab.Categorize(unique),
	}
}

// pattern is one rule of the decision table: the first pattern whose match
// predicate holds wins, and its build function produces the sentence.
type pattern struct {
	name  string
	match func(s *state) bool
	build func(s *state) string
}

// freeTextPatterns is the decision table for the free-text variant.
var freeTextPatterns = []pattern{
	{
		name:  "symptom+treatment",
		match: func(s *state) bool { return len(s.cats.Symptoms) > 0 && len(s.cats.Treatments) > 0 },
		build: func(s *state) string {
			return fmt.Sprintf("I have %s and need %s", joinFirst(s.cats.Symptoms, 3), joinFirst(s.cats.Treatments, 2))
		},
	},
	{
		name:  "symptom+personnel",
		match: func(s *state) bool { return len(s.cats.Symptoms) > 0 && len(s.cats.Personnel) > 0 },
		build: func(s *state) string {
			return fmt.Sprintf("I have %s and need to see a %s", joinFirst(s.cats.Symptoms, 3), s.cats.Personnel[0])
		},
	},
	{
		name:  "symptom+bodypart",
		match: func(s *state) bool { return len(s.cats.Symptoms) > 0 && len(s.cats.BodyParts) > 0 },
		build: func(s *state) string {
			return fmt.Sprintf("I have %s in my %s", joinFirst(s.cats.Symptoms, 2), joinFirst(s.cats.BodyParts, 2))
		},
	},
	{
		name:  "symptom",
		match: func(s *state) bool { return len(s.cats.Symptoms) > 0 },
		build: func(s *state) string { return "I am experiencing " + joinFirst(s.cats.Symptoms, 4) },
	},
	{
		name:  "treatment",
		match: func(s *state) bool { return len(s.cats.Treatments) > 0 },
		build: func(s *state) string { return "I need " + joinFirst(s.cats.Treatments, 3) },
	},
	{
		name:  "personnel",
		match: func(s *state) bool { return len(s.cats.Personnel) > 0 },
		build: func(s *state) string { return "I need to see a " + s.cats.Personnel[0] },
	},
}

// structuredPatterns is the decision table for the structured variant. The
// exact-pattern entries come first: their predicates are subsets of several
// general ones, and a later position would let a less specific sentence win.
var structuredPatterns = []pattern{
	{
		// "need pain medication" style inputs of exactly three signs
		name: "exact:need-pain",
		match: func(s *state) bool {
			return len(s.unique) == 3 &&
				contains(s.cats.Actions, "need") &&
				contains(s.cats.Symptoms, "pain") &&
				(hasMedication(s) || len(s.cats.Locations) > 0)
		},
		build: func(s *state) string {
			if hasMedication(s) {
				return "I need medication for pain"
			}
			return fmt.Sprintf("I need medication from %s for pain", s.cats.Locations[0])
		},
	},
	{
		// "need medication pharmacy" style inputs
		name: "exact:need-medication-location",
		match: func(s *state) bool {
			return contains(s.cats.Actions, "need") && hasMedication(s) && len(s.cats.Locations) > 0
		},
		build: func(s *state) string {
			return fmt.Sprintf("I need medication from %s", s.cats.Locations[0])
		},
	},
	{
		name: "action+symptom+personnel",
		match: func(s *state) bool {
			return len(s.cats.Actions) > 0 && len(s.cats.Symptoms) > 0 && len(s.cats.Personnel) > 0
		},
		build: func(s *state) string {
			return fmt.Sprintf("I %s help for %s and %s to see a %s",
				s.cats.Actions[0], joinFirst(s.cats.Symptoms, 2), s.cats.Actions[0], s.cats.Personnel[0])
		},
	},
	{
		name: "action+symptom+treatment",
		match: func(s *state) bool {
			return len(s.cats.Actions) > 0 && len(s.cats.Symptoms) > 0 && len(s.cats.Treatments) > 0
		},
		build: func(s *state) string {
			return fmt.Sprintf("I %s %s for %s",
				s.cats.Actions[0], joinFirst(s.cats.Treatments, 2), joinFirst(s.cats.Symptoms, 2))
		},
	},
	{
		name: "symptom+treatment+personnel",
		match: func(s *state) bool {
			return len(s.cats.Symptoms) > 0 && len(s.cats.Treatments) > 0 && len(s.cats.Personnel) > 0
		},
		build: func(s *state) string {
			return fmt.Sprintf("I have %s and need %s from a %s",
				joinFirst(s.cats.Symptoms, 2), joinFirst(s.cats.Treatments, 1), s.cats.Personnel[0])
		},
	},
	{
		name:  "symptom+treatment",
		match: func(s *state) bool { return len(s.cats.Symptoms) > 0 && len(s.cats.Treatments) > 0 },
		build: func(s *state) string {
			return fmt.Sprintf("I have %s and need %s", joinFirst(s.cats.Symptoms, 3), joinFirst(s.cats.Treatments, 2))
		},
	},
	{
		name:  "symptom+personnel",
		match: func(s *state) bool { return len(s.cats.Symptoms) > 0 && len(s.cats.Personnel) > 0 },
		build: func(s *state) string {
			return fmt.Sprintf("I have %s and need to see a %s", joinFirst(s.cats.Symptoms, 3), s.cats.Personnel[0])
		},
	},
	{
		name:  "symptom+bodypart",
		match: func(s *state) bool { return len(s.cats.Symptoms) > 0 && len(s.cats.BodyParts) > 0 },
		build: func(s *state) string {
			return fmt.Sprintf("I have %s in my %s", joinFirst(s.cats.Symptoms, 2), joinFirst(s.cats.BodyParts, 2))
		},
	},
	{
		name:  "action+symptom",
		match: func(s *state) bool { return len(s.cats.Actions) > 0 && len(s.cats.Symptoms) > 0 },
		build: func(s *state) string {
			return fmt.Sprintf("I %s help for %s", s.cats.Actions[0], joinFirst(s.cats.Symptoms, 3))
		},
	},
	{
		name:  "action+treatment",
		match: func(s *state) bool { return len(s.cats.Actions) > 0 && len(s.cats.Treatments) > 0 },
		build: func(s *state) string {
			return fmt.Sprintf("I %s %s", s.cats.Actions[0], joinFirst(s.cats.Treatments, 3))
		},
	},
	{
		name:  "symptom",
		match: func(s *state) bool { return len(s.cats.Symptoms) > 0 },
		build: func(s *state) string { return "I am experiencing " + joinFirst(s.cats.Symptoms, 4) },
	},
	{
		name:  "treatment",
		match: func(s *state) bool { return len(s.cats.Treatments) > 0 },
		build: func(s *state) string { return "I need " + joinFirst(s.cats.Treatments, 3) },
	},
	{
		name:  "personnel",
		match: func(s *state) bool { return len(s.cats.Personnel) > 0 },
		build: func(s *state) string { return "I need to see a " + s.cats.Personnel[0] },
	},
}

// ComposeWords implements the structured variant: an explicit ordered token
// sequence, already segmented and lowercased by the recognizer. The context
// label is currently informational only.
func (c *Composer) ComposeWords(ctx context.Context, words []string, contextLabel string) (string, error) {
	if len(words) == 0 {
		return NoSignsMessage, nil
	}
	s := newState(words)
	for _, p := range structuredPatterns {
		if p.match(s) {
			return p.build(s), nil
		}
	}
	return c.correct(ctx, strings.Join(s.unique, " "))
}

// BeautifyText implements the free-text variant: lowercase, split on
// whitespace, compose, and smooth longer inputs with a second correction
// pass on the composed sentence.
func (c *Composer) BeautifyText(ctx context.Context, text string) (string, error) {
	words := strings.Fields(strings.ToLower(text))

	sentence, err := c.composeText(ctx, words)
	if err != nil {
		return "", err
	}

	if len(words) <= smoothingThreshold {
		return sentence, nil
	}
	return c.correct(ctx, sentence)
}

func (c *Composer) composeText(ctx context.Context, words []string) (string, error) {
	if len(words) == 0 {
		return NoSignsMessage, nil
	}
	s := newState(words)
	for _, p := range freeTextPatterns {
		if p.match(s) {
			return p.build(s), nil
		}
	}
	return c.correct(ctx, strings.Join(s.unique, " "))
}

func (c *Composer) correct(ctx context.Context, text string) (string, error) {
	if c.corrector == nil {
		return "", fmt.Errorf("no grammar provider configured")
	}
	corrected, err := c.corrector.Correct(ctx, text)
	if err != nil {
		return "", fmt.Errorf("grammar correction: %w", err)
	}
	return corrected, nil
}

// hasMedication reports whether the treatment bucket names a medication.
func hasMedication(s *state) bool {
	return contains(s.cats.Treatments, "medication") || contains(s.cats.Treatments, "medicine")
}

// joinFirst joins up to n leading tokens with ", ".
func joinFirst(tokens []string, n int) string {
	if len(tokens) > n {
		tokens = tokens[:n]
	}
	return strings.Join(tokens, ", ")
}

func contains(tokens []string, token string) bool {
	for _, t := range tokens {
		if t == token {
			return true
		}
	}
	return false
}
