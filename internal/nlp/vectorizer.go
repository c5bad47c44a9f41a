package nlp

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// DefaultMaxFeatures caps the fitted vocabulary size.
const DefaultMaxFeatures = 1000

// Vectorizer turns text into L2-normalized TF-IDF vectors over a vocabulary
// fitted from a training corpus. Fields are exported so a fitted vectorizer
// can be persisted inside the classifier artifact.
type Vectorizer struct {
	MaxFeatures int
	Vocabulary  map[string]int
	IDF         []float64
}

func NewVectorizer(maxFeatures int) *Vectorizer {
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}
	return &Vectorizer{MaxFeatures: maxFeatures}
}

// Fit builds the vocabulary from the corpus, keeping the MaxFeatures most
// frequent terms, and computes smoothed inverse document frequencies.
func (v *Vectorizer) Fit(docs []string) {
	termCounts := make(map[string]int)
	docFreq := make(map[string]int)
	for _, doc := range docs {
		tokens := Tokenize(doc)
		seen := make(map[string]bool, len(tokens))
		for _, tok := range tokens {
			termCounts[tok]++
			if !seen[tok] {
				docFreq[tok]++
				seen[tok] = true
			}
		}
	}

	terms := make([]string, 0, len(termCounts))
	for term := range termCounts {
		terms = append(terms, term)
	}
	// Most frequent terms first; ties resolved alphabetically so the fitted
	// vocabulary is reproducible across runs.
	sort.Slice(terms, func(i, j int) bool {
		if termCounts[terms[i]] != termCounts[terms[j]] {
			return termCounts[terms[i]] > termCounts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > v.MaxFeatures {
		terms = terms[:v.MaxFeatures]
	}
	sort.Strings(terms)

	v.Vocabulary = make(map[string]int, len(terms))
	v.IDF = make([]float64, len(terms))
	n := float64(len(docs))
	for i, term := range terms {
		v.Vocabulary[term] = i
		// Smoothed IDF: ln((1+n)/(1+df)) + 1.
		v.IDF[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}
}

// Transform vectorizes text with the fitted vocabulary. Tokens outside the
// vocabulary contribute nothing; an all-zero vector is a valid result.
func (v *Vectorizer) Transform(text string) []float64 {
	vec := make([]float64, len(v.IDF))
	for _, tok := range Tokenize(text) {
		if idx, ok := v.Vocabulary[tok]; ok {
			vec[idx] += v.IDF[idx]
		}
	}
	if norm := floats.Norm(vec, 2); norm > 0 {
		floats.Scale(1/norm, vec)
	}
	return vec
}

// Dimensions returns the fitted vocabulary size.
func (v *Vectorizer) Dimensions() int {
	return len(v.IDF)
}
