package nlp

import (
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"
	"gonum.org/v1/gonum/floats"
)

// EmbeddingDim is the fixed dimensionality of text embeddings.
const EmbeddingDim = 384

// Document is one corpus entry ranked by the matcher. Payload travels with
// the text and is returned untouched.
type Document struct {
	Text    string
	Payload interface{}
}

// Matcher embeds text with the hashing trick and ranks documents by cosine
// similarity. Corpus embeddings are cached by text; the cache is append-only
// and shared between requests.
type Matcher struct {
	mu    sync.RWMutex
	cache map[string][]float64
}

func NewMatcher() *Matcher {
	return &Matcher{cache: make(map[string][]float64)}
}

// Embed maps text to a fixed-length L2-normalized vector. Each token is
// hashed into one of the EmbeddingDim buckets with a sign bit, so identical
// text always embeds identically.
func (m *Matcher) Embed(text string) []float64 {
	vec := make([]float64, EmbeddingDim)
	for _, tok := range Tokenize(text) {
		h := xxhash.Sum64String(tok)
		idx := h % EmbeddingDim
		if h&(1<<63) != 0 {
			vec[idx]--
		} else {
			vec[idx]++
		}
	}
	if norm := floats.Norm(vec, 2); norm > 0 {
		floats.Scale(1/norm, vec)
	}
	return vec
}

// Similarity returns the cosine similarity of two texts in [-1, 1].
func (m *Matcher) Similarity(a, b string) float64 {
	return cosine(m.Embed(a), m.Embed(b))
}

// TopK ranks the documents by cosine similarity to the query, highest first,
// and returns up to k of them. Exact ties keep their original corpus order.
func (m *Matcher) TopK(query string, docs []Document, k int) []Document {
	if k <= 0 || len(docs) == 0 {
		return nil
	}

	queryVec := m.Embed(query)
	scored := make([]struct {
		doc   Document
		score float64
	}, len(docs))
	for i, doc := range docs {
		scored[i].doc = doc
		scored[i].score = cosine(queryVec, m.corpusEmbedding(doc.Text))
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if k > len(scored) {
		k = len(scored)
	}
	ranked := make([]Document, k)
	for i := 0; i < k; i++ {
		ranked[i] = scored[i].doc
	}
	return ranked
}

func (m *Matcher) corpusEmbedding(text string) []float64 {
	m.mu.RLock()
	vec, ok := m.cache[text]
	m.mu.RUnlock()
	if ok {
		return vec
	}

	vec = m.Embed(text)
	m.mu.Lock()
	m.cache[text] = vec
	m.mu.Unlock()
	return vec
}

// Reset drops all cached corpus embeddings. Called when the knowledge base
// is reloaded.
func (m *Matcher) Reset() {
	m.mu.Lock()
	m.cache = make(map[string][]float64)
	m.mu.Unlock()
}

func cosine(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return 0
	}
	return floats.Dot(a, b) / (normA * normB)
}
