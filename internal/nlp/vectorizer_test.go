package nlp

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestVectorizerFitTransform(t *testing.T) {
	v := NewVectorizer(0)
	v.Fit([]string{
		"student visa requirements",
		"visa processing time",
		"university application guide",
	})

	require.Greater(t, v.Dimensions(), 0)

	vec := v.Transform("visa requirements")
	require.Len(t, vec, v.Dimensions())
	require.InDelta(t, 1.0, floats.Norm(vec, 2), 1e-9, "transformed vectors are L2-normalized")
}

func TestVectorizerOutOfVocabularyIsZero(t *testing.T) {
	v := NewVectorizer(0)
	v.Fit([]string{"student visa requirements"})

	vec := v.Transform("completely unrelated words")
	for _, val := range vec {
		require.Zero(t, val)
	}
}

func TestVectorizerCapsVocabulary(t *testing.T) {
	v := NewVectorizer(2)
	v.Fit([]string{
		"alpha alpha alpha beta beta gamma",
		"alpha beta delta",
	})

	require.Equal(t, 2, v.Dimensions())
	_, hasAlpha := v.Vocabulary["alpha"]
	_, hasBeta := v.Vocabulary["beta"]
	require.True(t, hasAlpha)
	require.True(t, hasBeta)
}

func TestVectorizerDeterministic(t *testing.T) {
	docs := []string{"visa fees usa", "tuition fees uk", "scholarship deadlines"}

	a := NewVectorizer(0)
	a.Fit(docs)
	b := NewVectorizer(0)
	b.Fit(docs)

	require.Equal(t, a.Vocabulary, b.Vocabulary)
	require.Equal(t, a.Transform("visa fees"), b.Transform("visa fees"))
}
