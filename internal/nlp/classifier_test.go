package nlp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"elimuhub-agent/internal/models"
)

func newTestClassifier(t *testing.T) *IntentClassifier {
	t.Helper()
	path := filepath.Join(t.TempDir(), "intent_classifier.gob")
	return NewIntentClassifier(path, DefaultMaxFeatures, zap.NewNop())
}

func TestClassifyReturnsKnownIntentAndBoundedConfidence(t *testing.T) {
	c := newTestClassifier(t)
	require.NoError(t, c.Train(nil))

	inputs := []string{
		"What are the visa requirements for USA?",
		"IGCSE tuition fees",
		"",
		"xyzzy qwerty plugh",
		"Best universities in UK for engineering",
	}
	for _, in := range inputs {
		result := c.Classify(in)
		require.True(t, result.Intent.Valid(), "intent %q for input %q", result.Intent, in)
		require.GreaterOrEqual(t, result.Confidence, 0.0)
		require.LessOrEqual(t, result.Confidence, 1.0)
	}
}

func TestClassifySeedCorpusExamples(t *testing.T) {
	c := newTestClassifier(t)
	require.NoError(t, c.Train(nil))

	cases := map[string]models.Intent{
		"What are the visa requirements for USA?": models.IntentVisaInformation,
		"IGCSE tuition fees":                      models.IntentTuitionProgram,
		"How to apply for masters in Canada":      models.IntentApplicationGuide,
		"Best universities in UK for engineering": models.IntentUniversitySearch,
	}
	for text, want := range cases {
		require.Equal(t, want, c.Classify(text).Intent, "input %q", text)
	}
}

func TestClassifyEmptyInputNeverFails(t *testing.T) {
	c := newTestClassifier(t)
	require.NoError(t, c.Train(nil))

	result := c.Classify("")
	require.True(t, result.Intent.Valid())
	require.GreaterOrEqual(t, result.Confidence, 0.0)
	require.LessOrEqual(t, result.Confidence, 1.0)
}

func TestClassifierPersistsAndReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intent_classifier.gob")

	trained := NewIntentClassifier(path, DefaultMaxFeatures, zap.NewNop())
	require.NoError(t, trained.Train(nil))
	want := trained.Classify("Student visa processing time UK")

	reloaded := NewIntentClassifier(path, DefaultMaxFeatures, zap.NewNop())
	got := reloaded.Classify("Student visa processing time UK")
	require.Equal(t, want.Intent, got.Intent)
	require.InDelta(t, want.Confidence, got.Confidence, 1e-9)
}

func TestClassifierLazyBootstrapWithoutArtifact(t *testing.T) {
	c := newTestClassifier(t)

	// No Train call and no artifact on disk: the first Classify trains.
	result := c.Classify("What are the visa requirements for USA?")
	require.True(t, result.Intent.Valid())
}

func TestClassifierRetrainsOnCorruptArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intent_classifier.gob")
	require.NoError(t, os.WriteFile(path, []byte("not a gob artifact"), 0o644))

	c := NewIntentClassifier(path, DefaultMaxFeatures, zap.NewNop())
	result := c.Classify("IGCSE tuition fees")
	require.True(t, result.Intent.Valid())
}

func TestTrainWithExplicitExamples(t *testing.T) {
	c := newTestClassifier(t)
	err := c.Train([]TrainingExample{
		{Text: "how much is the visa fee", Intent: models.IntentVisaInformation},
		{Text: "which university should I pick", Intent: models.IntentUniversitySearch},
		{Text: "talk to a human please", Intent: models.IntentEscalationRequest},
	})
	require.NoError(t, err)

	require.Equal(t, models.IntentVisaInformation, c.Classify("visa fee").Intent)
}
