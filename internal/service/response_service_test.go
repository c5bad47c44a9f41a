package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"elimuhub-agent/internal/knowledge"
	"elimuhub-agent/internal/models"
	"elimuhub-agent/internal/nlp"
	"elimuhub-agent/pkg/config"
)

func newTestService(t *testing.T, store *knowledge.Store) *ResponseService {
	t.Helper()
	classifier := nlp.NewIntentClassifier(
		filepath.Join(t.TempDir(), "intent_classifier.gob"),
		nlp.DefaultMaxFeatures,
		zap.NewNop(),
	)
	require.NoError(t, classifier.Train(nil))

	simCfg := &config.SimilarityConfig{TopK: 3, Threshold: 0.7}
	return NewResponseService(classifier, store, nlp.NewMatcher(), simCfg, zap.NewNop())
}

func TestGenerateResponseVisaInformation(t *testing.T) {
	svc := newTestService(t, knowledge.NewStore(knowledge.SampleAggregate()))

	resp := svc.GenerateResponse("What are the visa requirements for USA?", "conv-1")
	require.Equal(t, models.IntentVisaInformation, resp.Intent)
	require.GreaterOrEqual(t, resp.Confidence, 0.0)
	require.LessOrEqual(t, resp.Confidence, 1.0)

	require.Contains(t, resp.Text, "F-1 Student Visa")
	require.Contains(t, resp.Text, "$510")
	for _, req := range []string{
		"Valid passport",
		"Form I-20",
		"SEVIS fee receipt",
		"Financial proof",
		"Academic transcripts",
		"English proficiency test scores",
	} {
		require.Contains(t, resp.Text, req)
	}
}

func TestGenerateResponseVisaTriesKeyVariants(t *testing.T) {
	svc := newTestService(t, knowledge.NewStore(knowledge.SampleAggregate()))

	// The extractor reports CANADA; the aggregate key is Canada, so the
	// capitalized variant must hit.
	resp := svc.GenerateResponse("Documents needed for Canada student visa", "conv-1")
	require.Equal(t, models.IntentVisaInformation, resp.Intent)
	require.Contains(t, resp.Text, "Study Permit")
}

func TestGenerateResponseVisaWithoutCountryListsKeys(t *testing.T) {
	svc := newTestService(t, knowledge.NewStore(knowledge.SampleAggregate()))

	resp := svc.GenerateResponse("Student visa processing time please", "conv-1")
	require.Equal(t, models.IntentVisaInformation, resp.Intent)
	require.Contains(t, resp.Text, "I have visa information for:")
	require.Contains(t, resp.Text, "Australia")
}

func TestGenerateResponseProgramSearchFiltersByCountry(t *testing.T) {
	svc := newTestService(t, knowledge.NewStore(knowledge.SampleAggregate()))

	resp := svc.GenerateResponse("Best universities in UK for engineering", "conv-1")
	require.Equal(t, models.IntentUniversitySearch, resp.Intent)
	require.Contains(t, resp.Text, "University of Oxford")
	require.NotContains(t, resp.Text, "Harvard University")
}

func TestGenerateResponseProgramSearchFallsBackToHead(t *testing.T) {
	svc := newTestService(t, knowledge.NewStore(knowledge.SampleAggregate()))

	// No country or program mentioned: the reply lists the first programs.
	resp := svc.GenerateResponse("I want to study abroad next year", "conv-1")
	require.Equal(t, models.IntentStudyAbroadInquiry, resp.Intent)
	require.Contains(t, resp.Text, "Here are some programs I found:")
	require.Contains(t, resp.Text, "Harvard University")
}

func TestGenerateResponseTuition(t *testing.T) {
	svc := newTestService(t, knowledge.NewStore(knowledge.SampleAggregate()))

	resp := svc.GenerateResponse("IGCSE tuition fees", "conv-1")
	require.Equal(t, models.IntentTuitionProgram, resp.Intent)
	require.Contains(t, resp.Text, "IGCSE")
	require.Contains(t, resp.Text, "duration: 2 years")
	require.Contains(t, resp.Text, "full_program: KES 120,000/year")
	require.NotContains(t, resp.Text, "A-Levels")
}

func TestGenerateResponseApplicationGuide(t *testing.T) {
	svc := newTestService(t, knowledge.NewStore(knowledge.SampleAggregate()))

	resp := svc.GenerateResponse("How to apply for masters in Canada", "conv-1")
	require.Equal(t, models.IntentApplicationGuide, resp.Intent)
	// Canada has no guide; the first available guide key is used.
	require.Contains(t, resp.Text, "Application Guide (UK_Application_Guide):")
	require.Contains(t, resp.Text, "1. Register on UCAS")
}

func TestGenerateResponseFallbackForGeneralQuestions(t *testing.T) {
	svc := newTestService(t, knowledge.NewStore(knowledge.SampleAggregate()))

	resp := svc.GenerateResponse("Hello there", "conv-1")
	require.Equal(t, msgFallback, resp.Text)
}

func TestGenerateResponseEmptyStoreNeverFails(t *testing.T) {
	svc := newTestService(t, knowledge.NewStore(nil))

	cases := map[string]string{
		"What are the visa requirements for USA?": msgVisasMissing,
		"IGCSE tuition fees":                      msgTuitionMissing,
		"Best universities in UK for engineering": msgProgramsMissing,
		"How to apply for masters in Canada":      msgGuidesMissing,
	}
	for message, want := range cases {
		resp := svc.GenerateResponse(message, "conv-1")
		require.Equal(t, want, resp.Text, "message %q", message)
	}
}

func TestSearchKnowledgeBase(t *testing.T) {
	svc := newTestService(t, knowledge.NewStore(knowledge.SampleAggregate()))

	results := svc.Search("oxford", "")
	require.NotEmpty(t, results)
	program, ok := results[0].Value.(models.ProgramRecord)
	require.True(t, ok)
	require.Equal(t, "University of Oxford", program.University)
}

func TestSimilarQuestions(t *testing.T) {
	svc := newTestService(t, knowledge.NewStore(knowledge.SampleAggregate()))

	matches := svc.SimilarQuestions("How long does it take to get a student visa", 3)
	require.NotEmpty(t, matches)
	require.Equal(t, "How long does it take to get a student visa", matches[0].Question)
}

func TestSimilarQuestionsEmptyStore(t *testing.T) {
	svc := newTestService(t, knowledge.NewStore(nil))
	require.Empty(t, svc.SimilarQuestions("anything", 3))
}
