package service

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"elimuhub-agent/internal/knowledge"
	"elimuhub-agent/internal/models"
	"elimuhub-agent/internal/nlp"
	"elimuhub-agent/pkg/config"
)

const (
	msgProgramsMissing   = "I don't have program data loaded. Please run the knowledge base initialization."
	msgVisasMissing      = "Visa information is not yet available. Please initialize the knowledge base."
	msgTuitionMissing    = "Tuition program information is not yet available."
	msgGuidesMissing     = "Application guides are available for USA and UK. Please specify which one you need."
	msgFallback          = "Sorry, I didn't fully understand that. Could you rephrase or provide more details?"
	maxSearchResults     = 10
	maxProgramResults    = 3
	tuitionFallbackCount = 2
	visaKeyListLimit     = 5
)

// Response is the routed reply for one message.
type Response struct {
	Text       string
	Intent     models.Intent
	Confidence float64
}

// ResponseService composes the classifier, the entity extractor and the
// knowledge store into a reply for each incoming message.
type ResponseService struct {
	classifier *nlp.IntentClassifier
	store      *knowledge.Store
	matcher    *nlp.Matcher
	simCfg     *config.SimilarityConfig
	logger     *zap.Logger
}

func NewResponseService(
	classifier *nlp.IntentClassifier,
	store *knowledge.Store,
	matcher *nlp.Matcher,
	simCfg *config.SimilarityConfig,
	logger *zap.Logger,
) *ResponseService {
	return &ResponseService{
		classifier: classifier,
		store:      store,
		matcher:    matcher,
		simCfg:     simCfg,
		logger:     logger,
	}
}

// ClassifyIntent exposes the raw classifier result.
func (s *ResponseService) ClassifyIntent(text string) models.ClassificationResult {
	return s.classifier.Classify(text)
}

// GenerateResponse routes a user message to a reply. It never fails: every
// branch degrades to a fixed message when its data is missing.
func (s *ResponseService) GenerateResponse(message, conversationID string) Response {
	message = sanitizeUTF8(message)
	result := s.classifier.Classify(message)
	entities := nlp.ExtractEntities(message)

	var text string
	switch result.Intent {
	case models.IntentStudyAbroadInquiry, models.IntentUniversitySearch:
		text = s.handleProgramSearch(message, entities)
	case models.IntentVisaInformation:
		text = s.handleVisaInfo(entities)
	case models.IntentTuitionProgram:
		text = s.handleTuitionInfo(message)
	case models.IntentApplicationGuide:
		text = s.handleApplicationGuide(entities)
	default:
		text = msgFallback
	}

	s.logger.Info("Message routed",
		zap.String("conversation_id", conversationID),
		zap.String("intent", string(result.Intent)),
		zap.Float64("confidence", result.Confidence),
	)
	return Response{Text: text, Intent: result.Intent, Confidence: result.Confidence}
}

// Search performs a raw case-insensitive lookup over the knowledge base,
// independent of intent routing.
func (s *ResponseService) Search(query string, category models.Category) []models.SearchResult {
	return s.store.Search(query, category, maxSearchResults)
}

// SimilarQuestions ranks FAQ entries by cosine similarity to the query and
// returns those above the configured threshold.
func (s *ResponseService) SimilarQuestions(query string, k int) []models.FAQRecord {
	faqs := s.store.FAQs()
	if len(faqs) == 0 {
		return nil
	}
	if k <= 0 {
		k = s.simCfg.TopK
	}

	docs := make([]nlp.Document, len(faqs))
	for i, faq := range faqs {
		docs[i] = nlp.Document{Text: faq.Question, Payload: faq}
	}

	var matches []models.FAQRecord
	for _, doc := range s.matcher.TopK(query, docs, k) {
		if s.matcher.Similarity(query, doc.Text) < s.simCfg.Threshold {
			continue
		}
		matches = append(matches, doc.Payload.(models.FAQRecord))
	}
	return matches
}

func (s *ResponseService) handleProgramSearch(message string, entities models.EntityRecord) string {
	programs := s.store.Programs()
	if len(programs) == 0 {
		return msgProgramsMissing
	}

	var candidates []models.ProgramRecord
	for _, p := range programs {
		if entities.Country != "" && !strings.Contains(strings.ToLower(p.Country), strings.ToLower(entities.Country)) {
			continue
		}
		if entities.Program != "" && !strings.Contains(strings.ToLower(p.Program), strings.ToLower(entities.Program)) {
			continue
		}
		candidates = append(candidates, p)
	}
	if len(candidates) == 0 {
		// No filter hit; show the head of the corpus instead of nothing.
		candidates = programs
	}
	if len(candidates) > maxProgramResults {
		candidates = candidates[:maxProgramResults]
	}

	lines := make([]string, len(candidates))
	for i, c := range candidates {
		lines[i] = fmt.Sprintf("%s — %s (%s) — Tuition: %s — Deadline: %s",
			c.University, c.Program, c.Country, c.TuitionFee, c.Deadline)
	}
	return "Here are some programs I found:\n" + strings.Join(lines, "\n")
}

func (s *ResponseService) handleVisaInfo(entities models.EntityRecord) string {
	countries := s.store.VisaCountries()
	if len(countries) == 0 {
		return msgVisasMissing
	}

	if entities.Country != "" {
		// Key casing is not normalized at ingestion, so try the documented
		// variants in order.
		for _, key := range []string{capitalize(entities.Country), strings.ToUpper(entities.Country), strings.ToLower(entities.Country)} {
			info, ok := s.store.Visa(key)
			if !ok {
				continue
			}
			reqs := make([]string, len(info.Requirements))
			for i, r := range info.Requirements {
				reqs[i] = "- " + r
			}
			return fmt.Sprintf("Visa: %s\nProcessing time: %s\nFee: %s\nRequirements:\n%s",
				info.VisaType, info.ProcessingTime, info.Fee, strings.Join(reqs, "\n"))
		}
	}

	if len(countries) > visaKeyListLimit {
		countries = countries[:visaKeyListLimit]
	}
	return fmt.Sprintf("I have visa information for: %s. Please specify a country for detailed info.",
		strings.Join(countries, ", "))
}

func (s *ResponseService) handleTuitionInfo(message string) string {
	tuition := s.store.Tuition()
	if len(tuition) == 0 {
		return msgTuitionMissing
	}

	lowered := strings.ToLower(message)
	var hits []models.TuitionRecord
	for _, t := range tuition {
		if t.Program != "" && strings.Contains(lowered, strings.ToLower(t.Program)) {
			hits = append(hits, t)
		}
	}
	if len(hits) == 0 {
		hits = tuition
		if len(hits) > tuitionFallbackCount {
			hits = hits[:tuitionFallbackCount]
		}
	}

	lines := make([]string, len(hits))
	for i, h := range hits {
		lines[i] = fmt.Sprintf("%s — duration: %s — fees: %s", h.Program, h.Duration, formatFees(h.FeeStructure))
	}
	return "Tuition programs:\n" + strings.Join(lines, "\n")
}

func (s *ResponseService) handleApplicationGuide(entities models.EntityRecord) string {
	var key string
	switch entities.Country {
	case "USA":
		key = "USA_Application_Guide"
	case "UK":
		key = "UK_Application_Guide"
	default:
		if keys := s.store.GuideKeys(); len(keys) > 0 {
			key = keys[0]
		}
	}

	if guide, ok := s.store.Guide(key); ok {
		steps := make([]string, len(guide.Steps))
		for i, step := range guide.Steps {
			steps[i] = fmt.Sprintf("%d. %s", i+1, step)
		}
		return fmt.Sprintf("Application Guide (%s):\n%s\nTimeline: %s",
			key, strings.Join(steps, "\n"), guide.Timeline)
	}
	return msgGuidesMissing
}

// formatFees renders a fee structure as sorted "key: value" pairs so replies
// are deterministic.
func formatFees(fees map[string]string) string {
	keys := make([]string, 0, len(fees))
	for key := range fees {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	pairs := make([]string, len(keys))
	for i, key := range keys {
		pairs[i] = key + ": " + fees[key]
	}
	return strings.Join(pairs, ", ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
