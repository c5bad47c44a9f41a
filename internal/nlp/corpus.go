package nlp

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"elimuhub-agent/internal/models"
)

// TrainingExample pairs a message with its labeled intent.
type TrainingExample struct {
	Text   string        `yaml:"text"`
	Intent models.Intent `yaml:"intent"`
}

// SeedCorpus is the built-in labeled corpus used when no external training
// data is supplied. It keeps the classifier functional out of the box.
func SeedCorpus() []TrainingExample {
	return []TrainingExample{
		{Text: "I want to study in USA", Intent: models.IntentStudyAbroadInquiry},
		{Text: "I want to study abroad next year", Intent: models.IntentStudyAbroadInquiry},
		{Text: "Help me find a study abroad program in Canada", Intent: models.IntentStudyAbroadInquiry},
		{Text: "Which countries can I study in after high school", Intent: models.IntentStudyAbroadInquiry},

		{Text: "What are the visa requirements for USA?", Intent: models.IntentVisaInformation},
		{Text: "Student visa processing time UK", Intent: models.IntentVisaInformation},
		{Text: "Documents needed for Canada student visa", Intent: models.IntentVisaInformation},
		{Text: "How much is the Australia visa fee", Intent: models.IntentVisaInformation},

		{Text: "IGCSE tuition fees", Intent: models.IntentTuitionProgram},
		{Text: "A-Levels coaching", Intent: models.IntentTuitionProgram},
		{Text: "SAT preparation courses", Intent: models.IntentTuitionProgram},
		{Text: "Do you offer tuition classes for mathematics", Intent: models.IntentTuitionProgram},

		{Text: "How to apply for masters in Canada", Intent: models.IntentApplicationGuide},
		{Text: "Steps to apply to UK universities", Intent: models.IntentApplicationGuide},
		{Text: "Guide me through the application process", Intent: models.IntentApplicationGuide},
		{Text: "When should I start my university application", Intent: models.IntentApplicationGuide},

		{Text: "Are there scholarships for international students", Intent: models.IntentScholarshipInquiry},
		{Text: "How can I get a scholarship to study abroad", Intent: models.IntentScholarshipInquiry},
		{Text: "Full scholarship opportunities in the UK", Intent: models.IntentScholarshipInquiry},

		{Text: "Best universities in UK for engineering", Intent: models.IntentUniversitySearch},
		{Text: "Top ranked universities for computer science", Intent: models.IntentUniversitySearch},
		{Text: "Which university is good for medicine in Australia", Intent: models.IntentUniversitySearch},

		{Text: "Hello there", Intent: models.IntentGeneralQuestion},
		{Text: "What services do you provide", Intent: models.IntentGeneralQuestion},
		{Text: "Tell me more about Elimuhub", Intent: models.IntentGeneralQuestion},

		{Text: "I want to talk to a human", Intent: models.IntentEscalationRequest},
		{Text: "Connect me with an agent please", Intent: models.IntentEscalationRequest},
		{Text: "Can I speak to a real person", Intent: models.IntentEscalationRequest},
	}
}

// LoadCorpus reads training examples from a YAML file. Examples with an
// unknown intent label are rejected so a typo cannot silently widen the
// intent set.
func LoadCorpus(path string) ([]TrainingExample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file: %w", err)
	}
	var examples []TrainingExample
	if err := yaml.Unmarshal(data, &examples); err != nil {
		return nil, fmt.Errorf("failed to parse corpus file: %w", err)
	}
	for _, ex := range examples {
		if !ex.Intent.Valid() {
			return nil, fmt.Errorf("unknown intent %q in corpus file", ex.Intent)
		}
	}
	return examples, nil
}
