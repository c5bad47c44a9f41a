package models

// Intent is the closed set of categories a user message can be classified into.
type Intent string

const (
	IntentStudyAbroadInquiry Intent = "study_abroad_inquiry"
	IntentVisaInformation    Intent = "visa_information"
	IntentTuitionProgram     Intent = "tuition_program"
	IntentApplicationGuide   Intent = "application_guide"
	IntentScholarshipInquiry Intent = "scholarship_inquiry"
	IntentUniversitySearch   Intent = "university_search"
	IntentGeneralQuestion    Intent = "general_question"
	IntentEscalationRequest  Intent = "escalation_request"
)

// Intents lists every known intent in a fixed order.
func Intents() []Intent {
	return []Intent{
		IntentStudyAbroadInquiry,
		IntentVisaInformation,
		IntentTuitionProgram,
		IntentApplicationGuide,
		IntentScholarshipInquiry,
		IntentUniversitySearch,
		IntentGeneralQuestion,
		IntentEscalationRequest,
	}
}

// Valid reports whether the intent belongs to the closed set.
func (i Intent) Valid() bool {
	for _, known := range Intents() {
		if i == known {
			return true
		}
	}
	return false
}

// ClassificationResult is the classifier output for a single message.
type ClassificationResult struct {
	Intent     Intent  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// EntityRecord holds the shallow keyword-matched facts extracted from a
// message. Fields the extractor could not match stay empty.
type EntityRecord struct {
	Country    string `json:"country,omitempty"`
	University string `json:"university,omitempty"`
	Program    string `json:"program,omitempty"`
	Subject    string `json:"subject,omitempty"`
	Deadline   string `json:"deadline,omitempty"`
}
