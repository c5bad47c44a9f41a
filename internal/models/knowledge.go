package models

import (
	"encoding/json"
	"strconv"
)

// Category names the knowledge-base aggregate is keyed by.
type Category string

const (
	CategoryPrograms Category = "study_abroad_programs"
	CategoryVisas    Category = "visa_requirements"
	CategoryTuition  Category = "tuition_programs"
	CategoryGuides   Category = "application_guides"
	CategoryFAQs     Category = "faqs"
)

// ProgramRecord describes a study-abroad program offering.
type ProgramRecord struct {
	ID                   string   `json:"id"`
	Country              string   `json:"country"`
	University           string   `json:"university"`
	Program              string   `json:"program"`
	Duration             string   `json:"duration"`
	TuitionFee           string   `json:"tuition_fee"`
	Requirements         []string `json:"requirements"`
	Deadline             string   `json:"deadline"`
	ScholarshipAvailable bool     `json:"scholarship_available"`
}

// TriState carries the interview_required field, which upstream data encodes
// as true, false, or a qualifier string such as "Sometimes".
type TriState string

func (t *TriState) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*t = TriState(strconv.FormatBool(b))
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = TriState(s)
	return nil
}

func (t TriState) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// VisaRecord describes student-visa requirements for one country. The country
// name itself is the aggregate key.
type VisaRecord struct {
	VisaType          string   `json:"visa_type"`
	Requirements      []string `json:"requirements"`
	ProcessingTime    string   `json:"processing_time"`
	Fee               string   `json:"fee"`
	InterviewRequired TriState `json:"interview_required"`
}

// TuitionRecord describes a local tuition/coaching program.
type TuitionRecord struct {
	Program      string            `json:"program"`
	Subjects     []string          `json:"subjects"`
	Duration     string            `json:"duration"`
	FeeStructure map[string]string `json:"fee_structure"`
	Features     []string          `json:"features"`
}

// GuideRecord is a step-by-step application guide, keyed in the aggregate by
// a name such as "USA_Application_Guide".
type GuideRecord struct {
	Steps          []string          `json:"steps"`
	Timeline       string            `json:"timeline"`
	ImportantDates map[string]string `json:"important_dates"`
}

// FAQRecord is a canned question/answer pair used for similarity lookups.
type FAQRecord struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// SearchResult is one raw knowledge-base hit. Key is set only for records
// that live in a keyed category (visas, guides).
type SearchResult struct {
	Category Category    `json:"category"`
	Key      string      `json:"key,omitempty"`
	Value    interface{} `json:"value"`
}
