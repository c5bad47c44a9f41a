package knowledge

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"elimuhub-agent/internal/models"
)

// Aggregate is the durable knowledge-base blob produced by the ingestion
// step, keyed by category name.
type Aggregate struct {
	Programs []models.ProgramRecord        `json:"study_abroad_programs"`
	Visas    map[string]models.VisaRecord  `json:"visa_requirements"`
	Tuition  []models.TuitionRecord        `json:"tuition_programs"`
	Guides   map[string]models.GuideRecord `json:"application_guides"`
	FAQs     []models.FAQRecord            `json:"faqs"`
}

// Store holds the knowledge base in memory. It is loaded once at startup and
// read-only afterwards, so concurrent requests share it without locking.
type Store struct {
	programs  []models.ProgramRecord
	visas     map[string]models.VisaRecord
	visaKeys  []string
	tuition   []models.TuitionRecord
	guides    map[string]models.GuideRecord
	guideKeys []string
	faqs      []models.FAQRecord
}

// NewStore builds a store from an aggregate. Keyed categories get their key
// lists sorted once here so every fallback listing is deterministic.
func NewStore(agg *Aggregate) *Store {
	s := &Store{
		visas:  map[string]models.VisaRecord{},
		guides: map[string]models.GuideRecord{},
	}
	if agg == nil {
		return s
	}
	s.programs = agg.Programs
	s.tuition = agg.Tuition
	s.faqs = agg.FAQs
	if agg.Visas != nil {
		s.visas = agg.Visas
	}
	if agg.Guides != nil {
		s.guides = agg.Guides
	}
	for key := range s.visas {
		s.visaKeys = append(s.visaKeys, key)
	}
	sort.Strings(s.visaKeys)
	for key := range s.guides {
		s.guideKeys = append(s.guideKeys, key)
	}
	sort.Strings(s.guideKeys)
	return s
}

// LoadFile reads the aggregated knowledge-base JSON. A missing file surfaces
// as os.ErrNotExist so the caller can degrade to an empty store; malformed
// content is a hard load failure.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var agg Aggregate
	if err := json.Unmarshal(data, &agg); err != nil {
		return nil, fmt.Errorf("malformed knowledge base aggregate %s: %w", path, err)
	}
	return NewStore(&agg), nil
}

func (s *Store) Programs() []models.ProgramRecord { return s.programs }
func (s *Store) Tuition() []models.TuitionRecord  { return s.tuition }
func (s *Store) FAQs() []models.FAQRecord         { return s.faqs }

// Visa looks up a visa record by exact key.
func (s *Store) Visa(key string) (models.VisaRecord, bool) {
	rec, ok := s.visas[key]
	return rec, ok
}

// VisaCountries lists the available visa keys in sorted order.
func (s *Store) VisaCountries() []string { return s.visaKeys }

// Guide looks up an application guide by exact key.
func (s *Store) Guide(key string) (models.GuideRecord, bool) {
	rec, ok := s.guides[key]
	return rec, ok
}

// GuideKeys lists the available guide keys in sorted order.
func (s *Store) GuideKeys() []string { return s.guideKeys }

// Search matches the query case-insensitively against the serialized text of
// each record, returning at most limit hits. A known category restricts the
// scan; an empty or unknown category flattens the search across everything.
func (s *Store) Search(query string, category models.Category, limit int) []models.SearchResult {
	needle := strings.ToLower(query)
	var results []models.SearchResult

	match := func(cat models.Category, key string, value interface{}) {
		if len(results) >= limit {
			return
		}
		serialized, err := json.Marshal(value)
		if err != nil {
			return
		}
		if strings.Contains(strings.ToLower(string(serialized)), needle) {
			results = append(results, models.SearchResult{Category: cat, Key: key, Value: value})
		}
	}

	scan := map[models.Category]func(){
		models.CategoryPrograms: func() {
			for _, rec := range s.programs {
				match(models.CategoryPrograms, "", rec)
			}
		},
		models.CategoryVisas: func() {
			for _, key := range s.visaKeys {
				match(models.CategoryVisas, key, s.visas[key])
			}
		},
		models.CategoryTuition: func() {
			for _, rec := range s.tuition {
				match(models.CategoryTuition, "", rec)
			}
		},
		models.CategoryGuides: func() {
			for _, key := range s.guideKeys {
				match(models.CategoryGuides, key, s.guides[key])
			}
		},
		models.CategoryFAQs: func() {
			for _, rec := range s.faqs {
				match(models.CategoryFAQs, "", rec)
			}
		},
	}

	if scanOne, ok := scan[category]; ok {
		scanOne()
		return results
	}
	for _, cat := range []models.Category{
		models.CategoryPrograms,
		models.CategoryVisas,
		models.CategoryTuition,
		models.CategoryGuides,
		models.CategoryFAQs,
	} {
		scan[cat]()
	}
	return results
}
