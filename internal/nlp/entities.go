package nlp

import (
	"strings"

	"elimuhub-agent/internal/models"
)

// countryAliases is an ordered table: the first alias that appears as a
// substring of the lowered message wins, so the sequence below is part of the
// extractor's contract.
var countryAliases = []struct {
	Country string
	Aliases []string
}{
	{"USA", []string{"usa", "united states", "america"}},
	{"UK", []string{"uk", "united kingdom", "britain"}},
	{"CANADA", []string{"canada"}},
	{"AUSTRALIA", []string{"australia"}},
}

// programKeywords is likewise ordered; first match wins.
var programKeywords = []string{
	"computer science",
	"engineering",
	"business",
	"medicine",
	"law",
}

// ExtractEntities pulls country and program mentions out of the raw message
// by keyword containment. It is intentionally shallow: anything the alias
// tables do not cover stays empty, and no field is ever guessed.
func ExtractEntities(text string) models.EntityRecord {
	var entities models.EntityRecord
	lowered := strings.ToLower(text)

	for _, entry := range countryAliases {
		for _, alias := range entry.Aliases {
			if strings.Contains(lowered, alias) {
				entities.Country = entry.Country
				break
			}
		}
		if entities.Country != "" {
			break
		}
	}

	for _, program := range programKeywords {
		if strings.Contains(lowered, program) {
			entities.Program = program
			break
		}
	}

	return entities
}
