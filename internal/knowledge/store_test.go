package knowledge

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"elimuhub-agent/internal/models"
)

func writeAggregate(t *testing.T, agg *Aggregate) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "knowledge_base_aggregated.json")
	data, err := json.Marshal(agg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadFileRoundTrip(t *testing.T) {
	path := writeAggregate(t, SampleAggregate())

	store, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, store.Programs(), 3)
	require.Len(t, store.Tuition(), 3)
	require.Len(t, store.VisaCountries(), 4)
	require.Len(t, store.GuideKeys(), 2)

	visa, ok := store.Visa("USA")
	require.True(t, ok)
	require.Equal(t, "F-1 Student Visa", visa.VisaType)
	require.Equal(t, models.TriState("true"), visa.InterviewRequired)

	// Tri-state string values survive the round trip.
	visa, ok = store.Visa("UK")
	require.True(t, ok)
	require.Equal(t, models.TriState("Sometimes"), visa.InterviewRequired)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	require.NotErrorIs(t, err, os.ErrNotExist)
}

func TestKeyListingsAreSorted(t *testing.T) {
	store := NewStore(SampleAggregate())
	require.Equal(t, []string{"Australia", "Canada", "UK", "USA"}, store.VisaCountries())
	require.Equal(t, []string{"UK_Application_Guide", "USA_Application_Guide"}, store.GuideKeys())
}

func TestSearchFlattenedAcrossCategories(t *testing.T) {
	store := NewStore(SampleAggregate())

	results := store.Search("oxford", "", 10)
	require.NotEmpty(t, results)
	serialized, err := json.Marshal(results[0].Value)
	require.NoError(t, err)
	require.Contains(t, strings.ToLower(string(serialized)), "oxford")
}

func TestSearchWithinCategory(t *testing.T) {
	store := NewStore(SampleAggregate())

	results := store.Search("igcse", models.CategoryTuition, 10)
	require.Len(t, results, 1)
	require.Equal(t, models.CategoryTuition, results[0].Category)

	// The same query outside its category yields nothing.
	require.Empty(t, store.Search("igcse", models.CategoryVisas, 10))
}

func TestSearchCaseInsensitive(t *testing.T) {
	store := NewStore(SampleAggregate())
	require.NotEmpty(t, store.Search("HARVARD", "", 10))
}

func TestSearchRespectsLimit(t *testing.T) {
	store := NewStore(SampleAggregate())
	results := store.Search("a", "", 2)
	require.Len(t, results, 2)
}

func TestEmptyStoreIsUsable(t *testing.T) {
	store := NewStore(nil)
	require.Empty(t, store.Programs())
	require.Empty(t, store.Search("anything", "", 10))
	_, ok := store.Visa("USA")
	require.False(t, ok)
}
