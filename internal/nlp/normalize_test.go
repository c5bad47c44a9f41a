package nlp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeLowersAndStripsPunctuation(t *testing.T) {
	got := Normalize("What are the VISA requirements, for USA?!")
	require.Equal(t, "what are the visa requirements for usa", got)
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	got := Normalize("  study\tabroad \n programs  ")
	require.Equal(t, "study abroad programs", got)
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Hello, World!",
		"  A-Levels   coaching?? ",
		"",
		"already normalized text",
	}
	for _, in := range inputs {
		once := Normalize(in)
		require.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", in)
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	in := "Best universities in UK for engineering!"
	require.Equal(t, Normalize(in), Normalize(in))
}

func TestTokenize(t *testing.T) {
	require.Equal(t, []string{"student", "visa", "fees"}, Tokenize("Student visa: fees?"))
	require.Empty(t, Tokenize("?!..."))
}
