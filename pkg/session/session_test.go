package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager("test-secret", time.Hour)
}

func TestTokenRoundTrip(t *testing.T) {
	m := newTestManager()

	id, token, err := m.NewConversation()
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.NotEmpty(t, token)

	parsed, err := m.Parse(token)
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestParseRejectsGarbage(t *testing.T) {
	m := newTestManager()
	_, err := m.Parse("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsForeignSignature(t *testing.T) {
	other := NewManager("different-secret", time.Hour)
	_, token, err := other.NewConversation()
	require.NoError(t, err)

	m := newTestManager()
	_, err = m.Parse(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestNextTurnCounts(t *testing.T) {
	m := newTestManager()
	id, _, err := m.NewConversation()
	require.NoError(t, err)

	require.Equal(t, 1, m.NextTurn(id).TurnCount)
	require.Equal(t, 2, m.NextTurn(id).TurnCount)
	require.Equal(t, 3, m.NextTurn(id).TurnCount)
}

func TestNextTurnUnknownConversationStartsFresh(t *testing.T) {
	m := newTestManager()
	st := m.NextTurn("unseen-conversation")
	require.Equal(t, 1, st.TurnCount)
	require.False(t, st.Escalated)
}

func TestMarkEscalatedIsSticky(t *testing.T) {
	m := newTestManager()
	id, _, err := m.NewConversation()
	require.NoError(t, err)

	m.NextTurn(id)
	m.MarkEscalated(id)
	require.True(t, m.NextTurn(id).Escalated)
	require.True(t, m.NextTurn(id).Escalated)
}
