package session

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid conversation token")

// Claims is the payload of a signed conversation token.
type Claims struct {
	ConversationID string `json:"conversation_id"`
	jwt.RegisteredClaims
}

// State is the per-conversation turn state owned by the session layer. The
// response pipeline only ever reads it through values passed in by the
// caller.
type State struct {
	ConversationID string
	TurnCount      int
	Escalated      bool
}

// Manager issues signed conversation tokens and tracks turn counts and the
// escalated flag per conversation. All state lives in memory; conversations
// do not outlive the process.
type Manager struct {
	secret     []byte
	expiration time.Duration

	mu     sync.Mutex
	states map[string]*State
}

func NewManager(secretKey string, expiration time.Duration) *Manager {
	return &Manager{
		secret:     []byte(secretKey),
		expiration: expiration,
		states:     make(map[string]*State),
	}
}

// NewConversation creates a conversation and returns its ID with a signed
// token the client presents on subsequent turns.
func (m *Manager) NewConversation() (string, string, error) {
	id := uuid.NewString()
	claims := &Claims{
		ConversationID: id,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.expiration)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", "", err
	}

	m.mu.Lock()
	m.states[id] = &State{ConversationID: id}
	m.mu.Unlock()
	return id, token, nil
}

// Parse validates a conversation token and returns the conversation ID.
func (m *Manager) Parse(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.ConversationID == "" {
		return "", ErrInvalidToken
	}
	return claims.ConversationID, nil
}

// NextTurn increments the conversation's turn counter and returns a snapshot
// of the state after the increment. Unknown conversation IDs (expired
// process, forged token) start counting from scratch.
func (m *Manager) NextTurn(conversationID string) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.states[conversationID]
	if !ok {
		st = &State{ConversationID: conversationID}
		m.states[conversationID] = st
	}
	st.TurnCount++
	return *st
}

// MarkEscalated flags the conversation as handed off. The flag is terminal
// for the conversation's lifetime in this process.
func (m *Manager) MarkEscalated(conversationID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if st, ok := m.states[conversationID]; ok {
		st.Escalated = true
	} else {
		m.states[conversationID] = &State{ConversationID: conversationID, Escalated: true}
	}
}
