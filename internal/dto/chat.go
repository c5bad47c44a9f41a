package dto

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Success        bool    `json:"success"`
	Response       string  `json:"response"`
	Intent         string  `json:"intent"`
	Confidence     float64 `json:"confidence"`
	ConversationID string  `json:"conversation_id"`
	Escalated      bool    `json:"escalated"`
}

type ClassifyRequest struct {
	Text string `json:"text"`
}

type ClassifyResponse struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

type FeedbackRequest struct {
	ConversationID string `json:"conversation_id"`
	Rating         int    `json:"rating"`
	Comments       string `json:"comments"`
}
