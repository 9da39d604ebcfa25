package models

// Placeholder text for newly created items
const (
	DefaultQuestionText = "Question"
	DefaultOptionText   = "Option"
)

// Request types

type EditQuestionRequest struct {
	Text string `json:"text"`
}

type ReorderQuestionsRequest struct {
	QuestionIDs []string `json:"question_ids"`
}

// Text and Selected are pointers so a PATCH can update either independently
type EditOptionRequest struct {
	Text     *string `json:"text,omitempty"`
	Selected *bool   `json:"selected,omitempty"`
}

type ReorderOptionsRequest struct {
	OptionIDs []string `json:"option_ids"`
}

// OptionInput is one entry of a full replacement list for a question's options
type OptionInput struct {
	Text     string `json:"text"`
	Selected bool   `json:"selected"`
}

type ReplaceOptionsRequest struct {
	Options []OptionInput `json:"options"`
}

// Response types

type HealthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

// Domain types

type Question struct {
	ID      string   `json:"id"`
	Ord     int      `json:"ord"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

type Option struct {
	ID         string `json:"id"`
	QuestionID string `json:"question_id"`
	Ord        int    `json:"ord"`
	Text       string `json:"text"`
	Selected   bool   `json:"selected"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
