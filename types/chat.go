package types

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents a single turn in the conversation transcript
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
