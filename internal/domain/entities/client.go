package entities

// FallbackClientName is rendered when a project or service references a
// client that was deleted. Foreign keys are soft: deleting a client never
// cascades into its projects.
const FallbackClientName = "Cliente Removido"

type Client struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}
