package entities

// FallbackCollaboratorName is rendered when a service references a
// collaborator that was deleted.
const FallbackCollaboratorName = "Profissional Desligado"

type Collaborator struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Email    string `json:"email"`
}
