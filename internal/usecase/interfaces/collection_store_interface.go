package interfaces

import (
	"context"
	"encoding/json"
)

// Collection keys of the persistence collaborator, one per entity collection.
const (
	KeyProjects        = "projects"
	KeyClients         = "clients"
	KeyCollaborators   = "collaborators"
	KeyProducts        = "products"
	KeyServices        = "services"
	KeyAppliedProducts = "appliedProducts"
	KeyPayments        = "payments"
)

// ICollectionStore abstracts the durable key-value store holding one
// serialized collection per fixed key.
//
// Load returns nil for a missing key. Serialization is an opaque structural
// dump of the collection; there is no schema versioning. Callers recover from
// load failures by substituting an empty collection.

type ICollectionStore interface {
	Load(ctx context.Context, key string) (json.RawMessage, error)
	Save(ctx context.Context, key string, collection json.RawMessage) error
}
