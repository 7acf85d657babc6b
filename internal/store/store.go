package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"gestao_projetos/internal/domain/entities"
	"gestao_projetos/internal/usecase/interfaces"
)

// Store owns the seven collections in memory and is the single source of
// truth for the dashboard. Every mutation runs under one mutex and persists
// the touched collection through the ICollectionStore collaborator as a
// best-effort side effect (a failed save is logged, never propagated).
//
// The mutex also covers the check-then-decrement of the stock allocation
// flow, so two concurrent allocations can never both pass the stock check
// against a stale value.

type Store struct {
	mu          sync.Mutex
	persistence interfaces.ICollectionStore
	nextID      int64

	projects      []entities.Project
	clients       []entities.Client
	collaborators []entities.Collaborator
	products      []entities.Product
	services      []entities.Service
	applications  []entities.ProductApplication
	payments      []entities.ProjectPayment
}

var _ interfaces.IEntityStore = (*Store)(nil)

// NewStore creates an empty store. The id sequence is seeded with the current
// unix millisecond so ids stay process-unique and strictly increasing across
// restarts without persisted state. persistence may be nil, in which case the
// store is purely in-memory.
func NewStore(persistence interfaces.ICollectionStore) *Store {
	return &Store{
		persistence: persistence,
		nextID:      time.Now().UnixMilli(),
	}
}

// Load hydrates all collections from the persistence collaborator. Missing
// keys and corrupt payloads yield empty collections, never an error.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.persistence == nil {
		return
	}

	loadCollection(ctx, s.persistence, interfaces.KeyProjects, &s.projects)
	loadCollection(ctx, s.persistence, interfaces.KeyClients, &s.clients)
	loadCollection(ctx, s.persistence, interfaces.KeyCollaborators, &s.collaborators)
	loadCollection(ctx, s.persistence, interfaces.KeyProducts, &s.products)
	loadCollection(ctx, s.persistence, interfaces.KeyServices, &s.services)
	loadCollection(ctx, s.persistence, interfaces.KeyAppliedProducts, &s.applications)
	loadCollection(ctx, s.persistence, interfaces.KeyPayments, &s.payments)

	s.bumpSequencePastLoadedIDs()
}

func loadCollection[T any](ctx context.Context, p interfaces.ICollectionStore, key string, dst *[]T) {
	raw, err := p.Load(ctx, key)
	if err != nil {
		log.Printf("[store][load] load failed key=%s err=%v; starting empty", key, err)
		*dst = nil
		return
	}
	if len(raw) == 0 {
		*dst = nil
		return
	}
	var col []T
	if err := json.Unmarshal(raw, &col); err != nil {
		log.Printf("[store][load] corrupt payload key=%s err=%v; starting empty", key, err)
		*dst = nil
		return
	}
	*dst = col
}

// bumpSequencePastLoadedIDs keeps freshly generated ids above every persisted
// one, so a hydrated store never reissues an id.
func (s *Store) bumpSequencePastLoadedIDs() {
	max := s.nextID
	bump := func(id int64) {
		if id > max {
			max = id
		}
	}
	for _, p := range s.projects {
		bump(p.ID)
	}
	for _, c := range s.clients {
		bump(c.ID)
	}
	for _, c := range s.collaborators {
		bump(c.ID)
	}
	for _, p := range s.products {
		bump(p.ID)
	}
	for _, sv := range s.services {
		bump(sv.ID)
	}
	for _, a := range s.applications {
		bump(a.ID)
	}
	for _, p := range s.payments {
		bump(p.ID)
	}
	s.nextID = max
}

func (s *Store) nextIDLocked() int64 {
	s.nextID++
	return s.nextID
}

// persistLocked dumps a collection under its key. Must be called with the
// mutex held. Failures are swallowed: persistence is best-effort local save.
func (s *Store) persistLocked(ctx context.Context, key string, collection any) {
	if s.persistence == nil {
		return
	}
	raw, err := json.Marshal(collection)
	if err != nil {
		log.Printf("[store][persist] marshal failed key=%s err=%v", key, err)
		return
	}
	if err := s.persistence.Save(ctx, key, raw); err != nil {
		log.Printf("[store][persist] save failed key=%s err=%v", key, err)
	}
}

func upsert[T any](col []T, rec T, id int64, idOf func(T) int64) []T {
	for i := range col {
		if idOf(col[i]) == id {
			col[i] = rec
			return col
		}
	}
	return append(col, rec)
}

func removeByID[T any](col []T, id int64, idOf func(T) int64) []T {
	out := col[:0]
	for _, r := range col {
		if idOf(r) != id {
			out = append(out, r)
		}
	}
	return out
}

func snapshot[T any](col []T) []T {
	out := make([]T, len(col))
	copy(out, col)
	return out
}

// Read snapshots.

func (s *Store) Projects() []entities.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.projects)
}

func (s *Store) Clients() []entities.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.clients)
}

func (s *Store) Collaborators() []entities.Collaborator {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.collaborators)
}

func (s *Store) Products() []entities.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.products)
}

func (s *Store) Services() []entities.Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.services)
}

func (s *Store) ProductApplications() []entities.ProductApplication {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.applications)
}

func (s *Store) Payments() []entities.ProjectPayment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.payments)
}

// CRUD. Id zero means create; a nonzero id replaces the whole matching record
// or appends when nothing matches (the dashboard edits by whole-record
// replacement, there is no partial patch).

func (s *Store) CreateOrUpdateProject(ctx context.Context, p entities.Project) []entities.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == 0 {
		p.ID = s.nextIDLocked()
	}
	s.projects = upsert(s.projects, p, p.ID, func(r entities.Project) int64 { return r.ID })
	s.persistLocked(ctx, interfaces.KeyProjects, s.projects)
	return snapshot(s.projects)
}

func (s *Store) CreateOrUpdateClient(ctx context.Context, c entities.Client) []entities.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == 0 {
		c.ID = s.nextIDLocked()
	}
	s.clients = upsert(s.clients, c, c.ID, func(r entities.Client) int64 { return r.ID })
	s.persistLocked(ctx, interfaces.KeyClients, s.clients)
	return snapshot(s.clients)
}

func (s *Store) CreateOrUpdateCollaborator(ctx context.Context, c entities.Collaborator) []entities.Collaborator {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == 0 {
		c.ID = s.nextIDLocked()
	}
	s.collaborators = upsert(s.collaborators, c, c.ID, func(r entities.Collaborator) int64 { return r.ID })
	s.persistLocked(ctx, interfaces.KeyCollaborators, s.collaborators)
	return snapshot(s.collaborators)
}

func (s *Store) CreateOrUpdateProduct(ctx context.Context, p entities.Product) []entities.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == 0 {
		p.ID = s.nextIDLocked()
	}
	s.products = upsert(s.products, p, p.ID, func(r entities.Product) int64 { return r.ID })
	s.persistLocked(ctx, interfaces.KeyProducts, s.products)
	return snapshot(s.products)
}

func (s *Store) CreateOrUpdateService(ctx context.Context, sv entities.Service) []entities.Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sv.ID == 0 {
		sv.ID = s.nextIDLocked()
	} else {
		// IsPaid transitions only through MarkServicePaid; an edit keeps the
		// stored flag.
		for i := range s.services {
			if s.services[i].ID == sv.ID {
				sv.IsPaid = s.services[i].IsPaid
				break
			}
		}
	}
	s.services = upsert(s.services, sv, sv.ID, func(r entities.Service) int64 { return r.ID })
	s.persistLocked(ctx, interfaces.KeyServices, s.services)
	return snapshot(s.services)
}

// Deletes filter by id. Deleting an absent id is a no-op and there is no
// cascade: dependents keep their dangling references and resolve them to
// fallback labels at display time.

func (s *Store) DeleteProject(ctx context.Context, id int64) []entities.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = removeByID(s.projects, id, func(r entities.Project) int64 { return r.ID })
	s.persistLocked(ctx, interfaces.KeyProjects, s.projects)
	return snapshot(s.projects)
}

func (s *Store) DeleteClient(ctx context.Context, id int64) []entities.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = removeByID(s.clients, id, func(r entities.Client) int64 { return r.ID })
	s.persistLocked(ctx, interfaces.KeyClients, s.clients)
	return snapshot(s.clients)
}

func (s *Store) DeleteCollaborator(ctx context.Context, id int64) []entities.Collaborator {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collaborators = removeByID(s.collaborators, id, func(r entities.Collaborator) int64 { return r.ID })
	s.persistLocked(ctx, interfaces.KeyCollaborators, s.collaborators)
	return snapshot(s.collaborators)
}

func (s *Store) DeleteProduct(ctx context.Context, id int64) []entities.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = removeByID(s.products, id, func(r entities.Product) int64 { return r.ID })
	s.persistLocked(ctx, interfaces.KeyProducts, s.products)
	return snapshot(s.products)
}

func (s *Store) DeleteService(ctx context.Context, id int64) []entities.Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services = removeByID(s.services, id, func(r entities.Service) int64 { return r.ID })
	s.persistLocked(ctx, interfaces.KeyServices, s.services)
	return snapshot(s.services)
}

// ApplyProduct is the one invariant-protecting operation: stock never goes
// negative. Check and decrement happen under the same lock acquisition; on
// failure neither the products nor the applications collection changes. A
// missing product counts as zero availability.
func (s *Store) ApplyProduct(ctx context.Context, projectID, productID int64, quantity int) ([]entities.Product, []entities.ProductApplication, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.products {
		if s.products[i].ID == productID {
			idx = i
			break
		}
	}
	if idx < 0 || s.products[idx].Stock < quantity {
		return nil, nil, false
	}

	app := entities.ProductApplication{
		ID:        s.nextIDLocked(),
		ProjectID: projectID,
		ProductID: productID,
		Quantity:  quantity,
		Date:      time.Now().Format("2006-01-02"),
	}
	s.applications = append(s.applications, app)
	s.products[idx].Stock -= quantity

	s.persistLocked(ctx, interfaces.KeyProducts, s.products)
	s.persistLocked(ctx, interfaces.KeyAppliedProducts, s.applications)

	return snapshot(s.products), snapshot(s.applications), true
}

// MarkServicePaid flips IsPaid to true. The transition is one-way and
// idempotent; an unknown service id is a silent no-op.
func (s *Store) MarkServicePaid(ctx context.Context, serviceID int64) []entities.Service {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.services {
		if s.services[i].ID == serviceID {
			if !s.services[i].IsPaid {
				s.services[i].IsPaid = true
				s.persistLocked(ctx, interfaces.KeyServices, s.services)
			}
			break
		}
	}
	return snapshot(s.services)
}

// AppendPayment stores a new payment record with a fresh id and returns it
// together with the updated collection.
func (s *Store) AppendPayment(ctx context.Context, p entities.ProjectPayment) (entities.ProjectPayment, []entities.ProjectPayment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == 0 {
		p.ID = s.nextIDLocked()
	}
	s.payments = append(s.payments, p)
	s.persistLocked(ctx, interfaces.KeyPayments, s.payments)
	return p, snapshot(s.payments)
}
