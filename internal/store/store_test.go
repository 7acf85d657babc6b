package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"gestao_projetos/internal/domain/entities"
	"gestao_projetos/internal/usecase/interfaces"
	mock_interfaces "gestao_projetos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestStore_CreateOrUpdate(t *testing.T) {
	t.Run("zero id creates with fresh id", func(t *testing.T) {
		s := NewStore(nil)

		clients := s.CreateOrUpdateClient(context.Background(), entities.Client{Name: "Acme", Email: "acme@acme.com"})
		if len(clients) != 1 {
			t.Fatalf("expected 1 client, got %d", len(clients))
		}
		if clients[0].ID == 0 {
			t.Fatalf("expected generated id, got 0")
		}
	})

	t.Run("ids are strictly increasing", func(t *testing.T) {
		s := NewStore(nil)

		first := s.CreateOrUpdateClient(context.Background(), entities.Client{Name: "A"})
		second := s.CreateOrUpdateClient(context.Background(), entities.Client{Name: "B"})
		if second[1].ID <= first[0].ID {
			t.Fatalf("expected increasing ids, got %d then %d", first[0].ID, second[1].ID)
		}
	})

	t.Run("known id replaces the whole record", func(t *testing.T) {
		s := NewStore(nil)

		clients := s.CreateOrUpdateClient(context.Background(), entities.Client{Name: "Acme", Company: "Acme SA"})
		id := clients[0].ID

		clients = s.CreateOrUpdateClient(context.Background(), entities.Client{ID: id, Name: "Acme Renamed"})
		if len(clients) != 1 {
			t.Fatalf("expected 1 client after update, got %d", len(clients))
		}
		if clients[0].Name != "Acme Renamed" {
			t.Fatalf("expected updated name, got %q", clients[0].Name)
		}
		if clients[0].Company != "" {
			t.Fatalf("expected whole-record replacement, company kept %q", clients[0].Company)
		}
	})

	t.Run("unknown nonzero id appends", func(t *testing.T) {
		s := NewStore(nil)

		projects := s.CreateOrUpdateProject(context.Background(), entities.Project{ID: 42, Description: "migrated", Status: entities.StatusPendente})
		if len(projects) != 1 || projects[0].ID != 42 {
			t.Fatalf("expected appended project with id 42, got %+v", projects)
		}
	})
}

func TestStore_Delete(t *testing.T) {
	t.Run("removes matching record", func(t *testing.T) {
		s := NewStore(nil)
		products := s.CreateOrUpdateProduct(context.Background(), entities.Product{Name: "Cabo", Stock: 3})

		products = s.DeleteProduct(context.Background(), products[0].ID)
		if len(products) != 0 {
			t.Fatalf("expected empty collection, got %d", len(products))
		}
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		s := NewStore(nil)
		s.CreateOrUpdateProduct(context.Background(), entities.Product{Name: "Cabo", Stock: 3})

		products := s.DeleteProduct(context.Background(), 999)
		if len(products) != 1 {
			t.Fatalf("expected collection untouched, got %d", len(products))
		}
	})

	t.Run("no cascade into dependents", func(t *testing.T) {
		s := NewStore(nil)
		clients := s.CreateOrUpdateClient(context.Background(), entities.Client{Name: "Acme"})
		s.CreateOrUpdateProject(context.Background(), entities.Project{Description: "obra", ClientID: clients[0].ID, Status: entities.StatusPendente})

		s.DeleteClient(context.Background(), clients[0].ID)

		projects := s.Projects()
		if len(projects) != 1 {
			t.Fatalf("expected project to survive client delete, got %d", len(projects))
		}
		if projects[0].ClientID != clients[0].ID {
			t.Fatalf("expected dangling client reference to be kept, got %d", projects[0].ClientID)
		}
	})
}

func TestStore_ApplyProduct(t *testing.T) {
	t.Run("decrements stock and records application", func(t *testing.T) {
		s := NewStore(nil)
		products := s.CreateOrUpdateProduct(context.Background(), entities.Product{Name: "Tinta", Stock: 10})
		productID := products[0].ID

		products, applications, ok := s.ApplyProduct(context.Background(), 7, productID, 4)
		if !ok {
			t.Fatalf("expected allocation to succeed")
		}
		if products[0].Stock != 6 {
			t.Fatalf("expected stock 6, got %d", products[0].Stock)
		}
		if len(applications) != 1 {
			t.Fatalf("expected 1 application, got %d", len(applications))
		}
		app := applications[0]
		if app.ProjectID != 7 || app.ProductID != productID || app.Quantity != 4 {
			t.Fatalf("unexpected application record: %+v", app)
		}
		if app.ID == 0 {
			t.Fatalf("expected generated application id")
		}
		if app.Date != time.Now().Format("2006-01-02") {
			t.Fatalf("expected today's date, got %q", app.Date)
		}
	})

	t.Run("exact stock drains to zero", func(t *testing.T) {
		s := NewStore(nil)
		products := s.CreateOrUpdateProduct(context.Background(), entities.Product{Name: "Tinta", Stock: 5})

		updated, _, ok := s.ApplyProduct(context.Background(), 1, products[0].ID, 5)
		if !ok || updated[0].Stock != 0 {
			t.Fatalf("expected stock drained to 0, ok=%v stock=%d", ok, updated[0].Stock)
		}
	})

	t.Run("insufficient stock mutates nothing", func(t *testing.T) {
		s := NewStore(nil)
		products := s.CreateOrUpdateProduct(context.Background(), entities.Product{Name: "Tinta", Stock: 10})
		productID := products[0].ID

		if _, _, ok := s.ApplyProduct(context.Background(), 1, productID, 5); !ok {
			t.Fatalf("expected first allocation to succeed")
		}
		if _, _, ok := s.ApplyProduct(context.Background(), 1, productID, 6); ok {
			t.Fatalf("expected second allocation to fail")
		}

		if got := s.Products()[0].Stock; got != 5 {
			t.Fatalf("expected stock unchanged at 5, got %d", got)
		}
		if got := len(s.ProductApplications()); got != 1 {
			t.Fatalf("expected only the first application recorded, got %d", got)
		}
	})

	t.Run("missing product counts as zero availability", func(t *testing.T) {
		s := NewStore(nil)

		if _, _, ok := s.ApplyProduct(context.Background(), 1, 999, 1); ok {
			t.Fatalf("expected allocation against unknown product to fail")
		}
		if got := len(s.ProductApplications()); got != 0 {
			t.Fatalf("expected no applications, got %d", got)
		}
	})
}

func TestStore_MarkServicePaid(t *testing.T) {
	t.Run("flips is_paid and is idempotent", func(t *testing.T) {
		s := NewStore(nil)
		services := s.CreateOrUpdateService(context.Background(), entities.Service{ProjectID: 1, DailyValue: 100})
		id := services[0].ID

		services = s.MarkServicePaid(context.Background(), id)
		if !services[0].IsPaid {
			t.Fatalf("expected service marked paid")
		}

		services = s.MarkServicePaid(context.Background(), id)
		if !services[0].IsPaid {
			t.Fatalf("expected repeated call to keep service paid")
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		s := NewStore(nil)
		s.CreateOrUpdateService(context.Background(), entities.Service{ProjectID: 1, DailyValue: 100})

		services := s.MarkServicePaid(context.Background(), 999)
		if len(services) != 1 || services[0].IsPaid {
			t.Fatalf("expected collection untouched, got %+v", services)
		}
	})

	t.Run("an edit cannot revert a paid service", func(t *testing.T) {
		s := NewStore(nil)
		services := s.CreateOrUpdateService(context.Background(), entities.Service{ProjectID: 1, DailyValue: 100})
		id := services[0].ID
		s.MarkServicePaid(context.Background(), id)

		services = s.CreateOrUpdateService(context.Background(), entities.Service{ID: id, ProjectID: 1, DailyValue: 200, IsPaid: false})
		if !services[0].IsPaid {
			t.Fatalf("expected paid flag preserved across edit, got %+v", services[0])
		}
		if services[0].DailyValue != 200 {
			t.Fatalf("expected other fields replaced, got %+v", services[0])
		}
	})

	t.Run("an edit cannot mark a service paid", func(t *testing.T) {
		s := NewStore(nil)
		services := s.CreateOrUpdateService(context.Background(), entities.Service{ProjectID: 1, DailyValue: 100})

		services = s.CreateOrUpdateService(context.Background(), entities.Service{ID: services[0].ID, ProjectID: 1, DailyValue: 100, IsPaid: true})
		if services[0].IsPaid {
			t.Fatalf("expected paid flag to stay false on edit, got %+v", services[0])
		}
	})
}

func TestStore_AppendPayment(t *testing.T) {
	s := NewStore(nil)

	stored, payments := s.AppendPayment(context.Background(), entities.ProjectPayment{ProjectID: 3, Date: "2026-08-01", Amount: 300})
	if stored.ID == 0 {
		t.Fatalf("expected generated payment id")
	}
	if len(payments) != 1 || payments[0].ID != stored.ID {
		t.Fatalf("expected stored payment in collection, got %+v", payments)
	}

	_, payments = s.AppendPayment(context.Background(), entities.ProjectPayment{ProjectID: 3, Date: "2026-08-02", Amount: 200})
	if len(payments) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(payments))
	}
}

func expectEmptyLoads(p *mock_interfaces.MockICollectionStore, except ...string) {
	skip := map[string]bool{}
	for _, k := range except {
		skip[k] = true
	}
	for _, key := range []string{
		interfaces.KeyProjects,
		interfaces.KeyClients,
		interfaces.KeyCollaborators,
		interfaces.KeyProducts,
		interfaces.KeyServices,
		interfaces.KeyAppliedProducts,
		interfaces.KeyPayments,
	} {
		if !skip[key] {
			p.EXPECT().Load(gomock.Any(), key).Return(nil, nil)
		}
	}
}

func TestStore_Load(t *testing.T) {
	t.Run("hydrates collections from persisted payloads", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		persistence := mock_interfaces.NewMockICollectionStore(ctrl)

		persisted, _ := json.Marshal([]entities.Client{{ID: 10, Name: "Acme"}})
		persistence.EXPECT().Load(gomock.Any(), interfaces.KeyClients).Return(json.RawMessage(persisted), nil)
		expectEmptyLoads(persistence, interfaces.KeyClients)

		s := NewStore(persistence)
		s.Load(context.Background())

		clients := s.Clients()
		if len(clients) != 1 || clients[0].Name != "Acme" {
			t.Fatalf("expected hydrated client, got %+v", clients)
		}
	})

	t.Run("corrupt payload yields empty collection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		persistence := mock_interfaces.NewMockICollectionStore(ctrl)

		persistence.EXPECT().Load(gomock.Any(), interfaces.KeyProjects).Return(json.RawMessage(`{not json`), nil)
		expectEmptyLoads(persistence, interfaces.KeyProjects)

		s := NewStore(persistence)
		s.Load(context.Background())

		if got := len(s.Projects()); got != 0 {
			t.Fatalf("expected empty projects, got %d", got)
		}
	})

	t.Run("load error yields empty collection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		persistence := mock_interfaces.NewMockICollectionStore(ctrl)

		persistence.EXPECT().Load(gomock.Any(), interfaces.KeyServices).Return(nil, errors.New("db down"))
		expectEmptyLoads(persistence, interfaces.KeyServices)

		s := NewStore(persistence)
		s.Load(context.Background())

		if got := len(s.Services()); got != 0 {
			t.Fatalf("expected empty services, got %d", got)
		}
	})

	t.Run("sequence advances past loaded ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		persistence := mock_interfaces.NewMockICollectionStore(ctrl)

		highID := time.Now().UnixMilli() + 1_000_000
		persisted, _ := json.Marshal([]entities.Product{{ID: highID, Name: "Tinta", Stock: 1}})
		persistence.EXPECT().Load(gomock.Any(), interfaces.KeyProducts).Return(json.RawMessage(persisted), nil)
		expectEmptyLoads(persistence, interfaces.KeyProducts)
		persistence.EXPECT().Save(gomock.Any(), interfaces.KeyClients, gomock.Any()).Return(nil)

		s := NewStore(persistence)
		s.Load(context.Background())

		clients := s.CreateOrUpdateClient(context.Background(), entities.Client{Name: "Acme"})
		if clients[0].ID <= highID {
			t.Fatalf("expected fresh id above %d, got %d", highID, clients[0].ID)
		}
	})
}

func TestStore_Persistence(t *testing.T) {
	t.Run("mutation saves the touched collection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		persistence := mock_interfaces.NewMockICollectionStore(ctrl)

		persistence.EXPECT().Save(gomock.Any(), interfaces.KeyClients, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, raw json.RawMessage) error {
				var col []entities.Client
				if err := json.Unmarshal(raw, &col); err != nil {
					t.Fatalf("expected valid payload: %v", err)
				}
				if len(col) != 1 || col[0].Name != "Acme" {
					t.Fatalf("unexpected persisted collection: %+v", col)
				}
				return nil
			})

		s := NewStore(persistence)
		s.CreateOrUpdateClient(context.Background(), entities.Client{Name: "Acme"})
	})

	t.Run("allocation saves products and applications", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		persistence := mock_interfaces.NewMockICollectionStore(ctrl)

		persistence.EXPECT().Save(gomock.Any(), interfaces.KeyProducts, gomock.Any()).Return(nil).Times(2)
		persistence.EXPECT().Save(gomock.Any(), interfaces.KeyAppliedProducts, gomock.Any()).Return(nil)

		s := NewStore(persistence)
		products := s.CreateOrUpdateProduct(context.Background(), entities.Product{Name: "Tinta", Stock: 2})
		if _, _, ok := s.ApplyProduct(context.Background(), 1, products[0].ID, 1); !ok {
			t.Fatalf("expected allocation to succeed")
		}
	})

	t.Run("save failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		persistence := mock_interfaces.NewMockICollectionStore(ctrl)

		persistence.EXPECT().Save(gomock.Any(), interfaces.KeyClients, gomock.Any()).Return(errors.New("table missing"))

		s := NewStore(persistence)
		clients := s.CreateOrUpdateClient(context.Background(), entities.Client{Name: "Acme"})
		if len(clients) != 1 {
			t.Fatalf("expected mutation to succeed despite save failure, got %+v", clients)
		}
	})
}
