package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gestao_projetos/internal/adapter/http/handlers/mocks"
	"gestao_projetos/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRegistryHandler_Projects(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *RegistryHandler) *gin.Engine {
		r := gin.New()
		r.GET("/v1/projects", h.ListProjects)
		r.PUT("/v1/projects", h.PutProject)
		r.DELETE("/v1/projects/:id", h.DeleteProject)
		return r
	}

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRegistryUseCase(ctrl)
		r := newRouter(NewRegistryHandler(uc))

		uc.EXPECT().ListProjects(gomock.Any()).Return([]entities.Project{{ID: 1, Description: "obra", Status: entities.StatusPendente}})

		req := httptest.NewRequest(http.MethodGet, "/v1/projects", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var projects []entities.Project
		if err := json.Unmarshal(w.Body.Bytes(), &projects); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(projects) != 1 || projects[0].Description != "obra" {
			t.Fatalf("unexpected projects: %+v", projects)
		}
	})

	t.Run("put with unknown status fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRegistryUseCase(ctrl)
		r := newRouter(NewRegistryHandler(uc))

		payload := `{"description":"obra","start_date":"2026-08-01","client_id":1,"status":"Cancelado","value":100}`
		req := httptest.NewRequest(http.MethodPut, "/v1/projects", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("put forwards the entity and responds with the collection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRegistryUseCase(ctrl)
		r := newRouter(NewRegistryHandler(uc))

		expected := entities.Project{Description: "obra", StartDate: "2026-08-01", ClientID: 1, Status: entities.StatusEmProgresso, Value: 100}
		uc.EXPECT().CreateOrUpdateProject(gomock.Any(), expected).Return([]entities.Project{{ID: 10, Description: "obra", StartDate: "2026-08-01", ClientID: 1, Status: entities.StatusEmProgresso, Value: 100}})

		payload := `{"description":"obra","start_date":"2026-08-01","client_id":1,"status":"Em Progresso","value":100}`
		req := httptest.NewRequest(http.MethodPut, "/v1/projects", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete with malformed id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRegistryUseCase(ctrl)
		r := newRouter(NewRegistryHandler(uc))

		req := httptest.NewRequest(http.MethodDelete, "/v1/projects/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("delete responds with the remaining collection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRegistryUseCase(ctrl)
		r := newRouter(NewRegistryHandler(uc))

		uc.EXPECT().DeleteProject(gomock.Any(), int64(10)).Return([]entities.Project{})

		req := httptest.NewRequest(http.MethodDelete, "/v1/projects/10", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestRegistryHandler_Clients(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("put without email fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRegistryUseCase(ctrl)
		h := NewRegistryHandler(uc)

		r := gin.New()
		r.PUT("/v1/clients", h.PutClient)

		req := httptest.NewRequest(http.MethodPut, "/v1/clients", bytes.NewBufferString(`{"name":"Acme"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("put forwards the entity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRegistryUseCase(ctrl)
		h := NewRegistryHandler(uc)

		r := gin.New()
		r.PUT("/v1/clients", h.PutClient)

		expected := entities.Client{ID: 3, Name: "Acme", Email: "acme@acme.com"}
		uc.EXPECT().CreateOrUpdateClient(gomock.Any(), expected).Return([]entities.Client{expected})

		req := httptest.NewRequest(http.MethodPut, "/v1/clients", bytes.NewBufferString(`{"id":3,"name":"Acme","email":"acme@acme.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestRegistryHandler_Products(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("put with negative stock fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRegistryUseCase(ctrl)
		h := NewRegistryHandler(uc)

		r := gin.New()
		r.PUT("/v1/products", h.PutProduct)

		req := httptest.NewRequest(http.MethodPut, "/v1/products", bytes.NewBufferString(`{"name":"Tinta","price":10,"stock":-1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("put accepts zero stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRegistryUseCase(ctrl)
		h := NewRegistryHandler(uc)

		r := gin.New()
		r.PUT("/v1/products", h.PutProduct)

		expected := entities.Product{Name: "Tinta", Price: 10}
		uc.EXPECT().CreateOrUpdateProduct(gomock.Any(), expected).Return([]entities.Product{expected})

		req := httptest.NewRequest(http.MethodPut, "/v1/products", bytes.NewBufferString(`{"name":"Tinta","price":10,"stock":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestRegistryHandler_Services(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("put never forwards a payment flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRegistryUseCase(ctrl)
		h := NewRegistryHandler(uc)

		r := gin.New()
		r.PUT("/v1/services", h.PutService)

		expected := entities.Service{ID: 4, ProjectID: 1, ClientID: 2, CollaboratorID: 3, Date: "2026-08-28", DailyValue: 120}
		uc.EXPECT().CreateOrUpdateService(gomock.Any(), expected).Return([]entities.Service{expected})

		payload := `{"id":4,"project_id":1,"client_id":2,"collaborator_id":3,"date":"2026-08-28","daily_value":120,"is_paid":true}`
		req := httptest.NewRequest(http.MethodPut, "/v1/services", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestRegistryHandler_ReadOnlyCollections(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIRegistryUseCase(ctrl)
	h := NewRegistryHandler(uc)

	r := gin.New()
	r.GET("/v1/applications", h.ListProductApplications)
	r.GET("/v1/payments", h.ListPayments)

	uc.EXPECT().ListProductApplications(gomock.Any()).Return([]entities.ProductApplication{{ID: 1, ProjectID: 2, ProductID: 3, Quantity: 4}})
	uc.EXPECT().ListPayments(gomock.Any()).Return([]entities.ProjectPayment{{ID: 1, ProjectID: 2, Amount: 50}})

	for _, path := range []string{"/v1/applications", "/v1/payments"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s, got %d", path, w.Code)
		}
	}
}
