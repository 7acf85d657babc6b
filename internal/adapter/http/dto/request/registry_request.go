package request

import "gestao_projetos/internal/domain/entities"

// Registry payloads. Required-field validation happens here via binding
// tags; the core operations assume validated input. An absent or zero id
// means "create", a known id means whole-record replacement.

type ProjectRequest struct {
	ID          int64    `json:"id"`
	Description string   `json:"description" binding:"required"`
	StartDate   string   `json:"start_date" binding:"required"`
	EndDate     string   `json:"end_date"`
	ClientID    int64    `json:"client_id" binding:"required"`
	Status      string   `json:"status" binding:"required,oneof='Pendente' 'Em Progresso' 'Concluído'"`
	Value       *float64 `json:"value" binding:"required,gte=0"`
}

func (r ProjectRequest) ToEntity() entities.Project {
	return entities.Project{
		ID:          r.ID,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		ClientID:    r.ClientID,
		Status:      entities.Status(r.Status),
		Value:       *r.Value,
	}
}

type ClientRequest struct {
	ID      int64  `json:"id"`
	Name    string `json:"name" binding:"required"`
	Company string `json:"company"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
}

func (r ClientRequest) ToEntity() entities.Client {
	return entities.Client{ID: r.ID, Name: r.Name, Company: r.Company, Email: r.Email, Phone: r.Phone}
}

type CollaboratorRequest struct {
	ID       int64  `json:"id"`
	Name     string `json:"name" binding:"required"`
	Position string `json:"position"`
	Email    string `json:"email" binding:"required,email"`
}

func (r CollaboratorRequest) ToEntity() entities.Collaborator {
	return entities.Collaborator{ID: r.ID, Name: r.Name, Position: r.Position, Email: r.Email}
}

type ProductRequest struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Stock       *int     `json:"stock" binding:"required,gte=0"`
}

func (r ProductRequest) ToEntity() entities.Product {
	return entities.Product{ID: r.ID, Name: r.Name, Description: r.Description, Price: *r.Price, Stock: *r.Stock}
}

// ServiceRequest carries no is_paid field: the flag starts false and only
// the pay endpoint flips it. Edits keep the stored value.

type ServiceRequest struct {
	ID             int64    `json:"id"`
	ProjectID      int64    `json:"project_id" binding:"required"`
	ClientID       int64    `json:"client_id" binding:"required"`
	CollaboratorID int64    `json:"collaborator_id" binding:"required"`
	Date           string   `json:"date" binding:"required"`
	DailyValue     *float64 `json:"daily_value" binding:"required,gte=0"`
}

func (r ServiceRequest) ToEntity() entities.Service {
	return entities.Service{
		ID:             r.ID,
		ProjectID:      r.ProjectID,
		ClientID:       r.ClientID,
		CollaboratorID: r.CollaboratorID,
		Date:           r.Date,
		DailyValue:     *r.DailyValue,
	}
}
