package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jcq-estructuras/presupuestos-api/internal/application/dto"
	"github.com/jcq-estructuras/presupuestos-api/internal/domain"
	"github.com/jcq-estructuras/presupuestos-api/internal/domain/entity"
	"github.com/jcq-estructuras/presupuestos-api/internal/domain/repository"
)

// ClientUseCase CRUD de clientes con baja lógica.
// Regla de negocio: todo cliente debe tener al menos CUIT o DNI.
type ClientUseCase struct {
	clientRepo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clientRepo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo}
}

// Create da de alta un cliente.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.Cuit == "" && in.Dni == "" {
		return nil, domain.BadRequest("Debe proporcionar CUIT o DNI del cliente")
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		Fullname:  in.Fullname,
		Phone:     in.Phone,
		Cuit:      in.Cuit,
		Dni:       in.Dni,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	resp := dto.ClientResponseFrom(client)
	return &resp, nil
}

// GetByID devuelve un cliente activo.
func (uc *ClientUseCase) GetByID(ctx context.Context, id string) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.NotFound("Cliente no encontrado")
	}
	resp := dto.ClientResponseFrom(client)
	return &resp, nil
}

// List devuelve todos los clientes activos que cumplan los filtros.
func (uc *ClientUseCase) List(ctx context.Context, f dto.ClientFilterRequest) ([]dto.ClientResponse, error) {
	clients, err := uc.clientRepo.List(ctx, repository.ClientFilter{
		Fullname: f.Fullname,
		Phone:    f.Phone,
		Cuit:     f.Cuit,
		Dni:      f.Dni,
	})
	if err != nil {
		return nil, err
	}
	return dto.ClientListFrom(clients), nil
}

// ListPage listado paginado.
func (uc *ClientUseCase) ListPage(ctx context.Context, f dto.ClientFilterRequest, page dto.PageRequest) ([]dto.ClientResponse, dto.Meta, error) {
	page.DefaultPage()
	clients, total, err := uc.clientRepo.ListPage(ctx, repository.ClientFilter{
		Fullname: f.Fullname,
		Phone:    f.Phone,
		Cuit:     f.Cuit,
		Dni:      f.Dni,
	}, page.Limit, page.Offset())
	if err != nil {
		return nil, dto.Meta{}, err
	}
	return dto.ClientListFrom(clients), dto.NewMeta(page.Page, page.Limit, total), nil
}

// Update actualización parcial. El merge no puede dejar al cliente sin
// CUIT ni DNI.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	client, err := uc.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.NotFound("Cliente no encontrado")
	}
	if in.Fullname != nil {
		client.Fullname = *in.Fullname
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.Cuit != nil {
		client.Cuit = *in.Cuit
	}
	if in.Dni != nil {
		client.Dni = *in.Dni
	}
	if client.Cuit == "" && client.Dni == "" {
		return nil, domain.BadRequest("El cliente debe tener CUIT o DNI")
	}
	client.UpdatedAt = time.Now()
	if err := uc.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	resp := dto.ClientResponseFrom(client)
	return &resp, nil
}

// Delete baja lógica.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) (*dto.MessageResponse, error) {
	client, err := uc.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.NotFound("Cliente no encontrado")
	}
	if err := uc.clientRepo.SoftDelete(ctx, id, time.Now()); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Cliente eliminado exitosamente"}, nil
}
