package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcq-estructuras/presupuestos-api/internal/application/dto"
	"github.com/jcq-estructuras/presupuestos-api/internal/domain"
	"github.com/jcq-estructuras/presupuestos-api/internal/domain/entity"
	"github.com/jcq-estructuras/presupuestos-api/internal/domain/repository"
)

// UserUseCase administración de usuarios del back-office.
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// Create da de alta un usuario. Rol por defecto MANAGER.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Conflict("El email ya está registrado")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleManager
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         role,
		IsActive:     isActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	resp := dto.UserResponseFrom(user)
	return &resp, nil
}

// GetByID devuelve un usuario activo.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("Usuario no encontrado")
	}
	resp := dto.UserResponseFrom(user)
	return &resp, nil
}

// List listado con filtros.
func (uc *UserUseCase) List(ctx context.Context, f dto.UserFilterRequest) ([]dto.UserResponse, error) {
	if err := dto.Validate(f); err != nil {
		return nil, err
	}
	users, err := uc.userRepo.List(ctx, repository.UserFilter{
		Email:     f.Email,
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Role:      f.Role,
		IsActive:  f.IsActive,
	})
	if err != nil {
		return nil, err
	}
	return dto.UserListFrom(users), nil
}

// ListPage listado paginado.
func (uc *UserUseCase) ListPage(ctx context.Context, f dto.UserFilterRequest, page dto.PageRequest) ([]dto.UserResponse, dto.Meta, error) {
	if err := dto.Validate(f); err != nil {
		return nil, dto.Meta{}, err
	}
	page.DefaultPage()
	users, total, err := uc.userRepo.ListPage(ctx, repository.UserFilter{
		Email:     f.Email,
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Role:      f.Role,
		IsActive:  f.IsActive,
	}, page.Limit, page.Offset())
	if err != nil {
		return nil, dto.Meta{}, err
	}
	return dto.UserListFrom(users), dto.NewMeta(page.Page, page.Limit, total), nil
}

// Update actualización parcial. Un cambio de email verifica duplicados;
// un cambio de password se re-hashea.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("Usuario no encontrado")
	}
	if in.Email != nil && *in.Email != user.Email {
		existing, err := uc.userRepo.GetByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, domain.Conflict("El email ya está registrado")
		}
		user.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := dto.UserResponseFrom(user)
	return &resp, nil
}

// Delete baja lógica.
func (uc *UserUseCase) Delete(ctx context.Context, id string) (*dto.MessageResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("Usuario no encontrado")
	}
	if err := uc.userRepo.SoftDelete(ctx, id, time.Now()); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Usuario eliminado exitosamente"}, nil
}
