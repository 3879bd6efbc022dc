package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcq-estructuras/presupuestos-api/internal/application/auth"
	"github.com/jcq-estructuras/presupuestos-api/internal/application/dto"
	"github.com/jcq-estructuras/presupuestos-api/internal/domain"
	"github.com/jcq-estructuras/presupuestos-api/internal/domain/entity"
	"github.com/jcq-estructuras/presupuestos-api/internal/domain/repository"
	pkgjwt "github.com/jcq-estructuras/presupuestos-api/pkg/jwt"
)

const testSecret = "secret-solo-para-tests"

// fakeUserRepo en memoria. GetByEmail devuelve también los soft-deleted,
// igual que el adaptador real: el login decide qué hacer con ellos.
type fakeUserRepo struct {
	users map[string]*entity.User // key: email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.users[email], nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id && u.DeletedAt == nil {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context, _ repository.UserFilter) ([]*entity.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) ListPage(_ context.Context, _ repository.UserFilter, _, _ int) ([]*entity.User, int, error) {
	return nil, 0, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	r.users[u.Email] = u
	return nil
}

func (r *fakeUserRepo) SoftDelete(_ context.Context, id string, at time.Time) error {
	for _, u := range r.users {
		if u.ID == id {
			u.DeletedAt = &at
		}
	}
	return nil
}

func newAuthUC(repo *fakeUserRepo) *auth.UseCase {
	return auth.NewUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "presupuestos-test",
	})
}

func seedUser(repo *fakeUserRepo, email, password string, active bool) *entity.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	u := &entity.User{
		ID:           "00000000-0000-0000-0000-000000000001",
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    "Ana",
		LastName:     "Quiroga",
		Role:         entity.RoleAdmin,
		IsActive:     active,
	}
	repo.users[email] = u
	return u
}

func TestLogin_CredencialesValidas_DevuelveToken(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "ana@jcq.com", "secreta123", true)
	uc := newAuthUC(repo)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@jcq.com",
		Password: "secreta123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "ana@jcq.com", resp.Email)
	assert.Equal(t, entity.RoleAdmin, resp.Role)

	// El token lleva identidad, email y rol.
	userID, email, role, err := pkgjwt.Parse(testSecret, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, userID)
	assert.Equal(t, "ana@jcq.com", email)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_MismoMensajeParaUsuarioInexistenteYPasswordIncorrecto(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "ana@jcq.com", "secreta123", true)
	uc := newAuthUC(repo)

	_, errNoUser := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@jcq.com",
		Password: "cualquiera",
	})
	_, errBadPass := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@jcq.com",
		Password: "incorrecta",
	})

	require.Error(t, errNoUser)
	require.Error(t, errBadPass)
	assert.ErrorIs(t, errNoUser, domain.ErrUnauthorized)
	assert.ErrorIs(t, errBadPass, domain.ErrUnauthorized)
	assert.Equal(t, errNoUser.Error(), errBadPass.Error(),
		"no se debe poder distinguir si el email existe")
	assert.Equal(t, "Credenciales inválidas", errNoUser.Error())
}

func TestLogin_UsuarioDadoDeBaja_MismoMensajeGenerico(t *testing.T) {
	repo := newFakeUserRepo()
	u := seedUser(repo, "ana@jcq.com", "secreta123", true)
	deleted := time.Now()
	u.DeletedAt = &deleted
	uc := newAuthUC(repo)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@jcq.com",
		Password: "secreta123",
	})
	require.Error(t, err)
	assert.Equal(t, "Credenciales inválidas", err.Error())
}

func TestLogin_UsuarioInactivo_ConPasswordCorrecto(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "ana@jcq.com", "secreta123", false)
	uc := newAuthUC(repo)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@jcq.com",
		Password: "secreta123",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, "Usuario inactivo", err.Error(),
		"inactivo se informa distinto: el password era correcto")
}

func TestRegister_EmailDuplicado_Retorna409(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "ana@jcq.com", "secreta123", true)
	uc := newAuthUC(repo)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:     "ana@jcq.com",
		Password:  "otra-clave",
		FirstName: "Ana",
		LastName:  "Quiroga",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, "El email ya está registrado", err.Error())
}

func TestRegister_RolPorDefectoManagerYActivo(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	resp, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:     "nuevo@jcq.com",
		Password:  "secreta123",
		FirstName: "Luis",
		LastName:  "Paz",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, resp.Role)
	assert.True(t, resp.IsActive)

	// El password se guarda hasheado, nunca plano.
	stored := repo.users["nuevo@jcq.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta123")))
}
