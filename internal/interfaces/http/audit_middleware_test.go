package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcq-estructuras/presupuestos-api/internal/application/usecase"
	"github.com/jcq-estructuras/presupuestos-api/internal/domain"
	"github.com/jcq-estructuras/presupuestos-api/internal/domain/entity"
	apphttp "github.com/jcq-estructuras/presupuestos-api/internal/interfaces/http"
)

// fakeAuditRepo captura la entrada persistida y avisa por canal (la
// escritura corre en una goroutine aparte).
type fakeAuditRepo struct {
	entries chan *entity.AuditLog
}

func newFakeAuditRepo() *fakeAuditRepo {
	return &fakeAuditRepo{entries: make(chan *entity.AuditLog, 1)}
}

func (r *fakeAuditRepo) Create(_ context.Context, log *entity.AuditLog) error {
	r.entries <- log
	return nil
}

type fakeGeo struct{}

func (fakeGeo) Lookup(_ context.Context, ip string) string {
	if strings.HasPrefix(ip, "10.") {
		return "Local"
	}
	return "Córdoba, Córdoba, Argentina"
}

func buildAuditedApp(repo *fakeAuditRepo, handler fiber.Handler) *fiber.App {
	auditUC := usecase.NewAuditUseCase(repo, fakeGeo{}, testLogger())
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(testLogger())})
	app.Post("/things",
		apphttp.Audited(auditUC, apphttp.AuditDescriptor{Action: "CREATE", Entity: "Client"}),
		handler,
	)
	app.Delete("/things/:id",
		apphttp.Audited(auditUC, apphttp.AuditDescriptor{Action: "DELETE", Entity: "Client"}),
		handler,
	)
	return app
}

func waitEntry(t *testing.T, repo *fakeAuditRepo) *entity.AuditLog {
	t.Helper()
	select {
	case e := <-repo.entries:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("la entrada de auditoría nunca se persistió")
		return nil
	}
}

func TestAudited_RespuestaExitosaRegistraEntrada(t *testing.T) {
	repo := newFakeAuditRepo()
	app := buildAuditedApp(repo, func(c *fiber.Ctx) error {
		return apphttp.Created(c, fiber.Map{"id": "abc-123", "fullname": "María"})
	})

	req := httptest.NewRequest(http.MethodPost, "/things", nil)
	req.Header.Set("X-Forwarded-For", "200.45.1.2, 10.0.0.1")
	req.Header.Set("User-Agent", "test-agent/1.0")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	entry := waitEntry(t, repo)
	assert.Equal(t, "CREATE", entry.Action)
	assert.Equal(t, "Client", entry.Entity)
	assert.Equal(t, "abc-123", entry.EntityID, "el id sale de data.id de la respuesta")
	assert.Equal(t, "200.45.1.2", entry.IP, "primer valor de X-Forwarded-For")
	assert.Equal(t, "Córdoba, Córdoba, Argentina", entry.Location)
	assert.Equal(t, "test-agent/1.0", entry.UserAgent)
	assert.Contains(t, string(entry.Changes), "abc-123", "el payload de la respuesta queda como changes")
}

func TestAudited_BajaSinIdEnElCuerpo_UsaElDelPath(t *testing.T) {
	repo := newFakeAuditRepo()
	app := buildAuditedApp(repo, func(c *fiber.Ctx) error {
		return apphttp.OK(c, fiber.Map{"message": "Cliente eliminado exitosamente"})
	})

	req := httptest.NewRequest(http.MethodDelete, "/things/xyz-999", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	entry := waitEntry(t, repo)
	assert.Equal(t, "DELETE", entry.Action)
	assert.Equal(t, "xyz-999", entry.EntityID)
}

func TestAudited_RespuestaFallida_NoRegistraNada(t *testing.T) {
	repo := newFakeAuditRepo()
	app := buildAuditedApp(repo, func(c *fiber.Ctx) error {
		return domain.NotFound("Cliente no encontrado")
	})

	req := httptest.NewRequest(http.MethodPost, "/things", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	select {
	case <-repo.entries:
		t.Fatal("una respuesta de error no debe auditarse")
	case <-time.After(200 * time.Millisecond):
	}
}
