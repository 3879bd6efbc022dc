package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcq-estructuras/presupuestos-api/internal/application/auth"
	"github.com/jcq-estructuras/presupuestos-api/internal/application/usecase"
	"github.com/jcq-estructuras/presupuestos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.UseCase
	UserUC    *usecase.UserUseCase
	ClientUC  *usecase.ClientUseCase
	ProjectUC *usecase.ProjectUseCase
	PaidUC    *usecase.PaidUseCase
	StaffUC   *usecase.StaffUseCase
	AuditUC   *usecase.AuditUseCase
	JWTSecret string
}

// Router registra las rutas de la API. Cada ruta declara sus roles
// permitidos y, si muta datos, su descriptor de auditoría.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	allRoles := []string{entity.RoleAdmin, entity.RoleSubadmin, entity.RoleManager}
	adminOnly := []string{entity.RoleAdmin}
	adminSubadmin := []string{entity.RoleAdmin, entity.RoleSubadmin}
	adminManager := []string{entity.RoleAdmin, entity.RoleManager}

	audited := func(action, ent string) fiber.Handler {
		return Audited(deps.AuditUC, AuditDescriptor{Action: action, Entity: ent})
	}

	// Auth: login público; register restringido y auditado.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register",
		AuthMiddleware(deps.JWTSecret), RequireRole(adminSubadmin...),
		audited("CREATE", "User"), authHandler.Register)

	// Todo lo demás requiere Bearer Token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", RequireRole(adminSubadmin...), audited("CREATE", "User"), userHandler.Create)
	users.Get("/", RequireRole(allRoles...), userHandler.List)
	users.Get("/pagination", RequireRole(allRoles...), userHandler.ListPage)
	users.Get("/:id", RequireRole(allRoles...), userHandler.GetByID)
	users.Patch("/:id", RequireRole(adminSubadmin...), audited("UPDATE", "User"), userHandler.Update)
	users.Delete("/:id", RequireRole(adminOnly...), audited("DELETE", "User"), userHandler.Delete)

	// Clients
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", RequireRole(allRoles...), audited("CREATE", "Client"), clientHandler.Create)
	clients.Get("/", RequireRole(allRoles...), clientHandler.List)
	clients.Get("/pagination", RequireRole(allRoles...), clientHandler.ListPage)
	clients.Get("/:id", RequireRole(allRoles...), clientHandler.GetByID)
	clients.Patch("/:id", RequireRole(allRoles...), audited("UPDATE", "Client"), clientHandler.Update)
	clients.Delete("/:id", RequireRole(adminSubadmin...), audited("DELETE", "Client"), clientHandler.Delete)

	// Projects
	projects := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC)
	projects.Post("/", RequireRole(allRoles...), audited("CREATE", "Project"), projectHandler.Create)
	projects.Get("/", RequireRole(allRoles...), projectHandler.List)
	projects.Get("/pagination", RequireRole(allRoles...), projectHandler.ListPage)
	projects.Get("/:id", RequireRole(allRoles...), projectHandler.GetByID)
	projects.Patch("/:id/status", RequireRole(allRoles...), audited("UPDATE", "Project"), projectHandler.ChangeStatus)
	projects.Patch("/:id", RequireRole(allRoles...), audited("UPDATE", "Project"), projectHandler.Update)
	projects.Delete("/:id", RequireRole(adminSubadmin...), audited("DELETE", "Project"), projectHandler.Delete)

	// Paids
	paids := protected.Group("/paids")
	paidHandler := NewPaidHandler(deps.PaidUC)
	paids.Post("/", RequireRole(allRoles...), audited("CREATE", "Paid"), paidHandler.Create)
	paids.Get("/", RequireRole(allRoles...), paidHandler.List)
	paids.Get("/pagination", RequireRole(allRoles...), paidHandler.ListPage)
	paids.Get("/project/:projectId", RequireRole(allRoles...), paidHandler.ListByProject)
	paids.Get("/:id", RequireRole(allRoles...), paidHandler.GetByID)
	paids.Patch("/:id", RequireRole(allRoles...), audited("UPDATE", "Paid"), paidHandler.Update)
	paids.Delete("/:id", RequireRole(adminSubadmin...), audited("DELETE", "Paid"), paidHandler.Delete)

	// Staff + planillas de horas
	staff := protected.Group("/staff")
	staffHandler := NewStaffHandler(deps.StaffUC)
	staff.Post("/work-record", RequireRole(allRoles...), audited("CREATE", "Work-Record"), staffHandler.CreateWorkRecord)
	staff.Patch("/work-record/:id", RequireRole(allRoles...), audited("UPDATE", "Work-Record"), staffHandler.UpdateWorkRecord)
	staff.Get("/:staffId/work-records", RequireRole(allRoles...), staffHandler.ListWorkRecords)
	staff.Post("/", RequireRole(allRoles...), audited("CREATE", "Staff"), staffHandler.Create)
	staff.Get("/", RequireRole(allRoles...), staffHandler.List)
	staff.Get("/pagination", RequireRole(allRoles...), staffHandler.ListPage)
	staff.Get("/:id", RequireRole(allRoles...), staffHandler.GetByID)
	staff.Patch("/:id", RequireRole(adminManager...), audited("UPDATE", "Staff"), staffHandler.Update)
	staff.Delete("/:id", RequireRole(adminSubadmin...), audited("DELETE", "Staff"), staffHandler.Delete)
}
