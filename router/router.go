package router

import (
	"time"

	"oficios/config"
	"oficios/controllers"
	"oficios/db"
	"oficios/middleware"
	"oficios/session"
	"oficios/views"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Initialize wires all routes and middlewares.
// Public routes (login/logout/health) + authenticated routes (Autenticado).
func Initialize(r *gin.Engine, cfg config.Configuration, backend db.Backend, sessions session.Store) {
	r.SetHTMLTemplate(views.Templates())

	r.Use(gin.Recovery())
	r.Use(Logger())
	r.Use(middleware.NoCache())
	r.Use(db.SetBackendToContext(backend))
	r.Use(session.Middleware(sessions, session.Options{
		Cookie: cfg.Session.Cookie,
		MaxAge: time.Duration(cfg.Session.MaxAge) * time.Second,
		Secure: cfg.Session.Secure,
	}))

	// Public (no auth)
	r.GET("/", controllers.Raiz(cfg.AutoLogin))
	r.POST("/login", controllers.Login)
	r.GET("/logout", controllers.Logout)
	r.GET("/health", controllers.Health)

	// Authenticated routes
	auth := r.Group("")
	auth.Use(Autenticado())
	auth.GET("/form", controllers.FormLogin)
	auth.GET("/home", controllers.Home)
	auth.GET("/cadastro", controllers.Cadastro)
	auth.POST("/salvar", controllers.SalvarOficio)
	auth.GET("/lister", controllers.ListarOficios)
	auth.GET("/oficio/:id", controllers.DeletarOficio)
	auth.GET("/oficio/editar/:id", controllers.CarregarEdicao)
	auth.POST("/oficio/editar/:id", controllers.EditarOficio)

	zap.L().Info("Routes initialized", zap.String("backend", cfg.Backend))
}
