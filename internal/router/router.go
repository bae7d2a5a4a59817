package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/semexe/backend/api/handler"
)

type Handlers struct {
	Auth     *apiHandler.AuthHandler
	Activity *apiHandler.ActivityHandler
	Feedback *apiHandler.FeedbackHandler
	Health   *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Account routes
	r.POST("/api/users/register", handlers.Auth.Register)
	r.POST("/api/users/login", handlers.Auth.Login)

	// Activity routes; the public listing stays outside the gate.
	r.GET("/api/atividades", handlers.Activity.List)
	r.GET("/api/atividades/minhas", authMiddleware(handlers.Activity.ListMine))
	r.POST("/api/atividades", authMiddleware(handlers.Activity.Create))
	r.PUT("/api/atividades/{id}", authMiddleware(handlers.Activity.Update))
	r.DELETE("/api/atividades/{id}", authMiddleware(handlers.Activity.Delete))

	// Feedback is open to visitors without an account.
	r.POST("/api/feedback", handlers.Feedback.Submit)

	return r
}
