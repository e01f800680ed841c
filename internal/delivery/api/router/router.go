// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"penpal/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler   *handler.UserHandler
	LetterHandler *handler.LetterHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler   *handler.UserHandler
	letterHandler *handler.LetterHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:   params.UserHandler,
		letterHandler: params.LetterHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Account routes
	usersGroup := api.Group("/usuarios")
	{
		usersGroup.POST("", r.userHandler.RegisterUser)
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.PUT("/:id", r.userHandler.UpdateUser)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser)
	}
	api.POST("/login", r.userHandler.Login)

	// Letter routes
	lettersGroup := api.Group("/cartas")
	{
		lettersGroup.GET("", r.letterHandler.ListByAuthor)
		lettersGroup.POST("", r.letterHandler.SubmitLetter)
		lettersGroup.DELETE("", r.letterHandler.DeleteLetters)
		lettersGroup.POST("/:id/respostas", r.letterHandler.ReplyToLetter)
	}
	api.GET("/cartas-nao-respondidas", r.letterHandler.DrawUnanswered)
	api.GET("/cartas-recebidas/:userId", r.letterHandler.ListReceived)
	api.GET("/caixa-entrada/:userId", r.letterHandler.Inbox)
}
