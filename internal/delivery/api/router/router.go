// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"greengrocer/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CustomerHandler  *handler.CustomerHandler
	VegetableHandler *handler.VegetableHandler
	OrderHandler     *handler.OrderHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	customerHandler  *handler.CustomerHandler
	vegetableHandler *handler.VegetableHandler
	orderHandler     *handler.OrderHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		customerHandler:  params.CustomerHandler,
		vegetableHandler: params.VegetableHandler,
		orderHandler:     params.OrderHandler,
	}
}

// crudHandlers is the handler set of one resource.
type crudHandlers struct {
	list, create, get, update, remove echo.HandlerFunc
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	registerResource(apiV1.Group("/customers"), crudHandlers{
		list:   r.customerHandler.ListCustomers,
		create: r.customerHandler.CreateCustomer,
		get:    r.customerHandler.GetCustomer,
		update: r.customerHandler.UpdateCustomer,
		remove: r.customerHandler.DeleteCustomer,
	})

	registerResource(apiV1.Group("/vegetables"), crudHandlers{
		list:   r.vegetableHandler.ListVegetables,
		create: r.vegetableHandler.CreateVegetable,
		get:    r.vegetableHandler.GetVegetable,
		update: r.vegetableHandler.UpdateVegetable,
		remove: r.vegetableHandler.DeleteVegetable,
	})

	registerResource(apiV1.Group("/orders"), crudHandlers{
		list:   r.orderHandler.ListOrders,
		create: r.orderHandler.CreateOrder,
		get:    r.orderHandler.GetOrder,
		update: r.orderHandler.UpdateOrder,
		remove: r.orderHandler.DeleteOrder,
	})
}

// registerResource mounts the collection routes both with and without the
// trailing slash, so /customers and /customers/ resolve alike.
func registerResource(g *echo.Group, h crudHandlers) {
	for _, collection := range []string{"", "/"} {
		g.GET(collection, h.list)
		g.POST(collection, h.create)
	}

	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}
