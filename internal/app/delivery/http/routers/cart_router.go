package routers

import (
	"trimline-service/internal/app/delivery/http/middlewares"
	"trimline-service/internal/app/services/core/cart"

	"github.com/go-chi/chi/v5"
)

func attachCartRoutes(router chi.Router, middlewares *middlewares.Middlewares, cartController *cart.CartController) {
	router.With(middlewares.Authenticate).Get("/", cartController.GetCart)
	router.With(middlewares.Authenticate).Post("/items", cartController.AddItem)
	router.With(middlewares.Authenticate).Delete("/items/{item_id}", cartController.RemoveItem)
	router.With(middlewares.Authenticate).Delete("/", cartController.ClearCart)
}
