package routers

import (
	"trimline-service/internal/app/delivery/http/middlewares"
	"trimline-service/internal/app/services/core/catalog"

	"github.com/go-chi/chi/v5"
)

func attachCatalogRoutes(router chi.Router, middlewares *middlewares.Middlewares, catalogController *catalog.CatalogController) {
	router.Get("/", catalogController.ListServices)
	router.Get("/{service_id}", catalogController.GetServiceByID)
	router.With(middlewares.Authenticate).Post("/", catalogController.CreateService)
	router.With(middlewares.Authenticate).Put("/{service_id}", catalogController.UpdateService)
	router.With(middlewares.Authenticate).Post("/{service_id}/image", catalogController.UploadServiceImage)
}
