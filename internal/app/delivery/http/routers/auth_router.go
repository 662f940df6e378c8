package routers

import (
	"trimline-service/internal/app/delivery/http/middlewares"
	"trimline-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/otp/request", authController.RequestOTP)
	router.Post("/otp/verify", authController.VerifyOTP)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
}
