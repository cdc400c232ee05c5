package app

import (
	"net/http"
	"passreset/internal/app/deps"
	"passreset/internal/app/services"
	forgotpassword "passreset/internal/http/handlers/password/forgot_password"
	resetpassword "passreset/internal/http/handlers/password/reset_password"
	validateresettoken "passreset/internal/http/handlers/password/validate_reset_token"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode

	userRouter := chi.NewRouter()
	userRouter.Method(http.MethodPost, "/forgot-password", forgotpassword.New(s.RequestReset, isTestMode))
	userRouter.Method(http.MethodGet, "/reset-password", validateresettoken.New(s.ValidateToken))
	userRouter.Method(http.MethodPost, "/reset-password", resetpassword.New(s.ResetPassword))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Get("/healthz", func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusOK)
	})
	router.Mount("/user", userRouter)

	return &http.Server{
		Handler: router,
		Addr:    deps.Config.HTTPAddress,
	}
}
