package api

import (
	"github.com/gorilla/handlers"
)

func setupCorsOptions(origins []string) []handlers.CORSOption {
	methods := handlers.AllowedMethods([]string{"GET", "OPTIONS"})
	allowedOrigins := handlers.AllowedOrigins(origins)
	headers := handlers.AllowedHeaders([]string{"Authorization", "Content-Type", "Apikey", "X-Client-Info"})

	options := []handlers.CORSOption{methods, allowedOrigins, headers}
	return options
}
