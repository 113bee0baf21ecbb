package handler

import (
	"net/http"

	"campusbook/config"
	"campusbook/di"
	_ "campusbook/docs"
	"campusbook/shared/logger"
)

// Handler adapts the whole application behind a single serverless function.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeService()
	app.ServeHTTP(w, r)
}
