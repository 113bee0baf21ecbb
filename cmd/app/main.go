package main

import (
	"campusbook/config"
	"campusbook/di"
	_ "campusbook/docs"
	"campusbook/shared/logger"
)

// @title CampusBook API
// @version 1.0
// @description Campus resource booking service with demand forecasting.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
