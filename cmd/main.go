package main

import (
	"github.com/duccv/go-profile-guard/config"
	"github.com/duccv/go-profile-guard/pkg/logger"
	"github.com/duccv/go-profile-guard/pkg/server"
	"go.uber.org/zap"
)

//	@title			PROFILE GUARD APIs
//	@version		1.0
//	@description	Sanitized profile and text APIs.
//	@contact.name	DucCV
//	@BasePath		/api

// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				JWT authorization header
func main() {
	env := config.GetEnv()

	zapLogger := logger.GetLogger(env.LoggerConfig)
	zap.ReplaceGlobals(zapLogger)
	defer logger.Sync()

	server.StartServer(env)
}
