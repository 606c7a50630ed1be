package router

import (
	app "github.com/oksasatya/picbay/internal/application"
	"github.com/oksasatya/picbay/internal/container"
	pginfra "github.com/oksasatya/picbay/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/picbay/internal/interface/http"
	"github.com/oksasatya/picbay/internal/router/modules"
)

func buildUserModule() *modules.UserModule {
	repo := pginfra.NewUserRepository(container.GetPGPool())
	service := app.NewUserService(
		repo,
		container.GetJWT(),
		container.GetRabbitPub(),
		container.GetLogger(),
		container.GetConfig(),
	)
	handler := handlers.NewUserHandler(service, container.GetLogger())
	return modules.NewUserModule(handler, container.GetJWT())
}

func buildPhotoModule() *modules.PhotoModule {
	repo := pginfra.NewPhotoRepository(container.GetPGPool())
	service := app.NewPhotoService(
		repo,
		container.GetRedis(),
		container.GetLogger(),
		container.GetConfig().PhotoCacheTTL,
	)
	handler := handlers.NewPhotoHandler(service, container.GetLogger())
	return modules.NewPhotoModule(handler)
}

// InitModules initializes all application modules and registers them with
// the router registry. Called once during startup.
func InitModules(r *Registry) {
	r.Add(buildUserModule())
	r.Add(buildPhotoModule())
}
