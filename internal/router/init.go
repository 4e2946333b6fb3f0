package router

import (
	"filebox/internal/application"
	"filebox/internal/container"
	"filebox/internal/infrastructure/postgres"
	"filebox/internal/infrastructure/session"
	handlers "filebox/internal/interface/http"
	"filebox/internal/router/modules"
)

// InitModules builds the services from the container handles and registers
// every feature module with the router registry. Called once at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	userRepo := postgres.NewUserRepository(container.GetPGPool())
	fileRepo := postgres.NewFileRepository(container.GetPGPool())
	sessions := session.NewRedisStore(container.GetRedis())

	authSvc := application.NewAuthService(userRepo, sessions, cfg.SessionTTL, logger)
	userSvc := application.NewUserService(userRepo, publisherOrNil(), cfg.UserQueue, logger)
	fileSvc := application.NewFileService(fileRepo, container.GetBlobStore(), publisherOrNil(), cfg.FileQueue, logger)

	r.Add(modules.NewApp(handlers.NewAppHandler(userRepo, fileRepo, sessions, container.GetPGPool(), logger)))
	r.Add(modules.NewAuth(handlers.NewAuthHandler(authSvc, logger), authSvc))
	r.Add(modules.NewUser(handlers.NewUserHandler(userSvc, logger), authSvc))
	r.Add(modules.NewFile(handlers.NewFileHandler(fileSvc, logger), authSvc))
}

// publisherOrNil keeps job dispatch best-effort: with no broker configured
// the services simply skip enqueueing.
func publisherOrNil() application.JobPublisher {
	if p := container.GetPublisher(); p != nil {
		return p
	}
	return nil
}
