package service

import (
	"github.com/benson/poolbuilder/internal/catalog"
	"github.com/benson/poolbuilder/internal/config"
	"github.com/benson/poolbuilder/internal/repository"
)

type Services struct {
	Submissions *SubmissionService
	Pool        *PoolService
	Admin       *AdminService
}

func NewServices(store repository.KVStore, provider catalog.Provider, notifier Notifier, cfg *config.Config) *Services {
	return &Services{
		Submissions: NewSubmissionService(store, notifier),
		Pool:        NewPoolService(provider, store, cfg.BoosterCount),
		Admin:       NewAdminService(cfg),
	}
}
