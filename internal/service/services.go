package service

import (
	"github.com/MKhiriev/go-fleet-logbook/internal/config"
	"github.com/MKhiriev/go-fleet-logbook/internal/form"
	"github.com/MKhiriev/go-fleet-logbook/internal/identity"
	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/internal/store"
	"github.com/MKhiriev/go-fleet-logbook/internal/utils"
	"github.com/MKhiriev/go-fleet-logbook/models"
)

type Services struct {
	AuthService      AuthService
	UserService      UserService
	SectorService    SectorService
	LogService       LogService
	StatsService     StatsService
	VehicleService   VehicleService
	ReferenceService ReferenceService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, provider identity.Provider, ids utils.IDGenerator, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	resolver := form.NewResolver(form.DefaultPlaceholder)
	sectors := NewSectorValidationService().Wrap(
		NewSectorService(storages.SectorRepository, resolver, ids, logger),
	)

	return &Services{
		AuthService:      NewAuthService(provider, storages.UserRepository, storages.SessionStore, ids, cfg.App, logger),
		UserService:      NewUserService(storages.UserRepository, ids, logger),
		SectorService:    sectors,
		LogService:       NewLogService(storages.LogRepository, storages.SectorRepository, resolver, ids, logger),
		StatsService:     NewStatsService(storages.StatsRepository, storages.UserRepository, logger),
		VehicleService:   NewVehicleService(storages.VehicleRepository, ids, logger),
		ReferenceService: NewReferenceService(storages.ReferenceRepository, ids, logger),
		AppInfoService:   appInfo,
	}, nil
}
