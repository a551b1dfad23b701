package initialize

import (
	"fmt"
	"net/http"

	"beacon-guard/backend/app/catalog"
	"beacon-guard/backend/app/controllers"
	"beacon-guard/backend/app/db"
	jwtutil "beacon-guard/backend/app/jwt"
	"beacon-guard/backend/app/middleware"
	"beacon-guard/backend/app/models"
	"beacon-guard/backend/app/presence"
	"beacon-guard/backend/app/repo"
	"beacon-guard/backend/app/services"
	"beacon-guard/backend/config"
	"beacon-guard/backend/global"
	"beacon-guard/backend/router"

	webpush "github.com/SherClockHolmes/webpush-go"
	"gorm.io/gorm"
)

type App struct {
	Cfg     *config.Config
	DB      *gorm.DB
	Router  http.Handler
	Tracker *presence.Tracker
	Catalog *catalog.Catalog
	Agents  *services.AgentService
	Modules *services.ModuleService
	Dom     *services.DomService
	Push    *services.PushService
	Users   *services.UserService
}

func Build(configPath string) (*App, error) {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	// VAPID keys are required for push; generate an ephemeral pair when
	// none are configured so the rest of the panel still works.
	if cfg.Push.VAPIDPublicKey == "" || cfg.Push.VAPIDPrivateKey == "" {
		priv, pub, err := webpush.GenerateVAPIDKeys()
		if err != nil {
			return nil, fmt.Errorf("generate vapid keys: %w", err)
		}
		cfg.Push.VAPIDPrivateKey = priv
		cfg.Push.VAPIDPublicKey = pub
		global.Logger.Warn().Msg("no VAPID keys configured, generated an ephemeral pair; subscriptions will break on restart")
	}

	// Connect DB
	gdb, err := db.Connect(db.Config{
		Driver:   cfg.DB.Driver,
		Path:     cfg.DB.Path,
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Pass,
		DBName:   cfg.DB.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	// Migrate
	if err := gdb.AutoMigrate(
		&models.User{},
		&models.Agent{},
		&models.Registration{},
		&models.Module{},
		&models.DomCommand{},
		&models.DashboardRegistration{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Module catalog
	cat, err := catalog.New(cfg.ModulesDir)
	if err != nil {
		return nil, fmt.Errorf("module catalog: %w", err)
	}
	if err := cat.Watch(); err != nil {
		global.Logger.Warn().Err(err).Msg("module catalog watcher unavailable, names fixed until restart")
	}

	// Repositories
	agentRepo := repo.NewAgentRepository(gdb)
	regRepo := repo.NewRegistrationRepository(gdb)
	moduleRepo := repo.NewModuleRepository(gdb)
	domRepo := repo.NewDomCommandRepository(gdb)
	dashRepo := repo.NewDashboardRegistrationRepository(gdb)
	userRepo := repo.NewUserRepository(gdb)

	// Services
	tracker := presence.NewTracker()
	agentSvc := services.NewAgentService(tracker, agentRepo, regRepo, moduleRepo, domRepo, cfg.AgentTimeout)
	moduleSvc := services.NewModuleService(cat, moduleRepo)
	domSvc := services.NewDomService(domRepo)
	pushSvc := services.NewPushService(regRepo, dashRepo, cfg.Push)
	userSvc := services.NewUserService(userRepo)
	if cfg.Admin.Password != "" {
		if err := userSvc.EnsureAdmin(cfg.Admin.Username, cfg.Admin.Password); err != nil {
			global.Logger.Warn().Err(err).Msg("admin bootstrap failed")
		}
	}

	// Controllers
	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpMin: cfg.JWT.ExpMin}
	authCtrl := controllers.NewAuthController(userSvc, signer)
	webCtrl := controllers.NewWebController(cfg.Push.VAPIDPublicKey)
	agentCtrl := controllers.NewAgentController(agentSvc)
	moduleCtrl := controllers.NewModuleController(moduleSvc, domSvc)
	pushCtrl := controllers.NewPushController(pushSvc)
	mw := &middleware.Auth{Signer: signer}

	// Router
	h := router.NewRouter(authCtrl, webCtrl, agentCtrl, moduleCtrl, pushCtrl, mw)
	h = middleware.CSP(h)
	h = middleware.Logging(h)

	return &App{
		Cfg:     cfg,
		DB:      gdb,
		Router:  h,
		Tracker: tracker,
		Catalog: cat,
		Agents:  agentSvc,
		Modules: moduleSvc,
		Dom:     domSvc,
		Push:    pushSvc,
		Users:   userSvc,
	}, nil
}
