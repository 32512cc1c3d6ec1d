package server

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/stockroom/stockroom/app/routes"
	"github.com/stockroom/stockroom/config"
	"github.com/stockroom/stockroom/pkg/database"
	"github.com/stockroom/stockroom/pkg/logger"
	"github.com/stockroom/stockroom/pkg/metrics"
	"github.com/stockroom/stockroom/pkg/middleware"
	"github.com/stockroom/stockroom/pkg/reqid"
	"github.com/stockroom/stockroom/pkg/router"
	"github.com/stockroom/stockroom/pkg/storage"
)

// Boot loads configuration, opens the database and storage disks, and
// returns the database handle the rest of the app is built around.
func Boot() (*gorm.DB, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}
	logger.Init()

	db, err := database.Connect()
	if err != nil {
		return nil, err
	}
	storage.Connect()
	return db, nil
}

// BuildRouter assembles the middleware stack and registers all routes.
func BuildRouter(db *gorm.DB) *router.Router {
	r := router.New()
	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
	)
	routes.RegisterAPI(r, db)
	return r
}

// Start boots the application and serves HTTP until the listener fails.
func Start() error {
	db, err := Boot()
	if err != nil {
		return err
	}

	r := BuildRouter(db)

	addr := ":" + config.AppPort()
	logger.Info("stockroom listening", "addr", addr, "env", config.AppEnv())
	return http.ListenAndServe(addr, r.Handler())
}
