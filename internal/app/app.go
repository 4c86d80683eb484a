package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	config "github.com/takara-tech/product-api/internal/cfg"
	v1Http "github.com/takara-tech/product-api/internal/delivery/v1/http"
	"github.com/takara-tech/product-api/internal/repository/pgdb"
	"github.com/takara-tech/product-api/internal/repository/pgdb/converter"
	"github.com/takara-tech/product-api/internal/usecase"
	"github.com/takara-tech/product-api/pkg/closer"
	"github.com/takara-tech/product-api/pkg/e"
	"github.com/takara-tech/product-api/pkg/logger"
	"github.com/takara-tech/product-api/pkg/postgres"
)

const shutdownTimeout = 10 * time.Second

// App связывает конфигурацию, хранилище, сценарии и HTTP-сервер.
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	db      *postgres.PgDatabase
	httpSrv *v1Http.Server
	closer  *closer.Closer
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap("app.NewApp", err)
	}

	productRepo := pgdb.NewProductRepo(db.Pool, converter.NewProductConverter())

	ucs := v1Http.UseCases{
		Create: usecase.NewCreateProductUC(productRepo),
		Get:    usecase.NewGetProductUC(productRepo),
		Update: usecase.NewUpdateProductUC(productRepo),
		Delete: usecase.NewDeleteProductUC(productRepo),
		Search: usecase.NewSearchProductsUC(productRepo),
	}

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(ucs, v1Http.NewHealthHandler(cfg.App.ServiceName, cfg.App.Version))

	httpSrv := v1Http.NewServer(r, cfg.Http)

	cl := closer.NewCloser(0)
	cl.Add(func(_ context.Context) error {
		db.Close()
		return nil
	})
	cl.Add(httpSrv.Stop)

	return &App{
		cfg:     cfg,
		logger:  log,
		db:      db,
		httpSrv: httpSrv,
		closer:  cl,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до сигнала завершения или фатальной ошибки.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("shutdown finished with errors: %v", err)
	} else {
		a.logger.Infof("Application shutdown complete")
	}

	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap("app.initPGDB", err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap("app.initPGDB", err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap("app.initPGDB", err)
	}

	return db, nil
}
