package main

import (
	"flag"
	"os"
	"syscall"

	"github.com/mercadito-app/mercadito-api/internal/app"
	"github.com/mercadito-app/mercadito-api/internal/config"
	"github.com/mercadito-app/mercadito-api/internal/logger"
	"github.com/mercadito-app/mercadito-api/internal/models"
)

func main() {
	// Cargar configuración
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	// Inicializar base de datos
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("error al inicializar la base de datos: %v", err)
	}

	// Migración automática de tablas
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("error al migrar la base de datos: %v", err)
	}

	// Parámetros de línea de comandos
	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "modo de arranque: all (por defecto), api, worker")
	flag.Parse()

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("error al ejecutar el servicio: %v", err)
	}
}
