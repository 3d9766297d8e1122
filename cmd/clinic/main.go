// Package main implements the entry point for the clinic registry, an
// interactive in-memory manager for patients, doctors, appointments and
// prescriptions.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/medrano/clinic-registry/internal/cli"
	"github.com/medrano/clinic-registry/internal/config"
	"github.com/medrano/clinic-registry/internal/platform/logger"
	"github.com/medrano/clinic-registry/internal/service"
	"github.com/medrano/clinic-registry/internal/store"
)

func main() {
	session, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := session.Run(context.Background()); err != nil {
		log.Fatalf("Session failed: %v", err)
	}
}

// initializeApp loads configuration, sets up logging and wires the
// in-memory stores, the clinic service and the menu session together.
func initializeApp() (*cli.CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	appLogger, err := logger.Setup(cfg.App)
	if err != nil {
		return nil, err
	}

	slog.Info("configuration loaded",
		"log_level", cfg.App.LogLevel,
		"log_format", cfg.App.LogFormat)

	svc := service.NewClinicService(
		store.NewMemoryPatientStore(),
		store.NewMemoryDoctorStore(),
		store.NewMemoryAppointmentStore(),
		store.NewMemoryHistoryStore(),
		appLogger,
	)

	return cli.New(svc, os.Stdin, os.Stdout), nil
}
