package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-data-sync/infrastructure/integrator/petpooja"
	"github.com/vfg2006/sales-data-sync/infrastructure/integrator/petpooja/petpoojaclient"
	"github.com/vfg2006/sales-data-sync/infrastructure/repository"
	"github.com/vfg2006/sales-data-sync/internal/api"
	"github.com/vfg2006/sales-data-sync/internal/config"
	"github.com/vfg2006/sales-data-sync/internal/scheduler"
	"github.com/vfg2006/sales-data-sync/internal/usecases/authenticating"
	"github.com/vfg2006/sales-data-sync/internal/usecases/syncing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	salesRepo := repository.NewSalesDataRepository(cfg.Database)

	petpoojaClient := petpoojaclient.NewClient(cfg)
	petpoojaIntegrator := petpooja.New(cfg, petpoojaClient)

	syncService := syncing.NewService(petpoojaIntegrator, salesRepo)
	authenticator := authenticating.NewService(cfg)

	salesDataSyncService := scheduler.NewSalesDataSyncService(syncService, salesRepo, cfg)

	if err := salesDataSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de vendas")
	} else {
		logrus.Info("Agendador de sincronização de vendas iniciado com sucesso")
	}

	server, err := api.New(cfg, authenticator, salesDataSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
