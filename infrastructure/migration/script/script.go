package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/vfg2006/sales-data-sync/infrastructure/repository"
	"github.com/vfg2006/sales-data-sync/internal/config"
)

// Prepara a tabela sales_data antes da primeira carga, útil quando o usuário
// da aplicação no Postgres não tem permissão de DDL
func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")

	destination := pflag.String("destination", "", "arquivo SQLite ou nome do banco Postgres (padrão: DATABASE_NAME)")
	pflag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	target := *destination
	if target == "" {
		target = cfg.Database.Name
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := repository.EnsureSalesDataSchema(ctx, cfg.Database, target); err != nil {
		logrus.WithError(err).WithField("destination", target).Error("Falha na migração")
		os.Exit(1)
	}

	logrus.WithFields(logrus.Fields{
		"driver":      cfg.Database.Driver,
		"destination": target,
	}).Info("Migração concluída com sucesso")
}
