package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vfg2006/sales-data-sync/infrastructure/integrator/petpooja"
	"github.com/vfg2006/sales-data-sync/infrastructure/integrator/petpooja/petpoojaclient"
	"github.com/vfg2006/sales-data-sync/infrastructure/repository"
	"github.com/vfg2006/sales-data-sync/internal/config"
	"github.com/vfg2006/sales-data-sync/internal/domain"
	"github.com/vfg2006/sales-data-sync/internal/usecases/syncing"
	"github.com/vfg2006/sales-data-sync/pkg/utils"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executa uma única sincronização: 0 em sucesso, 1 em qualquer falha
func run(args []string) int {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	flags := pflag.NewFlagSet("sync", pflag.ContinueOnError)
	flags.String("from", "", "início do período (yyyy-MM-dd HH:mm:ss ou yyyy-MM-dd)")
	flags.String("to", "", "fim do período (yyyy-MM-dd HH:mm:ss ou yyyy-MM-dd)")
	flags.String("destination", "", "arquivo SQLite ou nome do banco Postgres de destino")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	// flags têm prioridade sobre as variáveis de ambiente
	bindings := map[string]string{
		"SALES_FROM_DATE": "from",
		"SALES_TO_DATE":   "to",
		"DATABASE_NAME":   "destination",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			logrus.WithError(err).Error("Erro ao registrar flag")
			return 1
		}
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar configuração")
		return 1
	}

	if level, err := logrus.ParseLevel(cfg.App.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	period, err := domain.ParseSalesPeriod(cfg.SalesRange.FromDate, cfg.SalesRange.ToDate)
	if err != nil {
		logrus.WithError(err).Error("Período de vendas inválido")
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client := petpoojaclient.NewClient(cfg)
	service := syncing.NewService(
		petpooja.New(cfg, client),
		repository.NewSalesDataRepository(cfg.Database),
	)

	result, err := service.Run(ctx, period, cfg.Database.Name)
	if result != nil {
		fmt.Println(utils.PrettyJson(result))
	}
	if err != nil {
		logrus.WithError(err).Error("Sincronização de vendas falhou")
		return 1
	}

	return 0
}
