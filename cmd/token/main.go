package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/vfg2006/sales-data-sync/internal/config"
	"github.com/vfg2006/sales-data-sync/internal/domain"
	"github.com/vfg2006/sales-data-sync/internal/usecases/authenticating"
)

// Emite um token de operador assinado com AUTH_SECRET
func main() {
	name := pflag.String("name", "", "nome do operador")
	role := pflag.Int("role", domain.RoleSupervisor, "role do operador (1=admin, 2=supervisor)")
	pflag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	token, err := authenticating.NewService(cfg).IssueToken(*name, *role)
	if err != nil {
		logrus.WithError(err).Error("Erro ao emitir token")
		os.Exit(1)
	}

	fmt.Println(token)
}
