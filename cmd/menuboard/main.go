package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/menuboard/menuboard/config"
	"github.com/menuboard/menuboard/internal/adminapi"
	"github.com/menuboard/menuboard/internal/app"
	"github.com/menuboard/menuboard/internal/publicapi"
	"github.com/menuboard/menuboard/internal/webserver"
)

var (
	cfile       = flag.String("c", "menuboard.yml", "config file path")
	showVersion = flag.Bool("v", false, "print version and exit")
	initDb      = flag.Bool("initdb", false, "drop and recreate all tables, then exit")
)

var buildVersion = "dev"

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println("menuboard", buildVersion)
		os.Exit(0)
	}

	cfg := config.LoadConfig(*cfile)
	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if *initDb {
		application.DropAll()
		application.InitDb()
		zap.L().Info("database initialized")
		return
	}

	webserver.Init(application)
	adminapi.Register()
	publicapi.Register()

	if err := webserver.Listen(); err != nil {
		zap.L().Fatal("web server stopped", zap.Error(err))
	}
}
