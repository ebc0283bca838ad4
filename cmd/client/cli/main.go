package main

import (
	"context"
	"log"
	"os"

	"github.com/dentinhoapp/dentinho/internal/buildinfo"
	"github.com/dentinhoapp/dentinho/internal/client/cli"
	"github.com/dentinhoapp/dentinho/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
