package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/talkincode/grocerstore/config"
	"github.com/talkincode/grocerstore/internal/app"
	"github.com/talkincode/grocerstore/internal/console"
)

var (
	configFile = flag.String("c", "", "config file path (yaml)")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	application := app.NewApplication(cfg)
	if err := application.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init error: %v\n", err)
		os.Exit(1)
	}
	defer application.Release()

	console.New(application, os.Stdin, os.Stdout).Run()
}
