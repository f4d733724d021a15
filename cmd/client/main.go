package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/deckstride/deckstride/client/game"
	"github.com/deckstride/deckstride/client/scenes"
	"github.com/deckstride/deckstride/pkg/log"
	"github.com/deckstride/deckstride/pkg/repositories"
	"github.com/hajimehoshi/ebiten/v2"
)

type config struct {
	LogLevel    string `env:"DECKSTRIDE_LOG_LEVEL" envDefault:"info"`
	Debug       bool   `env:"DECKSTRIDE_DEBUG" envDefault:"false"`
	RecordsPath string `env:"DECKSTRIDE_RECORDS_PATH"`
	Guides      bool   `env:"DECKSTRIDE_GUIDES" envDefault:"true"`
}

func main() {
	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		panic(fmt.Sprintf("Failed to parse environment: %v", err))
	}

	logLevel := flag.String("log-level", cfg.LogLevel, "Log level")
	debug := flag.Bool("debug", cfg.Debug, "Debug mode")
	recordsPath := flag.String("records-path", cfg.RecordsPath, "Path to the clear records database (empty for in-memory)")
	guides := flag.Bool("guides", cfg.Guides, "Enable guide highlights")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}
	log.SetLevel(parsedLogLevel)
	log.Info("Log level set to %s", parsedLogLevel)

	ctx := context.Background()
	var records repositories.Repository
	if *recordsPath != "" {
		records, err = repositories.NewSQLiteRepository(ctx, *recordsPath)
		if err != nil {
			panic(fmt.Sprintf("Failed to open records database: %v", err))
		}
		log.Info("Using sqlite records at %s", *recordsPath)
	} else {
		records = repositories.NewInMemoryRepository()
		log.Info("Using in-memory records")
	}
	defer func() {
		if err := records.Close(ctx); err != nil {
			log.Error("Failed to close records: %v", err)
		}
	}()

	g, err := game.NewGame(game.NewGameOptions{
		Debug:        *debug,
		GuideEnabled: *guides,
		Records:      records,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(scenes.DefaultScreenWidth, scenes.DefaultScreenHeight)
	ebiten.SetWindowTitle("Deckstride")
	if err := ebiten.RunGame(g); err != nil {
		log.Error("Failed to run game: %v", err)
		os.Exit(1)
	}
}
