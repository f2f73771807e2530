package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/lemmakit/clu/internal/clu/config"
	"github.com/lemmakit/clu/internal/clu/graph"
	"github.com/lemmakit/clu/internal/clu/logger"
	"github.com/lemmakit/clu/internal/clu/store"
	"github.com/lemmakit/clu/internal/server/api"
	"github.com/lemmakit/clu/pkg/clu"
)

func main() {
	addr := flag.String("addr", "", "HTTP service address")
	dataFile := flag.String("file", "", "Data file path")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Println(clu.BuildInfo())
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if *addr == "" {
		*addr = cfg.ListenAddr
	}
	if *dataFile == "" {
		*dataFile = cfg.DataFile
	}

	zlog, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer zlog.Sync()
	sugar := zlog.Sugar()

	// Route library diagnostics through the same logger.
	logger.Set(logger.NewZap(sugar))

	s := store.Open(*dataFile)
	g := graph.New(s)
	server := api.New(s, g, sugar, clu.Version())

	sugar.Infow("starting server", "addr", *addr, "file", *dataFile, "lemmas", s.Len())
	if err := http.ListenAndServe(*addr, server.Routes()); err != nil {
		sugar.Fatalw("server stopped", "error", err)
	}
}
