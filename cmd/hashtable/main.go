package main

import (
	"flag"
	"log"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/mikirosario/hashtable/internal/dump"
	"github.com/mikirosario/hashtable/internal/logging"
	"github.com/mikirosario/hashtable/internal/store"
)

type pair struct {
	key   string
	value string
}

var communities = []pair{
	{"madrid", "madrid"},
	{"cataluña", "barcelona"},
	{"valencia", "valencia"},
	{"euskadi", "vitoria-gasteiz"},
	{"navarra", "pamplona"},
	{"aragón", "zaragoza"},
	{"la rioja", "logroño"},
	{"asturias", "oviedo"},
	{"cantabria", "santander"},
	{"galicia", "santiago de compostela"},
	{"castilla y león", "burgos"},
	{"castilla la mancha", "toledo"},
	{"andalucía", "sevilla"},
	{"extremadura", "mérida"},
	{"murcia", "murcia"},
	{"canarias", "las palmas"},
	{"baleares", "palma"},
	{"ceuta", "ceuta"},
	{"melilla", "melilla"},
}

func main() {
	capacity := flag.Int("capacity", store.DefaultCapacity, "Number of buckets in the table")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	logFile := flag.String("log-file", "", "Optional log file with rotation (empty = stderr only)")
	flag.Parse()

	logger, err := logging.New(*logLevel, *logFile)
	if err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}
	defer logger.Sync()

	table := store.NewHashTable(*capacity)
	logger.Info("hash table initialized", zap.Int("capacity", table.Capacity()))

	var populateErr error
	for _, p := range communities {
		if _, err := table.Set(p.key, p.value); err != nil {
			logger.Error("failed to store pair", zap.String("key", p.key), zap.Error(err))
			populateErr = multierr.Append(populateErr, err)
		}
	}
	if populateErr != nil {
		logger.Fatal("populate failed",
			zap.Int("failures", len(multierr.Errors(populateErr))),
			zap.Error(populateErr))
	}

	logger.Info("table populated", zap.Int("entries", table.Len()))

	if err := dump.Table(os.Stdout, table); err != nil {
		logger.Fatal("failed to print table", zap.Error(err))
	}
}
