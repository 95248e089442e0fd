// Comando utilitario: genera el dataset sintético con la semilla configurada
// y lo vuelca como JSON por empresa (fixtures para el frontend del prototipo).
//
// Uso: go run ./cmd/seed [-out ./data/mock]
package main

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/jhoicas/collectfast-api/internal/infrastructure/mockdata"
	"github.com/jhoicas/collectfast-api/pkg/config"
	"github.com/jhoicas/collectfast-api/pkg/logger"
)

func main() {
	outDir := flag.String("out", "./data/mock", "directorio de salida de los fixtures")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("crear directorio de salida")
	}

	writeJSON(log, filepath.Join(*outDir, "users.json"), mockdata.Users())
	writeJSON(log, filepath.Join(*outDir, "companies.json"), mockdata.Companies())

	generator := mockdata.NewGenerator(cfg.Mock.Seed, time.Now())
	for companyID, dataset := range generator.All() {
		writeJSON(log, filepath.Join(*outDir, companyID+".json"), dataset)
	}

	log.Info().
		Uint64("seed", cfg.Mock.Seed).
		Str("out", *outDir).
		Msg("fixtures generados")
}

func writeJSON(log *logger.Logger, path string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("serializar fixture")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("escribir fixture")
	}
}
