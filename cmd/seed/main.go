// seed crea el esquema de la base de datos del almacén y, con -sample-data,
// carga los datos de ejemplo (operarios, proveedores, bodegas y stock inicial).
//
// Uso: go run ./cmd/seed [-sample-data]
// La conexión se toma de la misma configuración que usa el servidor
// (DATABASE_URL o las variables DB_*).
package main

import (
	"context"
	"flag"
	"time"

	"github.com/jhoicas/Almacen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Almacen-api/pkg/config"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

func main() {
	sampleData := flag.Bool("sample-data", false, "cargar datos de ejemplo tras crear el esquema")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.CreateSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}
	log.Info().Str("db", cfg.DB.DBName).Msg("esquema creado")

	if *sampleData {
		if err := postgres.SeedSampleData(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("cargar datos de ejemplo")
		}
		log.Info().Msg("datos de ejemplo cargados")
	}
}
