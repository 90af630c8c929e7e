// Comando engine: corre el motor de totales y conciliación de pagos sobre un
// comprobante en JSON (archivo o stdin) y emite el comprobante finalizado por
// stdout. Pensado para lotes de prueba y para validar montos fuera del POS.
//
//	engine comprobante.json
//	cat comprobante.json | engine -
package main

import (
	"context"
	"encoding/json"
	"io"
	"os"

	appbilling "github.com/jhoicas/facturacion-pro/internal/application/billing"
	"github.com/jhoicas/facturacion-pro/internal/application/dto"
	"github.com/jhoicas/facturacion-pro/internal/domain/payments"
	"github.com/jhoicas/facturacion-pro/internal/infrastructure/memory"
	"github.com/jhoicas/facturacion-pro/pkg/config"
	"github.com/jhoicas/facturacion-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("igv_rate", cfg.Billing.IGVRate.String()).
		Msg("iniciando motor de totales")

	input, err := readInput(os.Args)
	if err != nil {
		log.Fatal().Err(err).Msg("leer entrada")
	}

	var req dto.DocumentRequest
	if err := json.Unmarshal(input, &req); err != nil {
		log.Fatal().Err(err).Msg("parsear comprobante JSON")
	}

	repo := memory.NewDocumentRepository()
	catalog := payments.DefaultCatalog()
	uc := appbilling.NewDocumentUseCase(repo, catalog, appbilling.Config{
		TaxRate:             cfg.Billing.IGVRate,
		CreditDueWindowDays: cfg.Billing.CreditDueWindowDays,
		Currency:            cfg.Billing.Currency,
	}, log.Component("billing"))

	resp, err := uc.Process(context.Background(), req)
	if err != nil {
		log.Fatal().Err(err).Msg("procesar comprobante")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		log.Fatal().Err(err).Msg("emitir comprobante")
	}
}

// readInput lee el comprobante desde el archivo del primer argumento, o desde
// stdin si el argumento es "-" o no hay argumentos.
func readInput(args []string) ([]byte, error) {
	if len(args) < 2 || args[1] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[1])
}
