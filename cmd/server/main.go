package main

import (
	"log"

	"github.com/joho/godotenv"

	"gsmt_backend/internal/app/router"
	analysishandler "gsmt_backend/internal/feature/analysis/transport/handler"
	analysisusecase "gsmt_backend/internal/feature/analysis/usecase"
	catalogadapters "gsmt_backend/internal/feature/catalog/adapters"
	cataloghandler "gsmt_backend/internal/feature/catalog/transport/handler"
	catalogusecase "gsmt_backend/internal/feature/catalog/usecase"
	"gsmt_backend/internal/platform/config"
	platformhandler "gsmt_backend/internal/platform/http/handler"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}
	cfg := config.Load()

	// Catalog: built-in tables, or a yaml override when configured
	catalog := catalogadapters.DefaultCatalog()
	if cfg.Catalog.Path != "" {
		loaded, err := catalogadapters.LoadCatalog(cfg.Catalog.Path)
		if err != nil {
			log.Fatalf("[ERROR] Failed to load catalog from %s: %v", cfg.Catalog.Path, err)
		}
		catalog = loaded
		log.Printf("[INFO] Loaded catalog override from %s", cfg.Catalog.Path)
	}

	// Usecase
	catalogUC := catalogusecase.NewCatalogUsecase(catalog)
	generator := analysisusecase.NewPathGenerator(catalogUC)
	analysisUC := analysisusecase.NewAnalysisUsecase(catalogUC, generator)

	// Handler
	healthH := platformhandler.NewHealthHandler(catalogUC.Count())
	symbolH := cataloghandler.NewSymbolHandler(catalogUC)
	analysisH := analysishandler.NewAnalysisHandler(analysisUC)

	r := router.NewRouter(healthH, symbolH, analysisH)

	log.Printf("[INFO] Loaded %d symbols", catalogUC.Count())
	log.Printf("[INFO] Listening on %s", cfg.Server.Addr())
	if err := r.Run(cfg.Server.Addr()); err != nil {
		log.Fatal(err)
	}
}
