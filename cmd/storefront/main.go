package main

import (
	"context"
	"database/sql"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	_ "github.com/jackc/pgx/v5/stdlib"

	"GlowBeauty/internal/assistant"
	"GlowBeauty/internal/auth"
	"GlowBeauty/internal/cart"
	"GlowBeauty/internal/catalog"
	"GlowBeauty/internal/review"
	"GlowBeauty/internal/storage"
	"GlowBeauty/internal/storefront"
	"GlowBeauty/pkg/kit"
)

func main() {
	service := "storefront"
	log := kit.NewLogger(service, os.Getenv("LOG_MODE") == "dev")
	defer func() { _ = log.Sync() }()

	port := getenv("PORT", "8080")
	jwtSecret := getenv("JWT_SECRET", "dev-secret")
	adminEmail := getenv("ADMIN_EMAIL", "admin@glowbeauty.com")
	adminPassword := getenv("ADMIN_PASSWORD", "admin")

	ctx := context.Background()
	store := openStorage(ctx, log)

	jwt := auth.NewTokenMaker(jwtSecret)
	gate, err := auth.NewGate(adminEmail, adminPassword, jwt)
	if err != nil {
		log.Fatal("init login gate failed", zap.Error(err))
	}

	deps := storefront.Deps{
		Log:     log,
		Storage: store,
		Catalog: catalog.NewStore(ctx, store, log),
		Reviews: review.NewStore(ctx, store, log),
		Carts:   cart.NewStore(ctx, store, log),
		Gate:    gate,
		JWT:     jwt,
		AI:      assistant.NewClient(os.Getenv("GEMINI_BASE_URL"), os.Getenv("GEMINI_API_KEY")),
	}

	h := storefront.NewHandler(deps, storefront.HTTPDeps{
		Service:        service,
		Registry:       prometheus.NewRegistry(),
		MetricsEnabled: true,
		MetricsToken:   os.Getenv("METRICS_TOKEN"),
	})

	if err := kit.RunHTTPServer(":"+port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

// openStorage picks the persistence port: Postgres when STORAGE_DSN is set,
// a data directory when DATA_DIR is set, otherwise in-memory (dev only;
// nothing survives a restart).
func openStorage(ctx context.Context, log *zap.Logger) storage.Port {
	if dsn := os.Getenv("STORAGE_DSN"); dsn != "" {
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			log.Fatal("open postgres failed", zap.Error(err))
		}

		pg := storage.NewPostgresStore(db)
		if err := pg.Init(ctx); err != nil {
			log.Fatal("init postgres storage failed", zap.Error(err))
		}
		log.Info("storage: postgres")
		return pg
	}

	if dir := os.Getenv("DATA_DIR"); dir != "" {
		fs, err := storage.NewFileStore(dir)
		if err != nil {
			log.Fatal("open file storage failed", zap.Error(err))
		}
		log.Info("storage: file", zap.String("dir", dir))
		return fs
	}

	log.Warn("storage: in-memory, data will not survive restarts")
	return storage.NewMemStore()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
