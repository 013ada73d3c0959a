package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fridacisneros/panorama-sub001/pkg/server"
	recordsvc "github.com/fridacisneros/panorama-sub001/pkg/services/records"
	reportsvc "github.com/fridacisneros/panorama-sub001/pkg/services/reports"
	"github.com/fridacisneros/panorama-sub001/pkg/store/duckdb"
	recordstore "github.com/fridacisneros/panorama-sub001/pkg/store/duckdb/records"
	reportstore "github.com/fridacisneros/panorama-sub001/pkg/store/duckdb/reports"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "web",
		Short: "Start the Panorama Pesquero reporting API",
		RunE:  runServer,
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadConfig() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DB_PATH", "panorama.db")
	viper.SetDefault("APP_ENV", "development")
	viper.AutomaticEnv()
}

func runServer(cmd *cobra.Command, _ []string) error {
	loadConfig()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := duckdb.NewDB(duckdb.Settings{
		DbPath: viper.GetString("DB_PATH"),
	})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}
	defer db.Close()

	repStore, err := reportstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create report store: %w", err)
	}
	recStore, err := recordstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create record store: %w", err)
	}

	addr := net.JoinHostPort(viper.GetString("SERVER_HOST"), viper.GetString("SERVER_PORT"))

	api := server.NewWebAPI(logger, server.Config{
		Addr:   addr,
		AppEnv: viper.GetString("APP_ENV"),
		Dependencies: server.Dependencies{
			Dispatcher: reportsvc.NewDispatcher(repStore),
			Records:    recordsvc.NewService(recStore),
		},
	})

	return api.Start()
}
