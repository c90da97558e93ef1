package main

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/szoz/northwind-api/internal/api"
	"github.com/szoz/northwind-api/internal/config"
	"github.com/szoz/northwind-api/internal/repository"
	"github.com/szoz/northwind-api/internal/service"
)

var (
	dbPath string
	addr   string
)

var rootCmd = &cobra.Command{
	Use:   "northwind-api",
	Short: "Read-mostly HTTP API over the Northwind product catalog",
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVar(&dbPath, "db", "", "path to the Northwind sqlite file (overrides NORTHWIND_DB)")
	rootCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
}

func connectDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database %s: %w", path, err)
	}
	return db, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if dbPath != "" {
		cfg.DatabasePath = dbPath
	}
	if addr != "" {
		cfg.Addr = addr
	}

	// One shared handle for the process lifetime, injected into the layers
	// below instead of living as a package global.
	db, err := connectDB(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	productService := service.NewProductService(repository.NewProductRepository(db))
	categoryService := service.NewCategoryService(repository.NewCategoryRepository(db))
	customerService := service.NewCustomerService(repository.NewCustomerRepository(db))
	employeeService := service.NewEmployeeService(repository.NewEmployeeRepository(db))
	supplierService := service.NewSupplierService(repository.NewSupplierRepository(db))

	e := echo.New()

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(20),
				Burst:     50,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(context echo.Context) (string, error) {
			return context.Request().RemoteAddr, nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	api.Register(e,
		api.NewProductHandler(productService),
		api.NewCategoryHandler(categoryService),
		api.NewCustomerHandler(customerService),
		api.NewEmployeeHandler(employeeService),
		api.NewSupplierHandler(supplierService),
	)

	return e.Start(cfg.Addr)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
