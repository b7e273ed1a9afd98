package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/paydeck/transactions-console/internal/bootstrap"
	"github.com/paydeck/transactions-console/internal/config"
	"github.com/paydeck/transactions-console/internal/handlers"
	"github.com/paydeck/transactions-console/internal/notify"
	"github.com/paydeck/transactions-console/internal/response"
	"github.com/paydeck/transactions-console/internal/router"
	"github.com/paydeck/transactions-console/internal/services"
)

// set at build time via ldflags
var version = "dev"

var settingsFile string

var rootCmd = &cobra.Command{
	Use:   "console",
	Short: "Transaction console for the school payment gateway",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the console API server",
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the console version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("console %s (%s)\n", version, runtime.Version())
	},
}

func init() {
	serveCmd.Flags().StringVar(&settingsFile, "settings", "console.yaml", "path to the console tuning file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func serve() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	err = cfg.LoadSettings(settingsFile)
	exitOnError("settings load failed", err, bs.Log)

	// services
	notifier := notify.NewLogNotifier()
	dserv := services.NewDashboardService(bs.Gateway, notifier, bs.Copies, cfg.PageSize, cfg.CounterDuration, time.Now)
	sserv := services.NewSchoolService(bs.Gateway, notifier, bs.Copies, cfg.PageSize)
	lserv := services.NewLookupService(bs.Gateway, notifier, bs.Copies)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.DashboardSvc = dserv
	deps.SchoolSvc = sserv
	deps.LookupSvc = lserv

	// router
	r := router.NewRouter(deps)
	bs.Log.Info("listening", "addr", cfg.Addr)
	err = http.ListenAndServe(cfg.Addr, r)
	exitOnError("server start failed", err, bs.Log)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
