package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"text/tabwriter"

	"concept-visualizer/internal/app"
	"concept-visualizer/internal/config"
	"concept-visualizer/internal/logger"
	"concept-visualizer/internal/services"
	"concept-visualizer/internal/shutdown"

	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "concept-visualizer",
		Short: "Browse and launch PhET simulations",
		Long: `concept-visualizer shows a catalog of PhET simulations, opens the selected
one in your browser and checks your prediction against the expected answer.

Run without arguments to open the window.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI()
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(newListCmd(), newOpenCmd(), newCheckCmd())
	return root
}

// loadConfig applies the --log-level flag on top of file and environment.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func runGUI() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, closeLog, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	log.Info("main", "starting", map[string]interface{}{
		"version":    app.AppVersion,
		"go_version": runtime.Version(),
		"log_level":  cfg.LogLevel().String(),
	})

	application, err := app.NewApplication(cfg, log)
	if err != nil {
		log.Error("main", err, nil)
		return err
	}

	shutdownManager := shutdown.NewManager(log)
	shutdownManager.Register("application", application)
	shutdownManager.Listen()

	application.Run()

	shutdownManager.Shutdown()
	log.Info("main", "terminated", nil)
	return nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the simulation catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := cliServices(nil)
			if err != nil {
				return err
			}
			return printCatalog(cmd.OutOrStdout(), svcs)
		},
	}
}

func printCatalog(w io.Writer, svcs *app.Services) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tNAME\tURL")
	for _, sim := range svcs.Catalog.Simulations() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", sim.Category, sim.Name, sim.URL)
	}
	return tw.Flush()
}

// newOpener returns the browser opener used by the open command.
var newOpener = func() services.URLOpener {
	return services.NewCommandOpener()
}

func newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <name>",
		Short: "Open a simulation in the default browser",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := cliServices(newOpener())
			if err != nil {
				return err
			}
			name := strings.Join(args, " ")
			if err := svcs.Launcher.Launch(cmd.Context(), name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Opened %s\n", name)
			return nil
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <name> <prediction>",
		Short: "Check a prediction for a simulation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := cliServices(nil)
			if err != nil {
				return err
			}
			if _, err := svcs.CatalogSvc.Describe(args[0]); err != nil {
				return err
			}
			result := svcs.Assessor.Check(args[0], args[1])
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			if !result.OK {
				return fmt.Errorf("prediction %s", result.Outcome)
			}
			return nil
		},
	}
}

// cliServices builds the services with logging sent to stderr.
func cliServices(opener services.URLOpener) (*app.Services, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log := logger.NewFileLogger(cfg.LogLevel(), os.Stderr)
	return app.NewServices(cfg, opener, log)
}
