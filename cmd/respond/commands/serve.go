package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xy-planning-network/respond"
	"github.com/xy-planning-network/respond/cmd/respond/demo"
	"github.com/xy-planning-network/respond/ranger"
)

// NewServeCommand creates the command running the demo web server
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start a web server answering with every outcome",
		Long: `Start a web server answering with every outcome.

Configuration is read from the environment (and a .env file) first;
flags override it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := serveConfig(cmd)
			if err != nil {
				return err
			}

			rng, err := ranger.New(ranger.WithConfig(cfg), ranger.WithViewsFS(demo.Views))
			if err != nil {
				return fmt.Errorf("failed to configure server: %w", err)
			}

			demo.Demo{APIMode: cfg.APIMode}.Mount(rng)
			return rng.Guide()
		},
	}

	cmd.Flags().StringP("addr", "a", "", "address to listen on, e.g. localhost:3000")
	cmd.Flags().Bool("api-mode", false, "answer HTML requests for a view with XML")
	cmd.Flags().StringP("engine", "e", "", "engine routing requests (std or gin)")
	cmd.Flags().String("env", "", "environment the server runs in")
	cmd.Flags().Bool("maintenance", false, "answer every request with 503 Service Unavailable")
	return cmd
}

// serveConfig reads ranger.NewConfig and applies the flags set on cmd.
func serveConfig(cmd *cobra.Command) (ranger.Config, error) {
	cfg := ranger.NewConfig()
	flags := cmd.Flags()

	if flags.Changed("addr") {
		cfg.Server.Addr, _ = flags.GetString("addr")
	}

	if flags.Changed("api-mode") {
		cfg.APIMode, _ = flags.GetBool("api-mode")
	}

	if flags.Changed("engine") {
		engine, _ := flags.GetString("engine")
		switch engine {
		case ranger.EngineStd, ranger.EngineGin:
			cfg.Engine = engine
		default:
			return cfg, fmt.Errorf("%w: unknown engine %q", ranger.ErrBadConfig, engine)
		}
	}

	if flags.Changed("env") {
		env, _ := flags.GetString("env")
		cfg.Env = respond.Environment(strings.ToUpper(env))
	}

	if flags.Changed("maintenance") {
		cfg.Maint, _ = flags.GetBool("maintenance")
	}

	return cfg, nil
}
