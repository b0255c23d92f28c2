package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/address-parsing/internal/web"
)

func createServeCmd(flags *globalFlags) *cobra.Command {
	var (
		host       string
		port       int
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the parse and search HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := loadEngine(cmd, flags)
			if err != nil {
				return err
			}

			webConfig := web.ConfigFromEnv()
			if configPath != "" {
				if webConfig, err = web.LoadConfig(configPath); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("host") {
				webConfig.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				webConfig.Server.Port = port
			}

			server, err := web.NewServer(webConfig, eng)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "listen host (WEB_HOST)")
	cmd.Flags().IntVar(&port, "port", 0, "listen port (WEB_PORT)")
	cmd.Flags().StringVar(&configPath, "config", "", "JSON server config file")
	return cmd
}
