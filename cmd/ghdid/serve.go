package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sufield/ghdid"
	"github.com/sufield/ghdid/internal/httpapi"
)

// ServeCmd runs the HTTP resolver API.
func ServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve DID resolution and schema validation over HTTP",
		Example: `  ghdid serve --config ghdid.yaml
  ghdid serve --listen-addr 127.0.0.1:9090

  curl http://localhost:8080/1.0/identifiers/did:github:jirayuth289`,
		Args: cobra.NoArgs,
		PreRun: func(cmd *cobra.Command, args []string) {
			_ = v.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			if addr := v.GetString("listen-addr"); addr != "" {
				cfg.Server.ListenAddr = addr
			}

			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			handler, err := ghdid.NewHandler(cfg, logger)
			if err != nil {
				return err
			}
			return httpapi.Run(cmd.Context(), cfg, handler, logger)
		},
	}

	cmd.Flags().String("listen-addr", "", "address to listen on (overrides server.listen_addr)")

	return cmd
}
