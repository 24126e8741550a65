package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sufield/ghdid"
	"github.com/sufield/ghdid/internal/resolver"
)

// ResolveCmd prints the DID document URL for each argument.
func ResolveCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <did> [did...]",
		Short: "Print the DID document URL for did:github DIDs",
		Long: `Print the DID document URL for one or more did:github DIDs, one per line.

The first invalid DID stops processing with a non-zero exit code.`,
		Example: `  ghdid resolve did:github:jirayuth289
  Output: https://raw.githubusercontent.com/jirayuth289/ghdid/master/index.jsonld

  # Use in shell scripts
  DOC_URL=$(ghdid resolve did:github:octocat)`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			registry := resolver.NewDefaultRegistry(ghdid.ResolverConfig(cfg), resolver.WithLogger(logger))
			for _, did := range args {
				url, err := registry.DocumentURL(did)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), url)
			}
			return nil
		},
	}

	return cmd
}
