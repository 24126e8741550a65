package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/sufield/ghdid"
	"github.com/sufield/ghdid/internal/config"
	"github.com/sufield/ghdid/internal/logging"
)

// VersionInfo holds build-time version information
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// RootCmd builds the ghdid command tree. Each call uses its own viper
// instance so commands can be built repeatedly in tests.
func RootCmd(info VersionInfo) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "ghdid",
		Short: "Resolve did:github identifiers and validate DID wallet keys",
		Long: `ghdid turns did:github DIDs into the URL of their DID document and
validates DID wallet keys against the built-in JSON schemas.

Resolution never fetches the document; it only builds the URL:

    did:github:<user> -> https://raw.githubusercontent.com/<user>/ghdid/master/index.jsonld`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = v.BindPFlags(cmd.Flags())
		},
	}

	cmd.PersistentFlags().String("config", "", "path to ghdid config file")
	cmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	cmd.PersistentFlags().Bool("strict", false, "reject identifiers that are not GitHub logins")
	_ = v.BindPFlags(cmd.PersistentFlags())

	v.SetEnvPrefix("GHDID")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd.AddCommand(ResolveCmd(v))
	cmd.AddCommand(DIDCmd(v))
	cmd.AddCommand(ValidateCmd(v))
	cmd.AddCommand(SchemasCmd())
	cmd.AddCommand(ServeCmd(v))
	cmd.AddCommand(VersionCmd(info))

	return cmd
}

// loadConfig loads the config named by --config (or GHDID_CONFIG) and applies
// the global flag overrides.
func loadConfig(v *viper.Viper) (config.FileConfig, error) {
	cfg, err := ghdid.LoadConfig(v.GetString("config"))
	if err != nil {
		return cfg, err
	}

	if v.GetBool("strict") {
		cfg.Resolver.StrictIdentifiers = true
	}
	if level := v.GetString("log-level"); level != "" {
		cfg.Log.Level = strings.ToLower(level)
		if err := config.Validate(cfg); err != nil {
			return cfg, errors.Wrap(err, "invalid --log-level")
		}
	}

	return cfg, nil
}

// newLogger builds the CLI logger. The console encoder writes to stderr so
// stdout stays clean for piping.
func newLogger(cfg config.FileConfig) (*zap.Logger, error) {
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	logging.Init(logger)
	return logger, nil
}
