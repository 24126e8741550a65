package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sufield/ghdid/internal/fixtures"
	"github.com/sufield/ghdid/internal/schema"
)

// ValidateCmd validates a JSON document against a wallet key schema.
func ValidateCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a DID wallet key against a JSON schema",
		Long: `Validate a JSON document against one of the registered schemas.

Use "-" to read from stdin. With --fixtures the bundled test wallet keys are
validated instead of a file.

SCHEMAS:
    assymetricWalletKey   asymmetric key pair (PGP armor, base58, ...)
    mnemonicWalletKey     BIP39 mnemonic
    didWalletKey          DID document reference

A full schema id may be given instead of a short name.`,
		Example: `  ghdid validate key.json --schema assymetricWalletKey
  cat key.json | ghdid validate - --schema mnemonicWalletKey
  ghdid validate --fixtures

  # Use in CI/CD pipelines
  if ghdid validate wallet/key.json --schema didWalletKey; then
      echo "Wallet key is valid"
  fi`,
		Args: cobra.MaximumNArgs(1),
		PreRun: func(cmd *cobra.Command, args []string) {
			_ = v.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			validator, err := schema.NewValidator()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			schemaName := v.GetString("schema")

			if v.GetBool("fixtures") {
				return validateFixtures(out, validator, schemaName)
			}

			if len(args) != 1 {
				return errors.New("a file path (or -) is required unless --fixtures is set")
			}

			data, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			res, err := validator.ValidateJSON(data, schemaName)
			if err != nil {
				return errors.Wrapf(err, "failed to validate %s", args[0])
			}
			return report(out, args[0], schemaName, res)
		},
	}

	cmd.Flags().String("schema", schema.AssymetricWalletKey, "schema short name or id")
	cmd.Flags().Bool("fixtures", false, "validate the bundled test wallet keys")

	return cmd
}

func validateFixtures(out io.Writer, validator *schema.Validator, schemaName string) error {
	keys, err := fixtures.WalletKeys()
	if err != nil {
		return err
	}

	var failed int
	for i, key := range keys {
		res, err := validator.Validate(key, schemaName)
		if err != nil {
			return errors.Wrapf(err, "failed to validate fixture %d", i)
		}
		name := fmt.Sprintf("fixture[%d] (kid %v)", i, key["kid"])
		if err := report(out, name, schemaName, res); err != nil {
			failed++
		}
	}

	if failed > 0 {
		return errors.Errorf("%d of %d fixtures failed validation", failed, len(keys))
	}
	return nil
}

func report(out io.Writer, name, schemaName string, res *schema.Result) error {
	if res.Valid {
		fmt.Fprintf(out, "✓ %s is a valid %s\n", name, schemaName)
		return nil
	}

	fmt.Fprintf(out, "✗ %s is not a valid %s\n", name, schemaName)
	for _, e := range res.Errors {
		fmt.Fprintf(out, "  - %s\n", e)
	}
	return errors.Errorf("%s failed validation", name)
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		return data, errors.Wrap(err, "failed to read stdin")
	}
	data, err := os.ReadFile(filepath.Clean(path)) // #nosec G304 - path comes from the CLI user
	if err != nil {
		return nil, errors.Wrap(err, "failed to read input file")
	}
	return data, nil
}
