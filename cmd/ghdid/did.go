package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sufield/ghdid/internal/domain"
)

// DIDCmd constructs a did:github DID from a GitHub login.
func DIDCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "did <github-login>",
		Short: "Construct a did:github DID from a GitHub login",
		Example: `  ghdid did jirayuth289
  Output: did:github:jirayuth289

  # Resolve straight away
  ghdid resolve "$(ghdid did octocat)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			login := args[0]
			if v.GetBool("strict") && !domain.IsGitHubLogin(login) {
				return errors.Wrapf(domain.ErrInvalidIdentifier, "%q is not a GitHub login", login)
			}
			fmt.Fprintln(cmd.OutOrStdout(), domain.NewDIDFromComponents(domain.MethodGitHub, login).String())
			return nil
		},
	}

	return cmd
}
