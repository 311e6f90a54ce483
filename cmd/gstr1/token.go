package main

import (
	"github.com/spf13/cobra"

	"gstr1/internal/domain"
	"gstr1/internal/service"
)

var tokenFlags struct {
	subject string
	role    string
	gstins  []string
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an API access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		issued, err := service.NewAuthService(cfg.JWT).
			IssueToken(tokenFlags.subject, domain.UserRole(tokenFlags.role), tokenFlags.gstins)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), issued)
	},
}

func init() {
	f := tokenCmd.Flags()
	f.StringVar(&tokenFlags.subject, "subject", "", "user ID or name the token is issued to (required)")
	f.StringVar(&tokenFlags.role, "role", string(domain.RoleAnalyst), "admin or analyst")
	f.StringSliceVar(&tokenFlags.gstins, "gstin", nil, "company GSTIN the token may report on; repeatable")
	_ = tokenCmd.MarkFlagRequired("subject")
}
