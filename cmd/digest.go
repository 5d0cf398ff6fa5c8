package cmd

import (
	"github.com/spf13/cobra"
)

func newDigestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "digest",
		Short: "Send the daily digest once and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			digest, err := a.digestService()
			if err != nil {
				return err
			}
			return digest.SendDailyDigest(cmd.Context())
		},
	}
}
