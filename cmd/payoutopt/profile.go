package main

import (
	"fmt"

	"github.com/rgehrsitz/payoutopt/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func exportCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export [profile-file]",
		Short: "Write a profile as a versioned JSON envelope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := loadProfile(args[0])
			if err != nil {
				return err
			}
			if out != "" {
				if err := config.NewInputParser().SaveToFile(profile, out); err != nil {
					return err
				}
				a.logger.Info("profile exported", zap.String("file", out))
				return nil
			}
			data, err := config.Export(profile)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "Destination file (.json or .yaml); stdout when empty")
	return cmd
}

func importCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "import [envelope-file]",
		Short: "Read a JSON envelope, tolerating legacy values, and write it as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := loadProfile(args[0])
			if err != nil {
				return err
			}
			if out != "" {
				if err := config.NewInputParser().SaveToFile(profile, out); err != nil {
					return err
				}
				a.logger.Info("profile imported", zap.String("from", args[0]), zap.String("file", out))
				return nil
			}
			data, err := yaml.Marshal(profile)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "Destination file (.yaml or .json); stdout when empty")
	return cmd
}
