package main

import (
	"fmt"
	"os"

	"github.com/simplecontainer/deployer/pkg/formaters"
	"github.com/spf13/cobra"
)

func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Validate the configuration and show the configured apis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfiguration()

			if err != nil {
				return err
			}

			output, _ := cmd.Flags().GetString("output")

			switch output {
			case "yaml":
				bytes, err := config.Marshal()

				if err != nil {
					return err
				}

				_, err = os.Stdout.Write(bytes)
				return err
			case "table":
				formaters.Endpoints(os.Stdout, config.Endpoints)

				if len(config.Overrides) > 0 {
					fmt.Println()
					formaters.Overrides(os.Stdout, config.Registry, config.Overrides)
				}

				return nil
			default:
				return fmt.Errorf("unknown output %q, expected table or yaml", output)
			}
		},
	}

	cmd.Flags().StringP("output", "o", "table", "Output format: table or yaml")

	return cmd
}
