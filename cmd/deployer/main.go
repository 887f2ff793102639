package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/simplecontainer/deployer/pkg/configuration"
	"github.com/simplecontainer/deployer/pkg/logger"
	"github.com/simplecontainer/deployer/pkg/static"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

func main() {
	root := &cobra.Command{
		Use:           "deployer",
		Short:         "Deploy containers to the configured container engines",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := viper.GetString("log")
			if level == "" {
				level = static.DEFAULT_LOG_LEVEL
			}

			log, err := logger.NewLogger(level, []string{"stderr"}, []string{"stderr"})

			if err != nil {
				return err
			}

			logger.Log = log

			// Tables go to stdout, logs to stderr.
			color.NoColor = color.NoColor || !term.IsTerminal(int(os.Stdout.Fd()))

			return nil
		},
	}

	root.PersistentFlags().String("config", "", fmt.Sprintf("Configuration document (default $%s, %s or %s)", static.ENV_CONFIG_FILE, static.DEFAULT_CONFIG_YAML, static.DEFAULT_CONFIG_PROPS))
	root.PersistentFlags().String("log", "", fmt.Sprintf("Log level (default $%s or %s)", static.ENV_LOG_LEVEL, static.DEFAULT_LOG_LEVEL))
	root.PersistentFlags().String("api", "", "Identifier of the configured api to use, random when empty")

	if err := viper.BindPFlags(root.PersistentFlags()); err != nil {
		panic(err)
	}

	if err := viper.BindEnv("log", static.ENV_LOG_LEVEL); err != nil {
		panic(err)
	}

	root.AddCommand(NewDeployCommand(), NewConfigCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	_ = logger.Log.Sync()
}

func loadConfiguration() (*configuration.Configuration, error) {
	path := viper.GetString("config")

	if path == "" {
		var err error
		path, err = configuration.Locate()

		if err != nil {
			return nil, err
		}
	}

	return configuration.Load(path)
}

func selectEndpoint(config *configuration.Configuration) (configuration.Endpoint, error) {
	id := viper.GetString("api")

	if id == "" {
		return config.Pick()
	}

	endpoint, ok := config.Find(id)

	if !ok {
		return nil, fmt.Errorf("api %q is not configured", id)
	}

	return endpoint, nil
}
