package cmd

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/c9s/streamta/pkg/envvar"
)

var RootCmd = &cobra.Command{
	Use:   "streamta",
	Short: "streaming technical analysis indicators",
	Long:  "feed OHLCV bars through incremental indicators, one bar at a time",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Once the flags are defined, we can bind config keys with flags.
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}

		setupLogger()
		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	RootCmd.PersistentFlags().String("config", "", "config file")
}

// setupLogger logs json in production, STREAMTA_DEBUG=1 works as --debug.
func setupLogger() {
	logger := log.StandardLogger()
	logger.SetOutput(os.Stderr)

	if envvar.IsProduction() {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&prefixed.TextFormatter{FullTimestamp: true})
	}

	debug := viper.GetBool("debug")
	if !debug {
		envvar.SetBool(envvar.Key("DEBUG"), &debug)
	}

	if debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
}

// loadDotenv loads the dotenv files of the current STREAMTA_ENV, existing variables win.
func loadDotenv() {
	for _, dotenvFile := range envvar.DotenvFiles() {
		if _, err := os.Stat(dotenvFile); err != nil {
			continue
		}

		if err := godotenv.Load(dotenvFile); err != nil {
			log.WithError(err).Errorf("error loading dotenv file %s", dotenvFile)
		}
	}
}

func Execute() {
	loadDotenv()

	viper.SetEnvPrefix("streamta")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()

	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Errorf("failed to bind persistent flags. please check the flag settings.")
	}

	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
