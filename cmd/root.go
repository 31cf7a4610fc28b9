package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"zlayer/internal/config"
	"zlayer/internal/layers"
	"zlayer/internal/log"
	"zlayer/internal/presentation"
)

var (
	version    = "dev"
	cfgFile    string
	debugMode  bool
	jsonOutput bool
	cfg        config.Config

	// registry lives for the whole process run; custom layers allocated
	// during it vanish at exit.
	registry = layers.New()

	logCleanup func()
)

var rootCmd = &cobra.Command{
	Use:     "zlayer <layer> [offset]",
	Short:   "Consistent z-index values for named semantic layers",
	Version: version,
	Args:    cobra.MaximumNArgs(2),
	RunE:    runResolve,
}

func init() {
	cobra.OnInitialize(initConfig)

	// The help text shows the values the registry actually resolves.
	example := layers.New()
	rootCmd.Long = fmt.Sprintf(`Assigns consistent numeric stacking-order values to named semantic layers
and scans stylesheet text for suspiciously large literal z-index values.

Known layer names resolve to their predefined value; unknown names are
allocated a custom value above the predefined range, stable for the
lifetime of the process. An optional integer offset is added as-is.

Examples:
  # Resolve a predefined layer
  zlayer modal            # prints %d

  # Resolve with an offset
  zlayer modal 10         # prints %d

  # List the predefined layers
  zlayer layers

  # Scan a stylesheet for oversized literals
  zlayer diagnose styles.css`,
		example.Resolve("modal", 0), example.Resolve("modal", 10))

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/zlayer/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false,
		"write debug logs to .zlayer/debug.log")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false,
		"emit JSON instead of styled text")

	// Negative offsets ("zlayer modal -10") must parse as positional
	// arguments, not flags.
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return initLogging()
	}
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("scan.warn_threshold", defaults.Scan.WarnThreshold)
	viper.SetDefault("scan.severe_threshold", defaults.Scan.SevereThreshold)
	viper.SetDefault("watch.debounce", defaults.Watch.Debounce)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .zlayer/config.yaml (current directory)
		// 2. ~/.config/zlayer/config.yaml (user config)
		if _, err := os.Stat(".zlayer/config.yaml"); err == nil {
			viper.SetConfigFile(".zlayer/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "zlayer"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create the default user config
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			home, homeErr := os.UserHomeDir()
			if homeErr == nil {
				defaultPath := filepath.Join(home, ".config", "zlayer", "config.yaml")
				if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
					viper.SetConfigFile(defaultPath)
					_ = viper.ReadInConfig()
				}
				// If write fails, just continue with defaults (no config file)
			}
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func initLogging() error {
	if !debugMode && os.Getenv("ZLAYER_DEBUG") == "" {
		return nil
	}
	if err := os.MkdirAll(".zlayer", 0o750); err != nil {
		return fmt.Errorf("creating debug log directory: %w", err)
	}
	cleanup, err := log.Init(filepath.Join(".zlayer", "debug.log"))
	if err != nil {
		return fmt.Errorf("initializing debug log: %w", err)
	}
	logCleanup = cleanup
	return nil
}

func runResolve(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	name := args[0]
	offset := 0
	if len(args) == 2 {
		parsed, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid offset %q: expected an integer", args[1])
		}
		offset = parsed
	}

	value := registry.Resolve(name, offset)
	log.Debug(log.CatRegistry, "Resolved layer", "name", name, "offset", offset, "value", value)

	return presentation.NewFormatter(cmd.OutOrStdout()).FormatValue(value)
}

// Execute runs the root command
func Execute() error {
	defer func() {
		if logCleanup != nil {
			logCleanup()
		}
	}()
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
