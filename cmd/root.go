package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/geoquiz/internal/config"
	"github.com/abhisek/geoquiz/internal/store"
)

// settings merges flags, GEOQUIZ_* environment, .env and geoquiz.yaml.
var settings = config.New()

var rootCmd = &cobra.Command{
	Use:   "geoquiz",
	Short: "True/false geography quiz",
	Long:  "GeoQuiz: a terminal true/false quiz. Answer each question, move back and forth, and get your score once every question is answered.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false, false)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides GEOQUIZ_DB env var)")
	pf.String("bank", "", "Question bank file (YAML or JSON); defaults to the built-in bank")
	pf.String("config", "", "Config file (defaults to ./geoquiz.yaml or the user config dir)")
	pf.String("log-file", "", "Write debug logs to this file")

	bindFlag(settings, "db", "db")
	bindFlag(settings, "bank", "bank")
	bindFlag(settings, "log_file", "log-file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(savedCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

func bindFlag(v *viper.Viper, key, flag string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

// loadConfig resolves the merged settings for cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	file, _ := cmd.Flags().GetString("config")
	return config.Load(settings, file)
}

// resolveDBPath returns the database path using --db or GEOQUIZ_DB (highest
// priority), then the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}
