package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/dagrooster-go/internal/utils"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/catalog"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/store"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/template"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "dagrooster",
	Short: "Fill the Dagrooster template with roster names",
	Long: `dagrooster locates the writable cells of the Dagrooster xlsx template,
serves a form to fill them per date and exports the filled template.`,
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.dagrooster.yaml)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
	rootCmd.PersistentFlags().StringP("template", "t", template.DefaultSource, "Template path or http(s) URL")
	rootCmd.PersistentFlags().String("catalog", "", "YAML label catalog (default: built-in)")
	rootCmd.PersistentFlags().String("locale", dagrooster.DefaultLocale, "Locale used to order fields")
	rootCmd.PersistentFlags().String("db", "", "Values database (default is $HOME/.config/dagrooster/values.sqlite, :memory: for none)")

	for _, name := range []string{"loglevel", "template", "catalog", "locale", "db"} {
		viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".dagrooster")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("dagrooster")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
		}
	}

	if err := utils.SetLogLevel(viper.GetString("loglevel")); err != nil {
		utils.Log.Fatal(err)
	}
}

// extractOptions builds extraction options from the configuration.
func extractOptions() (dagrooster.Options, error) {
	opts := dagrooster.DefaultOptions()
	opts.Locale = viper.GetString("locale")

	if path := viper.GetString("catalog"); path != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return opts, err
		}
		c, err := catalog.Load(expanded)
		if err != nil {
			return opts, fmt.Errorf("catalog %s: %w", path, err)
		}
		opts.Catalog = c
	}
	return opts, nil
}

func newLoader() *template.Loader {
	return template.NewLoader(viper.GetString("template"))
}

// openValues opens the configured values store. The returned close function
// is never nil.
func openValues() (*store.ValuesStore, func() error, error) {
	path := viper.GetString("db")
	if path == ":memory:" {
		return store.NewValuesStore(store.NewMemory()), func() error { return nil }, nil
	}

	if path == "" {
		home, err := homedir.Dir()
		if err != nil {
			return nil, nil, err
		}
		path = filepath.Join(home, ".config", "dagrooster", "values.sqlite")
	}
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, err
	}

	db, err := store.OpenSQLite(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open values database %s: %w", path, err)
	}
	utils.Log.Debugf("values database: %s", path)
	return store.NewValuesStore(db), db.Close, nil
}
