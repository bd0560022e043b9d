package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/lectio-cli/lectio/internal/utils"
	"github.com/lectio-cli/lectio/pkg/reference"
)

var cfgFile string

const (
	LOGO = `	 _           _   _
	| | ___  ___| |_(_) ___
	| |/ _ \/ __| __| |/ _ \
	| |  __/ (__| |_| | (_) |
	|_|\___|\___|\__|_|\___/

`
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lectio",
	Short: "A daily companion for a one-year chronological reading plan.",
	Long: LOGO + `lectio walks you through the whole canon in 365 days, one short reading
at a time. Start the plan once; from then on it always knows what today's
reading is, can look ahead or behind, and links every chapter to its
study page.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.lectio.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("planfile", "p", "", "Plan state file (default is $HOME/.config/lectio/plan.json)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".lectio")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Printf("Error reading config file: %s\n", err)
		}
	}

	// Set default empty values for all keys
	viper.SetDefault("planfile", "")
	viper.SetDefault("dbfile", "")
	viper.SetDefault("linkhost", reference.DefaultHost)

	if flag := rootCmd.PersistentFlags().Lookup("planfile"); flag.Changed {
		viper.Set("planfile", flag.Value.String())
	}

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
}
