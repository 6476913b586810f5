package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "resume-matcher"
)

type Config struct {
	Catalog     string        `mapstructure:"catalog"`
	Vocabulary  []string      `mapstructure:"vocabulary"`
	ExcludeFile string        `mapstructure:"exclude-file"`
	Resume      *ResumeConfig `mapstructure:"resume"`
	Match       *MatchConfig  `mapstructure:"match"`
	Exclude     *struct {
		Companies []string
	}
}

type ResumeConfig struct {
	Text string `mapstructure:"text"`
	File string `mapstructure:"file"`
}

type MatchConfig struct {
	RequiredWeight   float64 `mapstructure:"required-weight"`
	NiceToHaveWeight float64 `mapstructure:"nice-to-have-weight"`
	HighScore        int     `mapstructure:"high-score"`
	MediumScore      int     `mapstructure:"medium-score"`
	MinScore         int     `mapstructure:"min-score"`
	Tier             string  `mapstructure:"tier"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-matcher is a simple cli for scoring a resume against a catalog of job postings",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("resume.file", "RESUME_MATCHER_RESUME_FILE"); err != nil {
		log.Fatalf("binding RESUME_MATCHER_RESUME_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-matcher.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for match command now. If there is no config, we can skip initialization
	if matchCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
