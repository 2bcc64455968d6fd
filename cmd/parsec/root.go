package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ashbridge/parsec/internal/xlog"
)

var (
	cfgFile string
	red     = color.New(color.FgRed).SprintfFunc()
)

var rootCmd = &cobra.Command{
	Use:   "parsec",
	Short: "Run parsec grammars against input files",
	Long:  "parsec drives the built-in json and html grammars against a file or stdin and reports either the decoded value or a located syntax error.",
}

func init() {
	cobra.OnInitialize(initConfig)
	viper.SetEnvPrefix("parsec")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.parsec.yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(registryCmd)

	cobra.OnInitialize(applyGlobalFlags)
}

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
		viper.SetConfigName(".parsec")
	}
	viper.ReadInConfig()
}

// applyGlobalFlags wires --no-color / auto-TTY-detection and --verbose into
// the color and xlog packages once flags and config are both loaded.
func applyGlobalFlags() {
	if viper.GetBool("no-color") || !isTerminalOut() {
		color.NoColor = true
	}
	if viper.GetBool("verbose") {
		xlog.SetLevel(zerolog.DebugLevel)
	} else {
		xlog.SetLevel(zerolog.InfoLevel)
	}
}

func isTerminalOut() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s\n", red(format, args...))
	os.Exit(1)
}
