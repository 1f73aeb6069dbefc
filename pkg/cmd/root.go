package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tidyuse/tidyuse/pkg/formatter"
	"github.com/tidyuse/tidyuse/pkg/version"
)

const (
	UseDescription   = "tidyuse [flags] [PATH] [-- rustfmt-args...]"
	ShortDescription = "Rust use grouper - A tool to group and sort Rust use declarations"
	LongDescription  = `tidyuse is a command-line tool that groups and sorts Rust use declarations.

It merges declarations sharing a path prefix into nested groups and
organizes them into blocks:
1. Standard library (std, core, alloc)
2. External crates
3. Crate-relative paths (self, super, crate)

Declarations with different visibility or a leading :: are kept as
separate statements. The result is piped through rustfmt unless
--skip-rustfmt is given; arguments after "--" are forwarded to rustfmt
verbatim.

PATH can be a single Rust file or a directory. When a directory is
specified, all Rust source files in it are processed recursively. With no
PATH, tidyuse reads from stdin and writes to stdout.

Settings can also come from a .tidyuse.yaml file in the working directory
or home directory, or from TIDYUSE_* environment variables.`
)

var (
	skipRustfmt bool
	inPlace     bool
	rustfmtPath string
	edition     string
	showVersion bool
	versionStr  string
)

var rootCmd = &cobra.Command{
	Use:          UseDescription,
	Short:        ShortDescription,
	Long:         LongDescription,
	Args:         validateArgs,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVar(&skipRustfmt, "skip-rustfmt", false, "Don't pass results through rustfmt")
	rootCmd.PersistentFlags().BoolVar(&inPlace, "in-place", false, "Modify files in place instead of printing to stdout")
	rootCmd.PersistentFlags().StringVar(&rustfmtPath, "rustfmt-path", "rustfmt", "Path to the rustfmt binary")
	rootCmd.PersistentFlags().StringVar(&edition, "edition", "", "Rust edition passed to rustfmt (detected from Cargo.toml when empty)")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version information")

	_ = viper.BindPFlag("skip-rustfmt", rootCmd.PersistentFlags().Lookup("skip-rustfmt"))
	_ = viper.BindPFlag("rustfmt-path", rootCmd.PersistentFlags().Lookup("rustfmt-path"))
	_ = viper.BindPFlag("edition", rootCmd.PersistentFlags().Lookup("edition"))
}

func initConfig() {
	viper.SetConfigName(".tidyuse")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.SetEnvPrefix("tidyuse")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// a missing config file is fine
	_ = viper.ReadInConfig()
}

func validateArgs(cmd *cobra.Command, args []string) error {
	// If version flag is set, we don't need file arguments
	if showVersion {
		return nil
	}
	count := len(args)
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		count = dash
	}
	if count > 1 {
		return fmt.Errorf("accepts at most 1 path, received %d", count)
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	// Handle version flag
	if showVersion {
		if version.Version == "dev" && versionStr != "" {
			version.Version = versionStr
		}
		fmt.Println(version.Get().String())
		return nil
	}

	var rustfmtArgs []string
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		rustfmtArgs = args[dash:]
		args = args[:dash]
	}

	f := formatter.New(formatter.Config{
		InPlace:     inPlace,
		SkipRustfmt: viper.GetBool("skip-rustfmt"),
		RustfmtPath: viper.GetString("rustfmt-path"),
		Edition:     viper.GetString("edition"),
		RustfmtArgs: rustfmtArgs,
	})

	if len(args) == 0 {
		return f.ProcessStdin()
	}
	return f.ProcessPath(args[0])
}

func Execute(version string) error {
	versionStr = version
	return rootCmd.Execute()
}
