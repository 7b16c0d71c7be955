package cmd

import (
	"fmt"

	"github.com/nikogura/brand-weaver/pkg/config"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long: `Create a default config file at $HOME/.brand-weaver/config.json (or --config).

Set rapidapi_key in the file, or export RAPIDAPI_KEY, to extract real
profiles. Without a key, sample data is used when sample_fallback is true.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) (err error) {
	path := getConfigFile()
	if path == "" {
		path, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}

	err = config.InitConfig(path)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Config written to %s\n", path)
	fmt.Println("Edit rapidapi_key or export RAPIDAPI_KEY to extract real profiles.")
	return err
}
