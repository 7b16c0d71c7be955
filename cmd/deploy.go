package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/nikogura/brand-weaver/pkg/deploy"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var deployPlatform string

//nolint:gochecknoglobals // Cobra boilerplate
var deploySiteName string

//nolint:gochecknoglobals // Cobra boilerplate
var deployRepository string

//nolint:gochecknoglobals // Cobra boilerplate
var deployDomain string

//nolint:gochecknoglobals // Cobra boilerplate
var deployJSON bool

//nolint:gochecknoglobals // Cobra boilerplate
var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Simulate deploying a generated website",
	Long: `Simulate deploying a generated website to GitHub Pages, Netlify or Vercel.

Nothing is uploaded. The command prints the URL the site would be served
from and, with --domain, the DNS records to create at your domain provider.

Example:
  brand-weaver deploy --platform netlify --site-name jane
  brand-weaver deploy --platform github_pages --repo jane --domain jane.dev`,
	Args: cobra.NoArgs,
	RunE: runDeploy,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(deployCmd)
	deployCmd.Flags().StringVar(&deployPlatform, "platform", "netlify", "Platform: github_pages, netlify or vercel")
	deployCmd.Flags().StringVar(&deploySiteName, "site-name", "", "Site name (Netlify, Vercel)")
	deployCmd.Flags().StringVar(&deployRepository, "repo", "", "Repository owner name (GitHub Pages)")
	deployCmd.Flags().StringVar(&deployDomain, "domain", "", "Custom domain")
	deployCmd.Flags().BoolVar(&deployJSON, "json", false, "Print the result as JSON")
}

func runDeploy(cmd *cobra.Command, args []string) (err error) {
	var result deploy.Result
	result, err = deploy.Deploy(deploy.Options{
		Platform:       deploy.ParsePlatform(deployPlatform),
		SiteName:       deploySiteName,
		RepositoryName: deployRepository,
		CustomDomain:   deployDomain,
	})
	if err != nil {
		err = errors.Wrap(err, "deployment failed")
		return err
	}

	if deployJSON {
		var out []byte
		out, err = json.MarshalIndent(result, "", "  ")
		if err != nil {
			err = errors.Wrap(err, "failed to marshal result")
			return err
		}
		fmt.Println(string(out))
		return err
	}

	printDeployResult(result)
	return err
}

func printDeployResult(result deploy.Result) {
	fmt.Printf("✓ %s\n", result.Message)
	fmt.Printf("  Platform: %s\n", result.Platform)
	fmt.Printf("  URL:      %s\n", result.URL)

	if result.DNSRecords == nil {
		return
	}

	fmt.Printf("\nDNS records for %s:\n", result.DNSRecords.Platform)
	fmt.Printf("  %-6s %-6s %-24s %s\n", "TYPE", "NAME", "VALUE", "TTL")
	for _, rec := range result.DNSRecords.Records {
		fmt.Printf("  %-6s %-6s %-24s %s\n", rec.Type, rec.Name, rec.Value, rec.TTL)
	}

	fmt.Println("\nNext steps:")
	for i, step := range result.DNSRecords.Instructions {
		fmt.Printf("  %d. %s\n", i+1, step)
	}
}
