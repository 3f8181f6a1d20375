package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chinmay1088/odyssey-gateway/config"
	"github.com/chinmay1088/odyssey-gateway/platform"
)

var platformsCmd = &cobra.Command{
	Use:     "platforms",
	Aliases: []string{"network"},
	Short:   "Show the active platform table",
	Long: `Show the platforms the gateway serves on the selected network.

Examples:
  odyssey-gateway platforms                # Test networks
  odyssey-gateway platforms --production   # Mainnet`,
	Args: cobra.NoArgs,
	RunE: runPlatforms,
}

func runPlatforms(cmd *cobra.Command, args []string) error {
	production := v.GetBool(config.KeyProduction)
	registry, err := platform.NewRegistry(production)
	if err != nil {
		return err
	}

	if production {
		fmt.Printf("Network: %s\n\n", color.GreenString("Mainnet"))
	} else {
		fmt.Printf("Network: %s\n\n", color.YellowString("Testnet"))
	}

	for _, p := range registry.All() {
		kind := color.CyanString(p.Type)
		if p.IsToken() {
			kind = color.MagentaString(p.Type)
		}
		fmt.Printf("   %-10s %-12s %-6s %-8s unit=%s rate=%s", p.Key, p.Name, kind, p.Network, p.Unit, p.ValueRate)
		if p.IsToken() {
			fmt.Printf(" parent=%s", p.Parent)
		}
		fmt.Println()
	}
	return nil
}
