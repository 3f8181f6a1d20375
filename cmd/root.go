package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chinmay1088/odyssey-gateway/config"
	"github.com/chinmay1088/odyssey-gateway/util"
)

var (
	version = "1.0.5"

	configFile string
	v          = viper.New()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "odyssey-gateway",
	Aliases: []string{"ody"},
	Short:   "REST gateway over CryptoAPIs, TronGrid and the XRP ledger",
	Long: `Odyssey Gateway serves one REST API for Bitcoin, Ethereum (and its
tokens), Tron and XRP. Reads and submissions are forwarded to the
CryptoAPIs aggregator, a TronGrid node and a rippled server; answers are
normalized to the same shape for every chain.

Configuration comes from flags, GATEWAY_* environment variables or a
JSON config file (the key.json shape: cryptoAPI, trongrid, production).

Examples:
  odyssey-gateway serve --config key.json   # Start the gateway
  GATEWAY_PRODUCTION=true odyssey-gateway serve
  odyssey-gateway platforms                 # Show the active platform table`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return util.ConfigureLogger(v.GetString(config.KeyLogLevel), v.GetBool(config.KeyLogPretty))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	config.SetDefaults(v)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "config file (JSON, YAML or TOML)")
	flags.Bool("production", false, "use mainnet tables and endpoints")
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.Bool("log-pretty", false, "human readable console logs")

	for key, flag := range map[string]string{
		config.KeyProduction: "production",
		config.KeyLogLevel:   "log-level",
		config.KeyLogPretty:  "log-pretty",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(platformsCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Odyssey Gateway v%s\n", version)
	},
}
