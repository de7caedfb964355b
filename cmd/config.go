package cmd

import (
	"fmt"
	"strconv"

	cfgpkg "github.com/KaramelBytes/pollnorm-cli/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set pollnorm configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("debug: %t\n", cfg.Debug)
		if cfg.Delimiter != "" {
			fmt.Printf("delimiter: %s\n", cfg.Delimiter)
		} else {
			fmt.Println("delimiter: (auto)")
		}
		fmt.Printf("log_format: %s\n", cfg.LogFormat)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "debug":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for debug: %v", val)
			}
			cfg.Debug = b
		case "delimiter":
			switch val {
			case "", ",", ";", "tab":
				cfg.Delimiter = val
			default:
				return fmt.Errorf("invalid delimiter: %s (use ','|';'|'tab'|'')", val)
			}
		case "log_format":
			switch val {
			case "text", "json":
				cfg.LogFormat = val
			default:
				return fmt.Errorf("invalid log_format: %s (use text or json)", val)
			}
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Saved %s\n", key)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
