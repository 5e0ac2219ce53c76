// Ravy - command line client for the Ravy anti-abuse API
//
// A thin shell over the library: it loads a token, syncs the token's
// granted permissions once, runs a single lookup and prints the result
// as JSON.
//
// Configuration is read from a YAML file (default ~/.ravy.yaml):
//
//	token: "your-ravy-token"
//	base_url: "https://ravy.org/api/v1"   # optional
//
// The RAVY_TOKEN environment variable overrides the file.
//
// Examples:
//
//	ravy token                        # show the current token's grants
//	ravy user 123456789012345678      # combined user lookup
//	ravy url scam.example.com         # website fraud lookup
//	ravy avatar https://... 0.95      # avatar spam check
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ravyapi/ravy"
)

type config struct {
	Token   string `yaml:"token"`
	BaseURL string `yaml:"base_url"`
}

var (
	flagConfig   string
	flagLogLevel string

	log = logrus.New()
)

func main() {
	root := &cobra.Command{
		Use:           "ravy",
		Short:         "Command line client for the Ravy anti-abuse API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(flagLogLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)
			log.SetOutput(os.Stderr)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "config file (default ~/.ravy.yaml)")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warning", "log level (debug, info, warning, error)")

	root.AddCommand(tokenCmd(), userCmd(), urlCmd(), avatarCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadConfig() (config, error) {
	var cfg config

	path := flagConfig
	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ".ravy.yaml")
		}
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing %s: %w", path, err)
			}
		case flagConfig != "":
			// An explicitly requested config file must exist.
			return cfg, err
		}
	}

	if token := os.Getenv("RAVY_TOKEN"); token != "" {
		cfg.Token = token
	}

	if cfg.Token == "" {
		return cfg, fmt.Errorf("no token configured; set RAVY_TOKEN or add token to %s", path)
	}

	return cfg, nil
}

// newClient builds a client from configuration and syncs the permission
// snapshot so every subsequent endpoint call is guarded.
func newClient(ctx context.Context) (*ravy.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	opts := []ravy.Option{ravy.WithLogger(log)}
	if cfg.BaseURL != "" {
		opts = append(opts, ravy.WithBaseURL(cfg.BaseURL))
	}

	client, err := ravy.New(cfg.Token, opts...)
	if err != nil {
		return nil, err
	}

	if err := client.SyncPermissions(ctx); err != nil {
		return nil, fmt.Errorf("syncing permissions: %w", err)
	}

	return client, nil
}

func printJSON(v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}

func tokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Show the current token and its granted permissions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			info, err := client.Tokens.Current(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(info)
		},
	}
}

func userCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "user <id>",
		Short: "Look up a user's combined anti-abuse information",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user ID %q: %w", args[0], err)
			}

			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			user, err := client.Users.Get(cmd.Context(), userID)
			if err != nil {
				return err
			}
			return printJSON(user)
		},
	}
}

func urlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "url <url>",
		Short: "Look up the fraud assessment for a website URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			info, err := client.URLs.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(info)
		},
	}
}

func avatarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "avatar <url> [threshold]",
		Short: "Match an avatar URL against known spam-bot avatars",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			threshold := 0.97
			if len(args) == 2 {
				var err error
				threshold, err = strconv.ParseFloat(args[1], 64)
				if err != nil {
					return fmt.Errorf("invalid threshold %q: %w", args[1], err)
				}
			}

			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			check, err := client.Avatars.Check(cmd.Context(), args[0], threshold)
			if err != nil {
				return err
			}
			return printJSON(check)
		},
	}
}
