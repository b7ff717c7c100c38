// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the phantasm CLI.
package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/phantasm/internal/httputil"
	"github.com/pdiddy/phantasm/internal/ledger"
	"github.com/pdiddy/phantasm/internal/secrets"
	"github.com/pdiddy/phantasm/internal/store"
	"github.com/pdiddy/phantasm/internal/synthesis"
	"github.com/pdiddy/phantasm/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback if set, else the secret value for key.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the phantasm CLI.
var rootCmd = &cobra.Command{
	Use:   "phantasm",
	Short: "Study aid that conjures the real syllabus of a course",
	Long: `phantasm aggregates scattered student discussion about a course and uses an
AI collaborator to produce a "Ghost Syllabus": the course as students actually
experience it, not as the department describes it.

Each capability is a subcommand: conjure (full generation), rating, cram,
radio, whisper, check, and export. State lives in a local database; notes and
survival plans can optionally sync to a Memos-compatible ledger server.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./phantasm.yaml or ~/.config/phantasm/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("phantasm")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "phantasm"))
		}
	}

	viper.SetEnvPrefix("PHANTASM")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// appConfig resolves the full configuration from the config file, the
// environment, and loaded secrets.
func appConfig() types.AppConfig {
	return types.AppConfig{
		Discussion: types.DiscussionConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("discussion.timeout"),
				UserAgent: viper.GetString("discussion.user_agent"),
			},
			MaxPosts:     viper.GetInt("discussion.max_posts"),
			ExcerptLimit: viper.GetInt("discussion.excerpt_limit"),
		},
		AI: types.AIConfig{
			Model:           viper.GetString("ai.model"),
			SpeechModel:     viper.GetString("ai.speech_model"),
			APIKey:          secretDefault("gemini-api-key", viper.GetString("ai.api_key")),
			MaxOutputTokens: viper.GetInt("ai.max_output_tokens"),
			Timeout:         viper.GetDuration("ai.timeout"),
		},
		Ledger: types.LedgerConfig{
			URL:        viper.GetString("ledger.url"),
			Token:      secretDefault("ledger-token", viper.GetString("ledger.token")),
			PageSize:   viper.GetInt("ledger.page_size"),
			Visibility: viper.GetString("ledger.visibility"),
		},
		Store: types.StoreConfig{
			DataDir: viper.GetString("store.data_dir"),
		},
		Radio: types.RadioConfig{
			SampleRate:    viper.GetInt("radio.sample_rate"),
			Voice:         viper.GetString("radio.voice"),
			PlayerCommand: viper.GetString("radio.player_command"),
			OutputDir:     viper.GetString("radio.output_dir"),
		},
	}
}

// openStore opens the local database from the resolved configuration.
func openStore(cfg types.AppConfig) (store.Store, error) {
	return store.NewSQLiteStore(cfg.Store)
}

// aiBackend builds the Gemini backend from the resolved configuration.
func aiBackend(cfg types.AppConfig) (*synthesis.GeminiBackend, error) {
	if cfg.AI.APIKey == "" {
		return nil, fmt.Errorf("no Gemini API key: set ai.api_key or .secrets/gemini-api-key")
	}
	return synthesis.NewGeminiBackend(cfg.AI, cfg.Radio.Voice), nil
}

// ledgerClient builds the ledger client from configuration, preferring
// stored settings over file configuration so "phantasm whisper connect"
// survives restarts.
func ledgerClient(cfg types.AppConfig, st store.Store) *ledger.Client {
	ledgerCfg := cfg.Ledger
	if url, err := st.Setting("ledger_url"); err == nil && url != "" {
		ledgerCfg.URL = url
	}
	if token, err := st.Setting("ledger_token"); err == nil && token != "" {
		ledgerCfg.Token = token
	}
	return ledger.NewClient(ledgerCfg, httpClient(cfg))
}

func httpClient(cfg types.AppConfig) *http.Client {
	return httputil.NewClient(cfg.Discussion.HTTPConfig)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
