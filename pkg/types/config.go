// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "phantasm/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// DiscussionConfig holds settings for the discussion fetch stage.
type DiscussionConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxPosts is the maximum number of posts requested from the search
	// endpoint (default 10).
	MaxPosts int `json:"max_posts" yaml:"max_posts"`

	// ExcerptLimit caps the length of a post body excerpt in characters
	// (default 500).
	ExcerptLimit int `json:"excerpt_limit" yaml:"excerpt_limit"`
}

// AIConfig holds shared settings for stages that call the Generative AI API.
type AIConfig struct {
	// Model is the AI model identifier used for text synthesis
	// (e.g. "gemini-3-flash-preview").
	Model string `json:"model" yaml:"model"`

	// SpeechModel is the AI model identifier used for audio briefings
	// (e.g. "gemini-2.5-flash-preview-tts").
	SpeechModel string `json:"speech_model" yaml:"speech_model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxOutputTokens bounds the response size (default 8192).
	MaxOutputTokens int `json:"max_output_tokens" yaml:"max_output_tokens"`

	// Timeout is the per-call timeout for AI requests (default 2m).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// LedgerConfig holds settings for the optional external memo-store.
type LedgerConfig struct {
	// URL is the base URL of the memo server (e.g. "http://localhost:5230").
	URL string `json:"url" yaml:"url"`

	// Token is the bearer token for the memo server API.
	Token string `json:"token,omitempty" yaml:"token,omitempty"`

	// PageSize is the number of memos requested per listing (default 100).
	PageSize int `json:"page_size" yaml:"page_size"`

	// Visibility is the visibility assigned to created memos (default "PUBLIC").
	Visibility string `json:"visibility" yaml:"visibility"`
}

// StoreConfig holds settings for the local persistence layer.
type StoreConfig struct {
	// DataDir is the directory containing the local database and exports
	// (default "data").
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// RadioConfig holds settings for the audio briefing stage.
type RadioConfig struct {
	// SampleRate is the PCM sample rate of generated audio in Hz (default 24000).
	SampleRate int `json:"sample_rate" yaml:"sample_rate"`

	// Voice selects the prebuilt TTS voice (default "Charon").
	Voice string `json:"voice" yaml:"voice"`

	// PlayerCommand is the external command used for playback (e.g. "aplay").
	// Empty disables playback; the WAV file is still written.
	PlayerCommand string `json:"player_command" yaml:"player_command"`

	// OutputDir is the directory for generated WAV files (default "data/audio").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// AppConfig groups all stage configurations for the application.
type AppConfig struct {
	Discussion DiscussionConfig `json:"discussion" yaml:"discussion"`
	AI         AIConfig         `json:"ai" yaml:"ai"`
	Ledger     LedgerConfig     `json:"ledger" yaml:"ledger"`
	Store      StoreConfig      `json:"store" yaml:"store"`
	Radio      RadioConfig      `json:"radio" yaml:"radio"`
}
