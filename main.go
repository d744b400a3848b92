package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/clipsage/transcript-scraper/config"
	"github.com/clipsage/transcript-scraper/page"
	"github.com/clipsage/transcript-scraper/service"
	"github.com/clipsage/transcript-scraper/store"
	"github.com/clipsage/transcript-scraper/transcript"
)

func main() {
	// A missing .env is fine; environment variables still apply.
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("Command failed")
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgFile string
		verbose bool
	)

	root := &cobra.Command{
		Use:   "transcript-scraper",
		Short: "Extract video caption transcripts through a fallback chain of scraping strategies",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
			return initConfig(cfgFile)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./transcript-scraper.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newFetchCmd())
	return root
}

func initConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("transcript-scraper")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("TRANSCRIPT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	defaults := config.DefaultAcquisitionConfig()
	viper.SetDefault("min_transcript_length", defaults.MinTranscriptLength)
	viper.SetDefault("settle_delay", defaults.SettleDelay)
	viper.SetDefault("cache_size", defaults.CacheSize)
	viper.SetDefault("language_preferences", defaults.LanguagePreferences)
	viper.SetDefault("request_timeout", defaults.RequestTimeout)
	viper.SetDefault("user_agent", defaults.UserAgent)
	viper.SetDefault("caption_segment_selector", defaults.CaptionSegmentSelector)
	viper.SetDefault("caption_toggle_selector", defaults.CaptionToggleSelector)
	viper.SetDefault("description_selector", defaults.DescriptionSelector)
	viper.SetDefault("store_path", defaults.StorePath)

	if err := viper.ReadInConfig(); err != nil {
		// The bundled defaults are complete, so a missing default config
		// file is not an error. An explicitly named one must exist.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || cfgFile != "" {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

func loadAcquisitionConfig() *config.AcquisitionConfig {
	return &config.AcquisitionConfig{
		MinTranscriptLength:    viper.GetInt("min_transcript_length"),
		SettleDelay:            viper.GetDuration("settle_delay"),
		CacheSize:              viper.GetInt("cache_size"),
		LanguagePreferences:    viper.GetStringSlice("language_preferences"),
		RequestTimeout:         viper.GetDuration("request_timeout"),
		UserAgent:              viper.GetString("user_agent"),
		CaptionSegmentSelector: viper.GetString("caption_segment_selector"),
		CaptionToggleSelector:  viper.GetString("caption_toggle_selector"),
		DescriptionSelector:    viper.GetString("description_selector"),
		StorePath:              viper.GetString("store_path"),
	}
}

func newFetchCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "fetch <video-id-or-url>",
		Short: "Fetch and print the transcript for a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			videoID := args[0]
			if transcript.ValidateVideoID(videoID) != nil {
				extracted, err := page.ExtractVideoID(videoID)
				if err != nil {
					return fmt.Errorf("argument is neither a video ID nor a recognized watch URL: %s", videoID)
				}
				videoID = extracted
			}

			cfg := loadAcquisitionConfig()
			if err := cfg.Validate(); err != nil {
				return err
			}

			acquirer, err := transcript.NewAcquirer(cfg)
			if err != nil {
				return err
			}

			var st *store.Store
			if cfg.StorePath != "" {
				st, err = store.Open(cfg.StorePath)
				if err != nil {
					return err
				}
				defer st.Close()
			}

			svc, err := service.New(acquirer, st, func(videoID string) page.Access {
				return page.NewHTTPAccess(videoID, cfg.UserAgent, cfg.RequestTimeout)
			})
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			result, err := svc.GetTranscript(ctx, videoID)
			if err != nil {
				return err
			}

			log.Info().
				Str("video_id", result.VideoID).
				Str("strategy", result.Source).
				Int("length", result.Len()).
				Msg("Transcript ready")

			fmt.Fprintln(os.Stdout, result.Text)
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall deadline for the acquisition")
	return cmd
}
