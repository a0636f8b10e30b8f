package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/d12pack/internal/cliconfig"
	"github.com/bft-labs/d12pack/pkg/log"
	"github.com/bft-labs/d12pack/pkg/pack"
)

const helpDescription = `
Generate the Double 12 domino tile pack: one SVG per unordered pip pair
(0-12, 91 tiles), a pack.json manifest and a preview.svg.

Running with no flags writes the DEFAULT pack into packs/default.
Settings come from flags, D12PACK_* environment variables, and a TOML file
(d12pack.toml in the working directory, or --config), in that order of
precedence. pack.json is only written when it does not exist yet.
`

var exampleUsage = strings.TrimSpace(`
  d12pack
  d12pack --out-dir packs/neon --id neon --name Neon --style NEON
  d12pack --config neon.toml --log-level debug
  d12pack verify packs/default
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	logger := cliconfig.Logger()

	root := newRootCommand(&logger)
	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("d12pack")
		os.Exit(1)
	}
}

func newRootCommand(logger *zerolog.Logger) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "d12pack",
		Short:         "Generate the SVG tiles, manifest and preview of a double-twelve domino pack",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := resolveConfig(cmd, &cfg, cfgPath); err != nil {
				return err
			}

			zl, err := cliconfig.LoggerForLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("log level: %w", err)
			}
			*logger = zl
			logger.Debug().Interface("config", cfg).Msg("configuration")

			packCfg, err := cfg.PackConfig()
			if err != nil {
				return err
			}

			g, err := pack.New(packCfg, pack.WithLogger(log.NewZerologAdapterWithLogger(zl)))
			if err != nil {
				return fmt.Errorf("create generator: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			res, err := g.Generate(ctx)
			if err != nil {
				return fmt.Errorf("generate pack: %w", err)
			}

			logger.Info().
				Int("tiles", res.Tiles).
				Str("out_dir", res.OutDir).
				Bool("manifest_created", res.ManifestCreated).
				Msg("generated tiles")
			logger.Info().Str("path", res.PreviewPath).Msg("wrote preview")
			return nil
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", fmt.Sprintf("path to config file (default: ./%s if present)", cliconfig.DefaultConfigFile))
	root.Flags().StringVar(&cfg.OutDir, "out-dir", cfg.OutDir, "output directory for the pack")
	root.Flags().StringVar(&cfg.ID, "id", cfg.ID, "pack identifier written to pack.json")
	root.Flags().StringVar(&cfg.Name, "name", cfg.Name, "pack display name")
	root.Flags().StringVar(&cfg.StyleTag, "style", cfg.StyleTag, "style tag embedded in tile filenames")
	root.Flags().StringVar(&cfg.Author, "author", cfg.Author, "author written to pack.json")
	root.Flags().StringVar(&cfg.License, "license", cfg.License, "license written to pack.json")
	root.Flags().IntVar(&cfg.MaxPip, "max-pip", cfg.MaxPip, "highest pip count in the set (0-12)")
	root.Flags().StringVar(&cfg.Preview, "preview", cfg.Preview, "pip pair rendered to preview.svg, as A,B")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	root.AddCommand(newVerifyCommand(logger, &cfg))
	return root
}

// resolveConfig layers file, env and flag values onto cfg, then validates.
func resolveConfig(cmd *cobra.Command, cfg *cliconfig.Config, cfgPath string) error {
	// Build set of changed flags
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	cfgFile := cfgPath
	if cfgFile == "" && cliconfig.FileExists(cliconfig.DefaultConfigFile) {
		cfgFile = cliconfig.DefaultConfigFile
	}
	if cfgFile != "" {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cliconfig.ApplyFileConfig(cfg, fc, changed)
	}

	// Apply environment variables (D12PACK_*)
	// These override file config but are overridden by flags (checked via changed map)
	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}

	return cfg.Validate()
}

func newVerifyCommand(logger *zerolog.Logger, cfg *cliconfig.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [dir]",
		Short: "Check that a pack directory holds every tile its pack.json lists",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := cfg.OutDir
			if len(args) == 1 {
				dir = args[0]
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			rep, err := pack.Verify(ctx, dir)
			if err != nil {
				return fmt.Errorf("verify %s: %w", dir, err)
			}
			for _, name := range rep.Missing {
				logger.Warn().Str("file", name).Msg("missing")
			}
			if !rep.OK() {
				return fmt.Errorf("verify %s: %d of %d files missing", dir, len(rep.Missing), rep.Expected)
			}
			logger.Info().
				Str("dir", dir).
				Str("pack", rep.Manifest.ID).
				Int("files", rep.Present).
				Msg("pack complete")
			return nil
		},
	}
}
