package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/app"
	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/config"
	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/domain"
	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/translator"
)

// Flags holds the values of the persistent flags.
type Flags struct {
	ConfigPath string
	Verbose    bool
}

// NewRootCommand creates the translate command tree.
func NewRootCommand() *cobra.Command {
	flags := &Flags{}

	root := &cobra.Command{
		Use:   "translate",
		Short: "Rule-based Thai and Kham Mueang translator",
		Long: `translate runs the dictionary translator offline.

Examples:
  translate text --from km --to th story.txt
  echo "กินข้าวแล้วกา" | translate text --from km --unknown 20
  translate report --from km --out unknown_km.csv corpus.txt
  translate token --subject ops`,
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.ConfigPath, "config", "", "config file (default $CONFIG_PATH or ./config.yaml)")
	root.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "log lexicon loading to stderr")

	root.AddCommand(
		newTextCommand(flags),
		newReportCommand(flags),
		newTokenCommand(flags),
	)
	return root
}

// Execute runs the command tree against the process arguments.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

func loadConfig(flags *Flags) (*config.Config, error) {
	if flags.ConfigPath != "" {
		return config.LoadFile(flags.ConfigPath)
	}
	return config.Load()
}

func newLogger(flags *Flags, w io.Writer) *slog.Logger {
	if !flags.Verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return app.NewLoggerTo(w, config.LogConfig{Level: "debug", Format: "text"})
}

// loadTranslator builds the translator for one direction only. An empty
// target means the other language of the source.
func loadTranslator(ctx context.Context, cmd *cobra.Command, flags *Flags, from, to string) (*translator.Translator, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(to) == "" {
		src := domain.LanguageThai
		if strings.TrimSpace(from) != "" {
			if src, err = domain.ParseLanguage(from); err != nil {
				return nil, err
			}
		}
		to = src.Other().String()
	}
	dir, err := domain.ParseDirection(from, to)
	if err != nil {
		return nil, err
	}

	tcfg := cfg.Translator
	switch dir.Source {
	case domain.LanguageThai:
		tcfg.KmTh.Disabled = true
	case domain.LanguageKhamMueang:
		tcfg.ThKm.Disabled = true
	}

	ts, err := app.LoadTranslators(ctx, tcfg, newLogger(flags, cmd.ErrOrStderr()))
	if err != nil {
		return nil, err
	}
	for _, t := range ts {
		if t.Direction() == dir {
			return t, nil
		}
	}
	return nil, fmt.Errorf("direction %s is disabled: %w", dir, domain.ErrUnsupportedLanguagePair)
}

// openInput returns the named file, or stdin when no argument is given.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}
