package initializer

import (
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/finance/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

type levelStyle struct {
	level log.Level
	icon  string
	color lipgloss.AdaptiveColor
}

var levelStyles = []levelStyle{
	{log.ErrorLevel, "❌", lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}},
	{log.WarnLevel, "⚠️", lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}},
	{log.InfoLevel, "ℹ️", lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}},
	{log.DebugLevel, "🐛", lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}},
}

var formatters = map[string]log.Formatter{
	"json":   log.JSONFormatter,
	"text":   log.TextFormatter,
	"logfmt": log.LogfmtFormatter,
}

// NewLogger builds the process logger: a charmbracelet handler with level
// icons behind a *slog.Logger. A nil w writes to stderr so command output on
// stdout stays clean.
func NewLogger(cfg *config.Log, w io.Writer) *slog.Logger {
	if cfg == nil {
		cfg = &config.Log{Format: "text", Prefix: "[finance]"}
	}
	if w == nil {
		w = os.Stderr
	}

	styles := log.DefaultStyles()
	keyColor := lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}
	for _, s := range levelStyles {
		styles.Levels[s.level] = lipgloss.NewStyle().
			SetString(s.icon).
			Bold(true).
			Padding(0, 1).
			Foreground(s.color)
	}
	styles.Keys["error"] = lipgloss.NewStyle().Foreground(levelStyles[0].color)
	styles.Values["error"] = lipgloss.NewStyle().Bold(true)
	for _, k := range []string{"op", "id", "prefix", "caller", "time"} {
		styles.Keys[k] = lipgloss.NewStyle().Foreground(keyColor)
		styles.Values[k] = lipgloss.NewStyle().Bold(true)
	}

	formatter, ok := formatters[cfg.Format]
	if !ok {
		formatter = log.TextFormatter
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    cfg.Level <= int(log.DebugLevel),
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(styles)

	return slog.New(logger)
}
