package initializer

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/snikolow/commission-calculator/pkg/config"
)

var (
	infoTxtColor  = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warnTxtColor  = lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	errorTxtColor = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}
	debugTxtColor = lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}
)

func levelStyle(label string, color lipgloss.AdaptiveColor) lipgloss.Style {
	return lipgloss.NewStyle().
		SetString(label).
		Bold(true).
		Padding(0, 1).
		Foreground(color)
}

func logStyles() *log.Styles {
	styles := log.DefaultStyles()
	styles.Levels[log.ErrorLevel] = levelStyle("ERR", errorTxtColor)
	styles.Levels[log.WarnLevel] = levelStyle("WRN", warnTxtColor)
	styles.Levels[log.InfoLevel] = levelStyle("INF", infoTxtColor)
	styles.Levels[log.DebugLevel] = levelStyle("DBG", debugTxtColor)

	keyColors := map[string]lipgloss.AdaptiveColor{
		"error":   errorTxtColor,
		"run_id":  infoTxtColor,
		"line":    warnTxtColor,
		"user_id": debugTxtColor,
		"fee":     infoTxtColor,
		"outcome": debugTxtColor,
	}
	for key, color := range keyColors {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(color)
		styles.Values[key] = lipgloss.NewStyle().Bold(true)
	}
	return styles
}

// SetupLogger builds the slog logger used across the calculator and makes
// it the default. Logs go to w, or to stderr when w is nil, so that fees
// on stdout stay machine readable.
func SetupLogger(cfg *config.Log, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	formatter := log.TextFormatter
	if cfg.Format == "json" {
		formatter = log.JSONFormatter
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    cfg.Level < 0,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(logStyles())

	slogger := slog.New(logger)
	slog.SetDefault(slogger)
	return slogger
}
