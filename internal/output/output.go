// Package output prints CLI results as human text, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/csheth/careerscout/internal/flows"
)

// Format selects how a result is written.
type Format string

const (
	FormatHuman Format = "human"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat accepts human, json or yaml (case-insensitive). Empty means human.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatHuman:
		return FormatHuman, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want human, json or yaml)", raw)
	}
}

// Display writes v in format. human is only called for FormatHuman.
func Display(w io.Writer, format Format, v any, human func() string) error {
	switch format {
	case FormatJSON:
		return displayJSON(w, v)
	case FormatYAML:
		return displayYAML(w, v)
	default:
		_, err := fmt.Fprintln(w, human())
		return err
	}
}

func displayJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func displayYAML(w io.Writer, v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, string(out))
	return err
}

// Footer is the closing hint under human output.
func Footer(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "💡 %s\n", color.HiBlackString("Run with -o json or -o yaml for machine-readable output"))
}

// PrintNotice writes a colored one-line message.
func PrintNotice(w io.Writer, notice flows.Notice) {
	toneColor(notice.Tone).Fprintf(w, "%s %s\n", toneIcon(notice.Tone), notice.Message)
}

// PrintSuccess writes a green confirmation.
func PrintSuccess(w io.Writer, msg string) {
	PrintNotice(w, flows.Notice{Tone: flows.TonePositive, Message: msg})
}

// PrintWarning writes a yellow warning.
func PrintWarning(w io.Writer, msg string) {
	PrintNotice(w, flows.Notice{Tone: flows.ToneCaution, Message: msg})
}

// PrintError writes a red error.
func PrintError(w io.Writer, msg string) {
	PrintNotice(w, flows.Notice{Tone: flows.ToneNegative, Message: msg})
}

func toneColor(tone flows.Tone) *color.Color {
	switch tone {
	case flows.TonePositive:
		return color.New(color.FgGreen, color.Bold)
	case flows.ToneCaution:
		return color.New(color.FgYellow, color.Bold)
	case flows.ToneNegative:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

func toneIcon(tone flows.Tone) string {
	switch tone {
	case flows.TonePositive:
		return "✅"
	case flows.ToneCaution:
		return "⚠️ "
	case flows.ToneNegative:
		return "❌"
	default:
		return "ℹ️ "
	}
}

// StartSpinner shows message on stderr until the returned func is called.
// Nothing is drawn when stderr is not a terminal.
func StartSpinner(message string) func() {
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond,
		spinner.WithWriterFile(os.Stderr),
		spinner.WithSuffix(" "+message),
		spinner.WithHiddenCursor(true),
	)
	s.Start()
	return s.Stop
}
