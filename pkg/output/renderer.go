package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/lifecycle"
	"github.com/arthur-debert/dotctl/pkg/links"
	"github.com/arthur-debert/dotctl/pkg/logging"
	"github.com/arthur-debert/dotctl/pkg/status"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// Renderer writes command results to w in one format
type Renderer struct {
	w      io.Writer
	format Format
	styles Styles
}

// NewRenderer creates a Renderer. FormatAuto is resolved against w.
func NewRenderer(w io.Writer, format Format) *Renderer {
	format = format.Resolve(w)

	r := lipgloss.NewRenderer(w)
	if format != FormatTerminal {
		r.SetColorProfile(termenv.Ascii)
	}

	logger := logging.GetLogger("output")
	logger.Debug().
		Str("format", format.String()).
		Msg("Renderer created")

	return &Renderer{w: w, format: format, styles: newStyles(r)}
}

// Format returns the concrete format in use
func (r *Renderer) Format() Format {
	return r.format
}

func (r *Renderer) structured(v interface{}) (bool, error) {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return true, errors.Wrap(err, errors.ErrInternal, "failed to encode JSON")
		}
		return true, nil
	case FormatYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, errors.Wrap(err, errors.ErrInternal, "failed to encode YAML")
		}
		return true, enc.Close()
	}
	return false, nil
}

func (r *Renderer) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.w, format, args...)
}

// RenderRun writes a setup or teardown report
func (r *Renderer) RenderRun(run *lifecycle.RunReport) error {
	if done, err := r.structured(run); done {
		return err
	}

	s := r.styles
	for _, entry := range run.Entries {
		r.printf("%s %s\n", s.Title.Render(string(run.Action)), entry.Entry)

		for _, hook := range entry.Hooks {
			mark := hook.Phase.String()
			switch {
			case hook.Skipped:
				mark += " (empty)"
			case hook.Planned:
				mark += " (dry run)"
			}
			r.printf("%s\n", s.Item.Render(s.Muted.Render(mark)+" "+hook.Command))
			if out := strings.TrimRight(hook.Output, "\n"); out != "" {
				for _, line := range strings.Split(out, "\n") {
					r.printf("%s\n", s.Item.Render("  "+line))
				}
			}
		}

		for _, link := range entry.Links {
			r.printf("%s\n", s.Item.Render(r.linkLine(link)))
		}

		if entry.Error != "" {
			r.printf("%s\n", s.Item.Render(s.Error.Render("failed")+" "+entry.Error))
		}
	}

	counts := run.Counts()
	summary := fmt.Sprintf("%d created, %d removed, %d skipped", counts[links.OutcomeCreated], counts[links.OutcomeRemoved], counts[links.OutcomeSkipped])
	if run.DryRun {
		summary = fmt.Sprintf("dry run: %d planned", counts[links.OutcomePlanned])
	}
	if failed := run.Failed(); failed != nil {
		r.printf("%s %s\n", s.Error.Render("Stopped at"), failed.Entry)
	}
	r.printf("%s\n", s.Muted.Render(summary))
	return nil
}

func (r *Renderer) linkLine(link lifecycle.LinkResult) string {
	s := r.styles
	line := fmt.Sprintf("%-8s %-4s %s", s.ForOutcome(link.Outcome).Render(string(link.Outcome)), link.Mode, s.Path.Render(link.Target))
	if link.Source != "" {
		line += " <- " + s.Path.Render(link.Source)
	}
	return line
}

// RenderStatus writes the derived state of each entry's links
func (r *Renderer) RenderStatus(entries []status.EntryStatus) error {
	if done, err := r.structured(entries); done {
		return err
	}

	s := r.styles
	for _, entry := range entries {
		r.printf("%s\n", s.Title.Render(entry.Entry))
		if len(entry.Links) == 0 {
			r.printf("%s\n", s.Item.Render(s.Muted.Render("no links")))
		}
		for _, link := range entry.Links {
			line := fmt.Sprintf("%-8s %-4s %s", s.ForState(link.State).Render(string(link.State)), link.Mode, s.Path.Render(link.Target))
			if link.Message != "" && link.State != status.StateLinked {
				line += " " + s.Muted.Render("("+link.Message+")")
			}
			r.printf("%s\n", s.Item.Render(line))
			for _, rel := range link.Drift {
				r.printf("%s\n", s.Item.Render("  "+s.Warning.Render("~")+" "+rel))
			}
		}
	}
	return nil
}

// RenderSummary writes a configuration overview
func (r *Renderer) RenderSummary(summary *ConfigSummary) error {
	if done, err := r.structured(summary); done {
		return err
	}

	s := r.styles
	if summary.Path != "" {
		r.printf("%s %s\n", s.Title.Render("Configuration"), s.Path.Render(summary.Path))
	}
	r.printf("%s %s\n", s.Muted.Render("repository"), s.Path.Render(summary.Repository))
	r.printf("%s %s\n", s.Muted.Render("platform  "), summary.System)

	for _, item := range summary.Entries {
		marker := s.Success.Render("*")
		if !item.Eligible {
			marker = s.Muted.Render("-")
		}
		r.printf("%s\n", s.Item.Render(fmt.Sprintf("%s %-16s %-8s %-7s %d links, %d hooks",
			marker, item.Name, item.OS, item.Status, item.Links, item.Hooks)))
	}
	r.printf("%s\n", s.Muted.Render(fmt.Sprintf("%d entries, %d eligible", len(summary.Entries), summary.EligibleCount())))
	return nil
}
