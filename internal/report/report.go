// Package report renders catalog contents as styled terminal text.
// Styling is optional so that piped output stays plain.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/marsquake/internal/mars"
	"github.com/vvka-141/marsquake/pkg/catalog"
)

// Options control which event sections are included.
type Options struct {
	IncludeMagnitudes bool
	IncludePicks      bool
	IncludeArrivals   bool
	IncludeOrigins    bool
}

// DefaultOptions matches the default report shape: magnitudes and
// arrivals in, the full origin and pick listings out.
func DefaultOptions() Options {
	return Options{IncludeMagnitudes: true, IncludeArrivals: true}
}

// Renderer writes formatted report text to an output stream.
type Renderer struct {
	w      io.Writer
	styled bool
}

// NewRenderer creates a renderer. When styled is false all lipgloss
// styling is bypassed and plain text is written.
func NewRenderer(w io.Writer, styled bool) *Renderer {
	return &Renderer{w: w, styled: styled}
}

func (r *Renderer) render(style lipgloss.Style, s string) string {
	if !r.styled {
		return s
	}
	return style.Render(s)
}

// Event writes a multi-line report for a single event.
func (r *Renderer) Event(ev *catalog.Event, opts Options) {
	fmt.Fprintf(r.w, "%s %s [%s]\n",
		r.render(HeaderStyle, "Event:"),
		r.render(NameStyle, ev.Name()),
		ev.PublicID())
	fmt.Fprintf(r.w, "\tMars event type: %s\n", ev.MarsType())
	fmt.Fprintf(r.w, "\tMars event type interpretation: %s\n", ev.Interpretation())
	fmt.Fprintf(r.w, "\tEarth event type: %s\n", ev.EarthType())
	fmt.Fprintf(r.w, "\tLocation quality: %s\n",
		r.render(QualityStyle(ev.Quality()), ev.Quality()))
	fmt.Fprintf(r.w, "\tNumber of origins: %d\n", len(ev.Origins()))

	if opts.IncludeOrigins {
		fmt.Fprintln(r.w, "\tOrigins:")
		for _, o := range ev.Origins() {
			fmt.Fprintln(r.w, "\t- "+o.String())
		}
	}

	if po := ev.PreferredOrigin(); po == nil {
		fmt.Fprintf(r.w, "\tPreferred origin: %s\n", r.render(MissingStyle, "None"))
	} else {
		fmt.Fprintln(r.w, "\tPreferred origin:")
		fmt.Fprintln(r.w, "\t- "+po.String())
		lmst, sol := mars.UTCToLMST(po.Time())
		fmt.Fprintf(r.w, "\t  LMST: sol %d, %s\n", sol, lmst.Format("15:04:05"))
	}

	if pm := ev.PreferredMagnitude(); pm == nil {
		fmt.Fprintf(r.w, "\tPreferred magnitude: %s\n", r.render(MissingStyle, "None"))
	} else {
		fmt.Fprintln(r.w, "\tPreferred magnitude:")
		fmt.Fprintln(r.w, "\t- "+pm.String())
	}

	if opts.IncludeMagnitudes {
		fmt.Fprintln(r.w, "\tMagnitudes:")
		for _, m := range ev.Magnitudes() {
			fmt.Fprintln(r.w, "\t├─ "+m.String())
		}
	}

	if opts.IncludePicks && len(ev.Picks()) > 0 {
		fmt.Fprintln(r.w, "\tPicks:")
		for _, p := range ev.Picks() {
			fmt.Fprintln(r.w, "\t├─ "+p.String())
		}
	}

	if opts.IncludeArrivals {
		if po := ev.PreferredOrigin(); po != nil {
			fmt.Fprintln(r.w, "\tArrivals (preferred origin):")
			for _, a := range po.Arrivals() {
				fmt.Fprintln(r.w, "\t├─ "+a.String())
			}
		}
	}
	fmt.Fprintln(r.w, r.render(RuleStyle, "---"))
}

// Catalog writes the catalog header, a report per event, and a footer.
func (r *Renderer) Catalog(cat *catalog.Catalog, opts Options) {
	source := cat.Source()
	if source == "" {
		source = "Unknown"
	}
	fmt.Fprintf(r.w, "%s %s [%d events]\n",
		r.render(TitleStyle, "Catalog:"), source, cat.Len())
	for _, ev := range cat.Events() {
		r.Event(ev, opts)
	}
	fmt.Fprintln(r.w, r.render(RuleStyle, "----------------------"))
	fmt.Fprintf(r.w, "%s %s [%d events]\n",
		r.render(TitleStyle, "Catalog:"), source, cat.Len())
	fmt.Fprintln(r.w, r.render(RuleStyle, "--- End of catalog ---"))
}

// Breakdown writes per-type, per-quality event counts. Types and
// qualities are sorted for stable output.
func (r *Renderer) Breakdown(cat *catalog.Catalog) {
	breakdown := cat.Breakdown()

	types := make([]string, 0, len(breakdown))
	for t := range breakdown {
		types = append(types, t)
	}
	sort.Strings(types)

	fmt.Fprintln(r.w, r.render(TitleStyle, "Catalog breakdown:"))
	for _, t := range types {
		qualities := breakdown[t]
		total := 0
		for _, n := range qualities {
			total += n
		}
		label := t
		if label == "" {
			label = "(untyped)"
		}
		fmt.Fprintf(r.w, "  %-10s [%d events]\n", label, total)

		codes := make([]string, 0, len(qualities))
		for q := range qualities {
			codes = append(codes, q)
		}
		sort.Strings(codes)
		for _, q := range codes {
			fmt.Fprintf(r.w, "    |-- %s: %d\n",
				r.render(QualityStyle(q), fmt.Sprintf("%-2s", q)), qualities[q])
		}
	}
}

// SortedByDistance writes event names with epicentral distances in
// ascending order. Events without a located preferred origin are
// listed separately.
func (r *Renderer) SortedByDistance(cat *catalog.Catalog) {
	names, distances := cat.SortByDistance()

	fmt.Fprintln(r.w, r.render(TitleStyle, "Events by epicentral distance:"))
	for i, name := range names {
		km := mars.DegreesToKilometers(distances[i])
		fmt.Fprintf(r.w, "  %-8s %7.2f deg  (%8.1f km)\n", name, distances[i], km)
	}

	var unlocated []string
	for _, ev := range cat.Events() {
		if !contains(names, ev.Name()) {
			unlocated = append(unlocated, ev.Name())
		}
	}
	if len(unlocated) > 0 {
		fmt.Fprintf(r.w, "  %s %s\n",
			r.render(MissingStyle, "Without distance:"),
			strings.Join(unlocated, ", "))
	}
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
