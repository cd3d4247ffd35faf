package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/regcheck/pkg/registration"
)

var (
	accent = lipgloss.Color("#D97706")
	danger = lipgloss.Color("#EF4444")
)

func newExamplesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Run the built-in demonstration records",
		Long:  "Validate one accepted and two rejected sample records and print each result under a heading.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			r := lipgloss.NewRenderer(w)
			heading := r.NewStyle().Bold(true).Foreground(accent)
			rejected := r.NewStyle().Foreground(danger)

			p := registration.NewProcessor(
				registration.WithMaxInputSize(a.cfg.MaxInputBytes),
				registration.WithLegacyKeys(a.cfg.LegacyKeys),
				registration.WithLogger(a.logger),
			)

			for i, ex := range registration.Examples() {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintln(w, heading.Render("=== "+ex.Title+" ==="))

				// Multi-line output is printed unstyled; Render would pad its lines.
				out := p.Process(cmd.Context(), ex.Payload)
				if strings.HasPrefix(out, registration.ErrorPrefix) {
					out = rejected.Render(out)
				}
				fmt.Fprintln(w, out)
			}
			return nil
		},
	}
}
