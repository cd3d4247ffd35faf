package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/regcheck/pkg/registration"
	"github.com/dmitrymomot/regcheck/pkg/requestid"
)

const stdinPath = "-"

func newValidateCmd(a *app) *cobra.Command {
	var (
		formatName  string
		failOnError bool
		requestID   string
	)

	cmd := &cobra.Command{
		Use:   "validate [file|-]",
		Short: "Validate a registration record",
		Long: "Read a registration record from a file, or from standard input when the file is omitted or \"-\", " +
			"and print its canonical JSON form or a single-line validation error.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := stdinPath
			if len(args) == 1 {
				path = args[0]
			}

			format := registration.FormatForPath(path)
			if formatName != "" {
				f, err := registration.ParseFormat(formatName)
				if err != nil {
					return err
				}
				format = f
			}

			ctx := cmd.Context()
			if requestID != "" {
				if !requestid.Valid(requestID) {
					return fmt.Errorf("invalid request id %q", requestID)
				}
				ctx = requestid.WithContext(ctx, requestID)
			}

			input, err := readInput(cmd.InOrStdin(), path, a.cfg.MaxInputBytes)
			if err != nil {
				return err
			}

			p := registration.NewProcessor(
				registration.WithFormat(format),
				registration.WithMaxInputSize(a.cfg.MaxInputBytes),
				registration.WithLegacyKeys(a.cfg.LegacyKeys),
				registration.WithLogger(a.logger),
			)
			out := p.Process(ctx, string(input))
			fmt.Fprintln(cmd.OutOrStdout(), out)

			if failOnError && strings.HasPrefix(out, registration.ErrorPrefix) {
				return errRejected
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&formatName, "format", "", "input format: json or yaml (default: from file extension, else json)")
	cmd.Flags().BoolVar(&failOnError, "fail", false, "exit with a non-zero status when the record is rejected")
	cmd.Flags().StringVar(&requestID, "request-id", "", "request id attached to log records (generated when empty)")
	return cmd
}

// readInput reads at most limit+1 bytes so oversized input is still reported
// by the processor instead of being loaded whole.
func readInput(stdin io.Reader, path string, limit int64) ([]byte, error) {
	r := stdin
	if path != stdinPath {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}
