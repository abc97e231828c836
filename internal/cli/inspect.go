package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dotgrid-tools/dotgrid/pkg/grid"
	"github.com/dotgrid-tools/dotgrid/pkg/pdfinfo"
)

// newInspectCmd creates the inspect command that prints page geometry.
func newInspectCmd() *cobra.Command {
	var validate bool

	cmd := &cobra.Command{
		Use:   "inspect [input.pdf]",
		Short: "Show page count and dimensions of a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), args[0], validate)
		},
	}

	cmd.Flags().BoolVar(&validate, "validate", false, "run structural validation on the document")

	return cmd
}

// runInspect prints the page count and per-page media box dimensions,
// in points and millimeters.
func runInspect(ctx context.Context, input string, validate bool) error {
	logger := loggerFromContext(ctx)
	logger.Debugf("Inspecting %s", input)

	info, err := pdfinfo.Read(input)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s pages\n", input, StyleNumber.Render(strconv.Itoa(info.PageCount)))
	for i, p := range info.Pages {
		printDetail("page %d: %.2f x %.2f pt (%.1f x %.1f mm)",
			i+1, p.Width, p.Height, grid.Millimeters(p.Width), grid.Millimeters(p.Height))
	}

	if validate {
		if err := pdfinfo.Validate(input); err != nil {
			return err
		}
		printSuccess("Validation passed")
	}
	return nil
}
