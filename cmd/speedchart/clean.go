package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/midbel/speedchart/clean"
)

func cleanCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "clean <input>",
		Short: "Normalize a spreadsheet export into a name,speed,diet csv file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			var buf bytes.Buffer
			rep, err := clean.Clean(r, &buf)
			if err != nil {
				return err
			}
			a.logger().Info("clean.done", "input", args[0], "rows", rep.Rows, "kept", rep.Kept)
			printReport(cmd.ErrOrStderr(), rep)

			if output == "" || output == "-" {
				_, err = buf.WriteTo(cmd.OutOrStdout())
				return err
			}
			return os.WriteFile(output, buf.Bytes(), 0o644)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func printReport(w io.Writer, rep clean.Report) {
	fmt.Fprintln(w, titleStyle.Render(rep.String()))
	reasons := make([]string, 0, len(rep.Dropped))
	for r := range rep.Dropped {
		reasons = append(reasons, r)
	}
	sort.Strings(reasons)
	for _, r := range reasons {
		fmt.Fprintf(w, "%s %d\n", keyStyle.Render(r), rep.Dropped[r])
	}
}
