package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newReportCommand(flags *Flags) *cobra.Command {
	var from, to, out string

	cmd := &cobra.Command{
		Use:   "report [file]",
		Short: "Collect unknown words from a corpus and write them as CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTranslator(cmd.Context(), cmd, flags, from, to)
			if err != nil {
				return err
			}

			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			if err := translateLines(cmd, t, in, io.Discard); err != nil {
				return err
			}

			if out == "" || out == "-" {
				_, err := t.WriteUnknownWords(cmd.OutOrStdout())
				return err
			}
			if err := t.ExportUnknownWords(out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d unknown words to %s\n", t.Stats().UnknownWords, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "km", "source language (th or km)")
	cmd.Flags().StringVar(&to, "to", "", "target language (defaults to the other language)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output CSV path (default stdout)")
	return cmd
}
