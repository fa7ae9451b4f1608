package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/translator"
)

const maxLineBytes = 1 << 20

func newTextCommand(flags *Flags) *cobra.Command {
	var (
		from, to string
		unknown  int
	)

	cmd := &cobra.Command{
		Use:   "text [file]",
		Short: "Translate a file or stdin line by line",
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

			if err := translateLines(cmd, t, in, cmd.OutOrStdout()); err != nil {
				return err
			}

			if unknown > 0 {
				w := cmd.ErrOrStderr()
				for _, wc := range t.UnknownWordReport(unknown) {
					fmt.Fprintf(w, "%s\t%d\n", wc.Word, wc.Count)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "th", "source language (th or km)")
	cmd.Flags().StringVar(&to, "to", "", "target language (defaults to the other language)")
	cmd.Flags().IntVar(&unknown, "unknown", 0, "print the N most frequent unknown words to stderr")
	return cmd
}

// translateLines keeps line breaks intact; each line is translated on its
// own.
func translateLines(cmd *cobra.Command, t *translator.Translator, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	bw := bufio.NewWriter(out)

	for sc.Scan() {
		line, err := t.TranslateText(cmd.Context(), sc.Text())
		if err != nil {
			return err
		}
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return bw.Flush()
}
