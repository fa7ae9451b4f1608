package lexicon

import (
	"bufio"
	"io"
	"strings"

	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/domain"
)

const (
	byteOrderMark = "\ufeff"
	maxLineBytes  = 1 << 20
)

// scanLines calls fn for every meaningful line of r with its 1-based line
// number. Blank lines and lines starting with '#' are skipped, a leading
// byte order mark is dropped and CRLF endings are tolerated.
func scanLines(r io.Reader, fn func(n int, line string)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	n := 0
	for sc.Scan() {
		n++
		line := sc.Text()
		if n == 1 {
			line = strings.TrimPrefix(line, byteOrderMark)
		}
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		fn(n, line)
	}
	return sc.Err()
}

// ParseVocabulary reads one word per line. Duplicates collapse.
func ParseVocabulary(r io.Reader) (Vocabulary, Report, error) {
	vocab := Vocabulary{}
	var rep Report

	err := scanLines(r, func(_ int, line string) {
		word := domain.NormalizeKey(line)
		if _, ok := vocab[word]; ok {
			rep.Duplicates++
			return
		}
		vocab[word] = struct{}{}
	})
	rep.Entries = len(vocab)
	return vocab, rep, err
}

// ParseDictionary reads "source,target" lines. Lines without exactly one
// comma, or with an empty side, are skipped and listed in the report.
func ParseDictionary(r io.Reader) (Dictionary, Report, error) {
	return parsePairs(r, ",")
}

// ParsePhrases reads "source<TAB>target" lines with the same skip policy
// as ParseDictionary.
func ParsePhrases(r io.Reader) (Dictionary, Report, error) {
	return parsePairs(r, "\t")
}

func parsePairs(r io.Reader, sep string) (Dictionary, Report, error) {
	dict := Dictionary{}
	var rep Report

	err := scanLines(r, func(n int, line string) {
		if c := strings.Count(line, sep); c != 1 {
			rep.Skipped = append(rep.Skipped, MalformedLine{
				Line:   n,
				Text:   line,
				Reason: separatorReason(sep, c),
			})
			return
		}

		source, target, _ := strings.Cut(line, sep)
		key := domain.NormalizeKey(source)
		target = strings.TrimSpace(target)
		if key == "" || target == "" {
			rep.Skipped = append(rep.Skipped, MalformedLine{Line: n, Text: line, Reason: "empty field"})
			return
		}

		if _, ok := dict[key]; ok {
			rep.Duplicates++
		}
		dict[key] = target
	})
	rep.Entries = len(dict)
	return dict, rep, err
}

func separatorReason(sep string, count int) string {
	name := "comma"
	if sep == "\t" {
		name = "tab"
	}
	if count == 0 {
		return "missing " + name
	}
	return "more than one " + name
}
