package translator

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"

	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/domain"
)

// UnknownWords counts words that had no translation. Counts grow until
// Reset; nothing is persisted unless Export is called.
type UnknownWords struct {
	mu     sync.Mutex
	counts map[string]int
}

func NewUnknownWords() *UnknownWords {
	return &UnknownWords{counts: make(map[string]int)}
}

// Record increments the count of the normalized word.
func (u *UnknownWords) Record(word string) {
	key := domain.NormalizeKey(word)
	if key == "" {
		return
	}
	u.mu.Lock()
	u.counts[key]++
	u.mu.Unlock()
}

// Len returns the number of distinct unknown words.
func (u *UnknownWords) Len() int {
	if u == nil {
		return 0
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.counts)
}

// TopN returns the n most frequent words, by count descending and then by
// word. n <= 0 returns every word. A nil counter reports nothing.
func (u *UnknownWords) TopN(n int) []domain.WordCount {
	if u == nil {
		return []domain.WordCount{}
	}
	u.mu.Lock()
	out := make([]domain.WordCount, 0, len(u.counts))
	for w, c := range u.counts {
		out = append(out, domain.WordCount{Word: w, Count: c})
	}
	u.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// Reset clears all counts.
func (u *UnknownWords) Reset() {
	u.mu.Lock()
	u.counts = make(map[string]int)
	u.mu.Unlock()
}

// WriteTo writes every word as a "word,count" line, most frequent first.
func (u *UnknownWords) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var written int64
	for _, wc := range u.TopN(0) {
		n, err := bw.WriteString(wc.Word + "," + strconv.Itoa(wc.Count) + "\n")
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, bw.Flush()
}

// Export writes the report to path. The file is replaced atomically.
func (u *UnknownWords) Export(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".unknown-*.csv")
	if err != nil {
		return fmt.Errorf("create temp report: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := u.WriteTo(tmp); err != nil {
		tmp.Close() //nolint:errcheck
		return fmt.Errorf("write report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close report: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename report: %w", err)
	}
	return nil
}
