package phrases

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ViNN280801/TelegramBot/internal/files"
	"go.uber.org/zap"
)

const maxLineSize = 1024 * 1024

var ErrReadFailure = errors.New("failed to read phrases")

// Phrases is an ordered, read-only collection of lines. Entries are addressed 1..N.
type Phrases []string

func (p Phrases) Len() int {
	return len(p)
}

// At returns the phrase with 1-based index idx.
func (p Phrases) At(idx int) (string, bool) {
	if idx < 1 || idx > len(p) {
		return "", false
	}

	return p[idx-1], true
}

// Load validates path and reads it line by line.
//
// Validation errors are returned as is. A read failure after validation is logged and
// yields an empty collection with a nil error: partial results are never returned.
func Load(path string) (Phrases, error) {
	if err := files.Validate(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		logReadFailure(path, err)

		return Phrases{}, nil
	}
	defer f.Close()

	phrases, err := Read(f)
	if err != nil {
		logReadFailure(path, err)

		return Phrases{}, nil
	}

	zap.L().Info("loaded phrases",
		zap.String("path", path),
		zap.Int("count", phrases.Len()),
	)

	return phrases, nil
}

// Read splits r into lines, dropping only the trailing "\n" or "\r\n" of each line.
func Read(r io.Reader) (Phrases, error) {
	phrases := Phrases{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		phrases = append(phrases, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailure, err)
	}

	return phrases, nil
}

// Save writes one phrase per line, each newline-terminated.
func Save(path string, phrases Phrases) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create phrases file %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	for _, phrase := range phrases {
		if _, err := w.WriteString(phrase + "\n"); err != nil {
			f.Close()

			return fmt.Errorf("failed to write phrases file %s: %w", path, err)
		}
	}

	if err := w.Flush(); err != nil {
		f.Close()

		return fmt.Errorf("failed to flush phrases file %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close phrases file %s: %w", path, err)
	}

	return nil
}

func logReadFailure(path string, err error) {
	if !errors.Is(err, ErrReadFailure) {
		err = fmt.Errorf("%w: %w", ErrReadFailure, err)
	}

	zap.L().Error("error loading phrases from file",
		zap.String("path", path),
		zap.Error(err),
	)
}
