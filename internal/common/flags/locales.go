package flags

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-set/v2"
	"golang.org/x/text/language"
)

// Locales implements pflag.Value for a comma-separated list of language tags.
type Locales []language.Tag

func (l Locales) String() string {
	var sb strings.Builder
	for i, tag := range l {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(tag.String())
	}

	return sb.String()
}

// Set parses a comma-separated list. Blank entries are skipped, repeats are kept once.
func (l *Locales) Set(value string) error {
	entries := strings.Split(value, ",")
	seen := set.New[language.Tag](len(entries))
	parsed := make(Locales, 0, len(entries))

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		tag, err := language.Parse(entry)
		if err != nil {
			return fmt.Errorf("invalid locale %q: %w", entry, err)
		}

		if seen.Insert(tag) {
			parsed = append(parsed, tag)
		}
	}

	*l = parsed

	return nil
}

func (l *Locales) Type() string {
	return "locales"
}
