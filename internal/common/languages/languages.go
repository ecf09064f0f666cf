package languages

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/hashicorp/go-set/v2"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Languages holds one localizer per loaded catalog, in load order.
type Languages struct {
	tags       []language.Tag
	matcher    language.Matcher
	localizers []*i18n.Localizer
}

type LocalizersItem struct {
	Tag       language.Tag
	Localizer *i18n.Localizer
}

func (l *Languages) GetLocalizers() []LocalizersItem {
	items := make([]LocalizersItem, len(l.tags))
	for i, tag := range l.tags {
		items[i] = LocalizersItem{Tag: tag, Localizer: l.localizers[i]}
	}

	return items
}

// GetLocalizer returns the localizer of the closest loaded catalog, so "ru-RU" gets "ru".
// An unparsable or unmatched locale gets the first catalog.
func (l *Languages) GetLocalizer(locale string) *i18n.Localizer {
	_, idx := language.MatchStrings(l.matcher, locale)

	return l.localizers[idx]
}

// EmbeddedLocales returns the catalog compiled into the binary.
func EmbeddedLocales() fs.FS {
	sub, err := fs.Sub(localeFS, "locales")
	if err != nil {
		panic(err)
	}

	return sub
}

// LoadLanguages reads active.<locale>.toml from localesFS for every requested locale.
// Repeated locales are loaded once. The first locale is the fallback.
func LoadLanguages(localesFS fs.FS, locales []language.Tag) (*Languages, error) {
	if len(locales) == 0 {
		locales = []language.Tag{language.Russian}
	}

	bundle := i18n.NewBundle(locales[0])
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	loaded := set.New[language.Tag](len(locales))
	languages := &Languages{}

	for _, tag := range locales {
		if !loaded.Insert(tag) {
			continue
		}

		file := "active." + tag.String() + ".toml"
		if _, err := bundle.LoadMessageFileFS(localesFS, file); err != nil {
			return nil, fmt.Errorf("failed to load catalog %s: %w", file, err)
		}

		languages.tags = append(languages.tags, tag)
		languages.localizers = append(languages.localizers, i18n.NewLocalizer(bundle, tag.String()))
	}

	languages.matcher = language.NewMatcher(languages.tags)

	return languages, nil
}
