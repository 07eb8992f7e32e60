// Package translate formats user visible messages for the current locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DEFAULT_LOCALE = "en-US"

var (
	lock    sync.RWMutex
	tag     language.Tag
	printer *message.Printer
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("hexacore: locale: %v", err)
	}

	SetLocale(locales...)
}

// SetLocale selects the best match of locales for message output. With
// no locales, DEFAULT_LOCALE is used.
func SetLocale(locales ...string) {
	if len(locales) == 0 {
		locales = []string{DEFAULT_LOCALE}
	}

	match := message.MatchLanguage(locales...)
	p := message.NewPrinter(match)

	lock.Lock()
	tag = match
	printer = p
	lock.Unlock()
}

// Locale returns the language tag in use.
func Locale() language.Tag {
	lock.RLock()
	defer lock.RUnlock()

	return tag
}

// From formats an en-US Sprintf() style key for the active locale.
func From(key message.Reference, args ...any) string {
	lock.RLock()
	p := printer
	lock.RUnlock()

	return p.Sprintf(key, args...)
}
