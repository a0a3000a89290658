// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate formats user visible assembler messages for the
// current locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

const fallback = "en-US"

var (
	lock    sync.RWMutex
	printer *message.Printer
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("lc3b: locale: %v", err)
	}

	Use(locales...)
}

// Use selects the message language from a list of BCP 47 tags, most
// preferred first. An empty list selects en-US.
func Use(locales ...string) {
	if len(locales) == 0 {
		locales = []string{fallback}
	}

	lock.Lock()
	printer = message.NewPrinter(message.MatchLanguage(locales...))
	lock.Unlock()
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	lock.RLock()
	defer lock.RUnlock()

	return printer.Sprintf(key, args...)
}
