// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate formats user visible text for the current locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const defaultLocale = "en-US"

var (
	tag     language.Tag
	printer *message.Printer
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("instrgen: locale: %v", err)
	}

	SetLocales(locales...)
}

// SetLocales selects the printer for the best match of the given locales.
// With no locales, en-US is used.
func SetLocales(locales ...string) {
	if len(locales) == 0 {
		locales = []string{defaultLocale}
	}

	tag = message.MatchLanguage(locales...)
	printer = message.NewPrinter(tag)
}

// Tag returns the language the printer was matched to.
func Tag() language.Tag {
	return tag
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
