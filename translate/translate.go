// Package translate selects a message printer for the user's locale.
//
// Message keys are en-US format strings. A pt-BR catalog is registered for
// the operator console.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Supported languages, the first being the fallback.
var supported = []language.Tag{
	language.AmericanEnglish,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(supported)

var printer *message.Printer

func init() {
	for key, msg := range _pt_BR {
		err := message.SetString(language.BrazilianPortuguese, key, msg)
		if err != nil {
			log.Printf("fpgamat: catalog: %v", err)
		}
	}

	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("fpgamat: locale: %v", err)
	}

	printer = NewPrinter(locales...)
}

// NewPrinter returns a printer for the best supported match of the locales.
// Unparsable locales are ignored; with no match, en-US is used.
func NewPrinter(locales ...string) *message.Printer {
	var tags []language.Tag
	for _, loc := range locales {
		tag, err := language.Parse(loc)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}

	tag := supported[0]
	if len(tags) > 0 {
		_, index, confidence := matcher.Match(tags...)
		if confidence != language.No {
			tag = supported[index]
		}
	}

	return message.NewPrinter(tag)
}

// Use replaces the printer used by From.
func Use(locales ...string) {
	printer = NewPrinter(locales...)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
