// Package locale holds the translated UI strings.
package locale

import (
	_ "embed"

	"github.com/leonelquinteros/gotext"
)

//go:embed default.po
var defaultCatalog []byte

var catalog = load(defaultCatalog)

func load(data []byte) *gotext.Po {
	po := gotext.NewPo()
	po.Parse(data)
	return po
}

// Get returns the translation of key. Keys with placeholders are formatted by
// the caller with fmt.Sprintf.
// Unknown keys are returned unchanged.
func Get(key string) string {
	return catalog.Get(key)
}

// Use replaces the active catalog with the given .po file contents
func Use(data []byte) {
	catalog = load(data)
}
