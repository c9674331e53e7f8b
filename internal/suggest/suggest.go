// Package suggest produces tagline suggestions for a banner text. With
// no credential configured it answers from a deterministic offline
// table; the networked service is an external collaborator behind the
// same signature.
package suggest

import (
	"sort"
	"strings"
)

// APIKeyEnv names the environment variable that enables the external
// suggestion service.
const APIKeyEnv = "BANNERFORGE_API_KEY"

var fallbacks = map[string][]string{
	"bannerforge": {
		"Forge Your Visual Identity",
		"Create. Design. Deploy.",
		"Professional Banners Made Simple",
	},
}

var generic = []string{
	"See What Others Miss",
	"Innovation Through Design",
	"Crafted with Precision",
}

// Taglines returns up to n suggestions for text. Offline lookup matches
// a table key as a lowercase substring of the text; no match yields the
// generic list.
func Taglines(text string, n int) []string {
	if n <= 0 {
		return nil
	}
	// A networked client would be consulted here when APIKeyEnv is set;
	// the offline table keeps results deterministic meanwhile.
	list := offline(text)
	if n > len(list) {
		n = len(list)
	}
	return append([]string(nil), list[:n]...)
}

func offline(text string) []string {
	lower := strings.ToLower(text)
	keys := make([]string, 0, len(fallbacks))
	for key := range fallbacks {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if strings.Contains(lower, key) {
			return fallbacks[key]
		}
	}
	return generic
}
