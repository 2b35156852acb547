// Package notation rewrites command strings from the universal button tokens
// the importers produce into per-game native notation. Rewrites are a single
// regexp pass over all mapped keys, longest key first so multi-button
// sequences never lose to one of their substrings.
package notation

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"okizeme/entity"
)

// Map is a literal substring to replacement table.
type Map map[string]string

// sharedMaps are the named mappings a user can enable per game.
var sharedMaps = map[string]Map{
	// directions as numpad tokens
	"arrows": {
		":1:": "↙", ":2:": "↓", ":3:": "↘",
		":4:": "←", ":6:": "→",
		":7:": "↖", ":8:": "↑", ":9:": "↗",
	},
	// strip token colons for plain ascii output
	"ascii": {
		":A:": "A", ":B:": "B", ":C:": "C", ":D:": "D",
		":A+B:": "A+B", ":A+C:": "A+C", ":B+C:": "B+C",
		":A+B+C:": "A+B+C", ":C+D:": "C+D", ":A+D:": "A+D",
	},
}

// gameOverrides map universal buttons back to each game's native names.
// The importers normalize the other way (SoulCalibur K->C, G->D).
var gameOverrides = map[entity.GameID]Map{
	entity.SoulCalibur6: {
		":C:": "K", ":D:": "G",
		":B+C:": "B+K", ":A+C:": "A+K", ":C+D:": "K+G", ":A+D:": "A+G",
	},
	entity.Tekken8: {
		":A:": "1", ":B:": "2", ":C:": "3", ":D:": "4",
		":A+B:": "1+2", ":C+D:": "3+4", ":A+C:": "1+3", ":B+C:": "2+3",
	},
}

// SharedMapNames lists the enableable shared mappings.
func SharedMapNames() (names []string) {
	for name := range sharedMaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// DefaultMaps is the per-game default enabled set.
func DefaultMaps(game entity.GameID) []string {
	return []string{"ascii"}
}

// Build merges the enabled shared maps with the game's overrides,
// overrides winning on key collision. Unknown names are skipped.
func Build(game entity.GameID, enabled []string) Map {

	merged := Map{}
	for _, name := range enabled {
		for k, v := range sharedMaps[name] {
			merged[k] = v
		}
	}
	for k, v := range gameOverrides[game] {
		merged[k] = v
	}
	return merged
}

// Fingerprint is a cheap structural key for an enabled-map set; translators
// and their caches are rebuilt exactly when it changes.
func Fingerprint(game entity.GameID, enabled []string) string {

	names := make([]string, len(enabled))
	copy(names, enabled)
	sort.Strings(names)
	return string(game) + "|" + strings.Join(names, ",")
}

// Translator applies one compiled mapping, memoizing per-input results.
type Translator struct {
	fingerprint string
	re          *regexp.Regexp
	repl        Map

	mu    sync.Mutex
	cache map[string]string
}

// compiled regexps keyed by fingerprint; a game switch lands back here
// instead of recompiling.
var (
	compileMu    sync.Mutex
	compileCache = map[string]*regexp.Regexp{}
)

// NewTranslator builds a translator for a game and enabled-map set.
// Zero mapped keys compiles to the identity rewrite.
func NewTranslator(game entity.GameID, enabled []string) *Translator {

	fp := Fingerprint(game, enabled)
	repl := Build(game, enabled)

	compileMu.Lock()
	re, ok := compileCache[fp]
	if !ok {
		re = compile(repl)
		compileCache[fp] = re
	}
	compileMu.Unlock()

	return &Translator{
		fingerprint: fp,
		re:          re,
		repl:        repl,
		cache:       map[string]string{},
	}
}

// compile builds one alternation over all keys, longest first, escaped.
// Returns nil for an empty map rather than a degenerate empty alternation.
func compile(repl Map) *regexp.Regexp {

	if len(repl) == 0 {
		return nil
	}

	keys := make([]string, 0, len(repl))
	for k := range repl {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = regexp.QuoteMeta(k)
	}

	return regexp.MustCompile(strings.Join(quoted, "|"))
}

// Fingerprint returns the structural key this translator was built from.
func (tr *Translator) Fingerprint() string {
	return tr.fingerprint
}

// Translate rewrites every mapped token in text, unmatched text unchanged.
func (tr *Translator) Translate(text string) string {

	if tr == nil || tr.re == nil || text == "" {
		return text
	}

	tr.mu.Lock()
	out, ok := tr.cache[text]
	tr.mu.Unlock()
	if ok {
		return out
	}

	out = tr.re.ReplaceAllStringFunc(text, func(match string) string {
		return tr.repl[match]
	})

	tr.mu.Lock()
	tr.cache[text] = out
	tr.mu.Unlock()
	return out
}
