// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package vault

import (
	"regexp"
	"strings"
)

// MaxSlugLength caps generated filenames.
const MaxSlugLength = 50

var (
	// invalidCharRegex matches characters that are unsafe in filenames
	invalidCharRegex = regexp.MustCompile(`[<>:"/\\|?*]`)
	// whitespaceRegex matches runs of whitespace
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// SanitizeFilename derives a filesystem-safe slug from a note title:
// invalid path characters are stripped, whitespace runs collapse to a
// single hyphen, and the result is length-capped. The function is
// idempotent: sanitizing an already-sanitized name yields it unchanged.
func SanitizeFilename(name string) string {
	safe := invalidCharRegex.ReplaceAllString(name, "")
	safe = whitespaceRegex.ReplaceAllString(strings.TrimSpace(safe), "-")
	if runes := []rune(safe); len(runes) > MaxSlugLength {
		safe = string(runes[:MaxSlugLength])
	}
	return safe
}

// SlugToName renders a slug back into a human-readable note name:
// hyphens become spaces and each word is capitalized.
func SlugToName(slug string) string {
	words := strings.Split(strings.ReplaceAll(slug, "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
