package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

const (
	// MaxSlugBaseLength bounds the title-derived part of a slug
	MaxSlugBaseLength = 50

	// SlugSuffixLength is the number of random base36 characters appended to a slug
	SlugSuffixLength = 5

	base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

var (
	disallowedSlugChars = regexp.MustCompile(`[^a-z0-9\s\p{Zs}-]`)
	whitespaceRuns      = regexp.MustCompile(`[\s\p{Zs}]+`)
	hyphenRuns          = regexp.MustCompile(`-+`)
)

// SlugBase derives the deterministic, title-based prefix of a slug: lowercased,
// restricted to [a-z0-9-], whitespace runs and repeated hyphens collapsed to a
// single hyphen, and cut to MaxSlugBaseLength characters.
func SlugBase(title string) string {
	base := strings.ToLower(title)
	base = disallowedSlugChars.ReplaceAllString(base, "")
	base = whitespaceRuns.ReplaceAllString(base, "-")
	base = hyphenRuns.ReplaceAllString(base, "-")
	base = strings.Trim(base, "- ")
	if len(base) > MaxSlugBaseLength {
		base = strings.TrimRight(base[:MaxSlugBaseLength], "-")
	}
	return base
}

// GenerateSlug returns SlugBase(title) followed by a hyphen and a random
// base36 suffix. Two calls with the same title share the prefix and, with
// overwhelming probability, differ in the suffix.
func GenerateSlug(title string) (string, error) {
	suffix, err := randomBase36(SlugSuffixLength)
	if err != nil {
		return "", err
	}

	base := SlugBase(title)
	if base == "" {
		return suffix, nil
	}
	return base + "-" + suffix, nil
}

func randomBase36(length int) (string, error) {
	max := big.NewInt(int64(len(base36Alphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random bytes: %w", err)
		}
		out[i] = base36Alphabet[n.Int64()]
	}
	return string(out), nil
}
