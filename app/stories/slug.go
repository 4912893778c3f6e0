package stories

import (
	"errors"
	"regexp"
	"strings"
)

// Story group and name validation errors. Both end up in URL paths.
var (
	ErrSlugEmpty              = errors.New("must not be empty")
	ErrSlugTooLong            = errors.New("must be at most 63 characters")
	ErrSlugInvalidChars       = errors.New("must contain only lowercase letters, numbers, and hyphens")
	ErrSlugConsecutiveHyphens = errors.New("cannot contain consecutive hyphens")
)

// slugRegex: starts with a lowercase letter, ends with a letter or digit.
var slugRegex = regexp.MustCompile(`^[a-z]([a-z0-9-]*[a-z0-9])?$`)

func validateSlug(slug string) error {
	switch {
	case slug == "":
		return ErrSlugEmpty
	case len(slug) > 63:
		return ErrSlugTooLong
	case strings.Contains(slug, "--"):
		return ErrSlugConsecutiveHyphens
	case !slugRegex.MatchString(slug):
		return ErrSlugInvalidChars
	}
	return nil
}
