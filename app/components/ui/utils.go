package ui

import "github.com/vango-dev/vango-ui/pkg/tw"

// CN merges class sources, resolving utility conflicts so the last source
// wins. See tw.CN for the accepted source kinds.
func CN(sources ...any) string {
	return tw.CN(sources...)
}
