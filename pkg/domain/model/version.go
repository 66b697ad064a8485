package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/stevedore/pkg/domain/types"
)

// TagRefPrefix is the reference prefix of a tag creation trigger
const TagRefPrefix = "refs/tags/"

// ResolveVersion derives the release version from the triggering git
// reference. Only tag references are accepted; any other reference kind
// means the pipeline was wired to the wrong trigger and must fail before
// any external call is made.
func ResolveVersion(ref string) (string, error) {
	if !strings.HasPrefix(ref, TagRefPrefix) {
		return "", goerr.New("trigger reference is not a tag",
			goerr.V("ref", ref),
			goerr.T(types.ErrTagConfig))
	}

	version := strings.TrimPrefix(ref, TagRefPrefix)
	if version == "" {
		return "", goerr.New("tag reference has no version",
			goerr.V("ref", ref),
			goerr.T(types.ErrTagConfig))
	}

	return version, nil
}
