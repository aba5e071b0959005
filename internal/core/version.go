package core

import (
	"regexp"

	pep440 "github.com/aquasecurity/go-pep440-version"

	"pip-doctor/internal/types"
)

// preReleaseSegment matches PEP 440 pre-release and dev markers
// (1.2a1, 1.2.0b2, 1.2rc1, 1.2.dev3).
var preReleaseSegment = regexp.MustCompile(`(?i)\d(?:[._-]?(?:a|alpha|b|beta|c|rc|pre|preview)[._-]?\d*|[._-]?dev[._-]?\d*)`)

// LatestVersion returns the highest released version that is not a
// pre-release, or empty when no release parses. Keys that are not
// valid PEP 440 versions are skipped.
func LatestVersion(releases map[string][]types.ReleaseFile) string {
	var best string
	var bestParsed pep440.Version
	for candidate := range releases {
		if preReleaseSegment.MatchString(candidate) {
			continue
		}
		parsed, err := pep440.Parse(candidate)
		if err != nil {
			continue
		}
		if best == "" || parsed.Compare(bestParsed) > 0 {
			best = candidate
			bestParsed = parsed
		}
	}
	return best
}

// LatestReleaseFile returns the first file of the release pinned by
// info.version, the way the index lists the current release's
// artifacts. ok is false when the version has no files.
func LatestReleaseFile(metadata types.PackageMetadata) (types.ReleaseFile, bool) {
	files, ok := metadata.Releases[metadata.Info.Version]
	if !ok || len(files) == 0 {
		return types.ReleaseFile{}, false
	}
	return files[0], true
}
