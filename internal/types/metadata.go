package types

// PackageMetadata mirrors the package index JSON document for one
// project. Only the fields the diagnosis pipeline consumes are typed;
// the raw document is available separately for callers that want all
// of it.
type PackageMetadata struct {
	Info     MetadataInfo             `json:"info"`
	Releases map[string][]ReleaseFile `json:"releases"`
}

type MetadataInfo struct {
	Name        string            `json:"name"`
	Author      string            `json:"author"`
	Version     string            `json:"version"`
	Summary     string            `json:"summary"`
	Description string            `json:"description"`
	HomePage    string            `json:"home_page"`
	ProjectURLs map[string]string `json:"project_urls"`
}

type ReleaseFile struct {
	Filename          string `json:"filename"`
	Size              int64  `json:"size"`
	UploadTimeISO8601 string `json:"upload_time_iso_8601"`
}

// Empty reports whether the document carries no project info, which is
// how a non-200 index response surfaces to callers.
func (m PackageMetadata) Empty() bool {
	return m.Info.Name == "" && len(m.Releases) == 0
}
