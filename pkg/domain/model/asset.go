package model

// AssetSpec is a configured asset. Path may be a glob pattern; a leading "!" excludes.
type AssetSpec struct {
	Path  string
	Name  string
	Label string
}

// ResolvedAsset is a concrete file to upload. Missing is set when the asset spec matched
// nothing, so the caller can report it instead of dropping it.
type ResolvedAsset struct {
	Path    string
	Name    string
	Label   string
	Missing bool
}

// UploadAsset is a request to attach a file to a release
type UploadAsset struct {
	Path        string
	Name        string
	Label       string
	ContentType string
}

// UploadedAsset is an asset attached to a release
type UploadedAsset struct {
	ID                 int64
	Name               string
	BrowserDownloadURL string
}

// AssetStatus is the outcome of one asset
type AssetStatus string

const (
	AssetUploaded AssetStatus = "uploaded"
	AssetSkipped  AssetStatus = "skipped"
	AssetFailed   AssetStatus = "failed"
)

// AssetResult records what happened to a resolved asset
type AssetResult struct {
	Path   string
	Name   string
	Status AssetStatus
	URL    string
	Err    error
}
