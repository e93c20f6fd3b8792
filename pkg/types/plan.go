package types

// ArtifactKind identifies how a lab artifact is produced.
type ArtifactKind string

const (
	KindDirectory   ArtifactKind = "directory"
	KindDownload    ArtifactKind = "download"
	KindPlaceholder ArtifactKind = "placeholder"
	KindLiteral     ArtifactKind = "literal"
)

// Artifact is one filesystem entry produced by a scaffold run.
type Artifact struct {
	Path   string       `json:"path" yaml:"path"`
	Kind   ArtifactKind `json:"kind" yaml:"kind"`
	Source string       `json:"source,omitempty" yaml:"source,omitempty"`
}

// Plan lists the artifacts of a scaffold run in execution order.
type Plan struct {
	Dir       string     `json:"dir" yaml:"dir"`
	Artifacts []Artifact `json:"artifacts" yaml:"artifacts"`
}
