package version

// Version and GitRef are overridden at build time with
// -ldflags "-X github.com/c9s/bstree/pkg/version.Version=..."
var Version = "v0.1.0-dev"

var GitRef = "unknown"

func String() string {
	return Version + " (" + GitRef + ")"
}
