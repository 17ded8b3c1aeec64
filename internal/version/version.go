package version

// AppVersion is the current projctl release version.
// Overridable at build time via -ldflags "-X projctl/internal/version.AppVersion=…".
var AppVersion = "0.3.0"

// Repo is the GitHub repository used for release lookups.
var Repo = "projctl/projctl"
