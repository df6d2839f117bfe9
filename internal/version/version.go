// internal/version/version.go
package version

// Version is stamped at release; overridable via -ldflags.
var Version = "0.2.0"
