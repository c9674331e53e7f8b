package version

// Version is the release version, overridable at link time.
var Version = "2.0.0"
