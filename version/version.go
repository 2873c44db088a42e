// Package version exposes build-time identity, settable via ldflags.
package version

//nolint:gochecknoglobals // set by the linker
var (
	name    = "texsieve"
	version = "dev"
	commit  = "unknown"
)

func Name() string {
	return name
}

func Version() string {
	return version
}

func Commit() string {
	return commit
}
