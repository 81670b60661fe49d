package commands

// Version information - these will be set at build time
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var versionTemplate = `jay version {{.Version}}
  Git commit: ` + GitCommit + `
  Build date: ` + BuildDate + `
`
