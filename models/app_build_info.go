package models

// BuildInfoUnknown stands in for build metadata the linker did not inject.
const BuildInfoUnknown = "N/A"

// AppBuildInfo is the version, date and commit stamped into the
// cpf-validator binary with -ldflags.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo replaces empty values with [BuildInfoUnknown].
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orUnknown(buildVersion),
		buildDate:    orUnknown(buildDate),
		buildCommit:  orUnknown(buildCommit),
	}
}

func orUnknown(s string) string {
	if s == "" {
		return BuildInfoUnknown
	}
	return s
}

func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// HasVersion reports whether a release version was injected at build time.
// Such a version is served by GET /api/version/ instead of the configured
// default.
func (a AppBuildInfo) HasVersion() bool {
	return a.buildVersion != BuildInfoUnknown
}
