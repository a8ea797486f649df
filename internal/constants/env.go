// Where: cli/internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize environment variable names to avoid typos and inconsistencies.
package constants

const (
	// Selection Overrides
	EnvRDLWorkspace   = "RDL_WORKSPACE"
	EnvRDLProject     = "RDL_PROJECT"
	EnvRDLProjectName = "RDL_PROJECT_NAME"

	// Launcher Configuration
	EnvRDLLauncher = "RDL_LAUNCHER"

	// Config Location
	EnvRDLConfigPath = "RDL_CONFIG_PATH"
	EnvRDLConfigHome = "RDL_CONFIG_HOME"

	// Behavior Toggles
	EnvRDLInteractive = "RDL_INTERACTIVE"
)

// Host environment suffixes combined with the brand prefix by envutil.
const (
	HostSuffixWorkspace   = "WORKSPACE"
	HostSuffixProject     = "PROJECT"
	HostSuffixProjectName = "PROJECT_NAME"
	HostSuffixLauncher    = "LAUNCHER"
	HostSuffixConfigPath  = "CONFIG_PATH"
	HostSuffixConfigHome  = "CONFIG_HOME"
	HostSuffixInteractive = "INTERACTIVE"
)
