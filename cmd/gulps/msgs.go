package gulps

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Scaffold modular gulp tasks into a JavaScript project"
	MsgGenerateShort   = "Generate gulp tasks and install their dependencies"
	MsgPlanShort       = "Show what generate would write and install"
	MsgTasksShort      = "List the available tasks and platforms"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages into a directory"

	// Status messages
	MsgCancelled       = "Cancelled, nothing was written."
	MsgInstalling      = "Installing packages with %s\n"
	MsgManWritten      = "Man pages written to %s\n"
	MsgVersionFormat   = "gulps version %s\n"
	MsgCommitFormat    = "  commit: %s\n"
	MsgBuiltFormat     = "  built:  %s\n"
	MsgUnknownFormat   = "unknown format %q, expected one of %s"
	MsgUserConfigFound = "# user config: %s\n"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrEncodePlan = "failed to encode plan"
	MsgErrManPages   = "failed to generate man pages"

	// Flag descriptions
	MsgFlagVerbose        = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun         = "Preview changes without writing or installing anything"
	MsgFlagForce          = "Overwrite files that already exist"
	MsgFlagConfig         = "Config file to load after the user and project files"
	MsgFlagFeature        = "Generate the %s task: %s"
	MsgFlagPlatform       = "Add %s stylesheets and fonts"
	MsgFlagRepository     = "Repository URL used by the changelog task"
	MsgFlagNonInteractive = "Never prompt, use flags and configured defaults"
	MsgFlagAccessible     = "Use accessible prompts for screen readers"
	MsgFlagSkipInstall    = "Write the files but do not install npm packages"
	MsgFlagClient         = "Package manager to install with (npm, yarn, pnpm)"
	MsgFlagTaskDir        = "Directory, relative to the project, for task modules"
	MsgFlagFormat         = "Output format: text, json, yaml or toml"
	MsgFlagDefaults       = "Print the commented defaults instead of the effective config"
	MsgFlagPath           = "Print the user config file path"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/generate-long.txt
	msgGenerateLongRaw string
	MsgGenerateLong    = strings.TrimSpace(msgGenerateLongRaw)

	//go:embed msgs/generate-example.txt
	msgGenerateExampleRaw string
	MsgGenerateExample    = strings.TrimRight(msgGenerateExampleRaw, "\n")

	//go:embed msgs/plan-long.txt
	msgPlanLongRaw string
	MsgPlanLong    = strings.TrimSpace(msgPlanLongRaw)

	//go:embed msgs/plan-example.txt
	msgPlanExampleRaw string
	MsgPlanExample    = strings.TrimRight(msgPlanExampleRaw, "\n")

	//go:embed msgs/tasks-long.txt
	msgTasksLongRaw string
	MsgTasksLong    = strings.TrimSpace(msgTasksLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
