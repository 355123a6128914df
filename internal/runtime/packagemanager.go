package runtime

import "strings"

// UserAgentEnv is set by package managers to "name/version ..." when they
// run a package binary.
const UserAgentEnv = "npm_config_user_agent"

// Package manager names.
const (
	NPM  = "npm"
	PNPM = "pnpm"
	Yarn = "yarn"
	Bun  = "bun"
	Deno = "deno"
)

// PackageManager identifies the package manager that invoked the process.
type PackageManager struct {
	Name    string
	Version string
}

// DetectPackageManager reads the user agent variable through getenv.
// Without one it reports npm with an unknown version.
func DetectPackageManager(getenv func(string) string) PackageManager {
	ua := strings.TrimSpace(getenv(UserAgentEnv))
	if ua == "" {
		return PackageManager{Name: NPM}
	}

	agent := strings.Fields(ua)[0]
	name, version, _ := strings.Cut(agent, "/")
	if name == "" {
		return PackageManager{Name: NPM}
	}
	return PackageManager{Name: name, Version: version}
}

// legacyYarn reports a yarn 1.x release, which rejects "@latest" in create
// commands.
func (pm PackageManager) legacyYarn() bool {
	return pm.Name == Yarn && strings.HasPrefix(pm.Version, "1.")
}

const npmCreate = "npm create "

// RewriteCreateCommand translates a command starting with "npm create " into
// the equivalent for pm. Other commands are returned unchanged.
func RewriteCreateCommand(command string, pm PackageManager) string {
	if !strings.HasPrefix(command, npmCreate) || pm.Name == NPM {
		return command
	}
	rest := strings.TrimPrefix(command, npmCreate)

	switch pm.Name {
	case PNPM:
		command = "pnpm create " + rest
	case Yarn:
		if pm.legacyYarn() {
			rest = strings.ReplaceAll(rest, "@latest", "")
		}
		command = "yarn create " + rest
	case Bun:
		command = "bun create " + rest
	case Deno:
		command = "deno run -A npm:create-" + rest
	default:
		return command
	}

	// Only npm needs "--" to forward flags to the create package.
	return strings.Replace(command, " -- ", " ", 1)
}
