package domain

import (
	"os"
	"slices"
	"strings"
)

const (
	// EnvPath is the name of the executable search path variable.
	EnvPath = "PATH"
	// EnvWinePrefix is the name of the variable selecting the wine prefix.
	EnvWinePrefix = "WINEPREFIX"
)

// ExecutionEnvironment is an immutable set of environment variables for one process.
// It is built once per run and never modified afterwards.
type ExecutionEnvironment struct {
	vars map[string]string
}

// NewExecutionEnvironment builds an environment from base entries ("KEY=VALUE")
// with overrides applied on top. Entries in prependPath are placed in front of
// the base PATH instead of replacing it.
func NewExecutionEnvironment(base []string, overrides map[string]string, prependPath ...string) ExecutionEnvironment {
	vars := make(map[string]string, len(base)+len(overrides)+1)
	for _, entry := range base {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			vars[k] = v
		}
	}

	for k, v := range overrides {
		vars[k] = v
	}

	dirs := make([]string, 0, len(prependPath)+1)
	for _, dir := range prependPath {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) > 0 {
		if sysPath := vars[EnvPath]; sysPath != "" {
			dirs = append(dirs, sysPath)
		}
		vars[EnvPath] = strings.Join(dirs, string(os.PathListSeparator))
	}

	return ExecutionEnvironment{vars: vars}
}

// Get returns the value of key and whether it is set.
func (e ExecutionEnvironment) Get(key string) (string, bool) {
	v, ok := e.vars[key]
	return v, ok
}

// Len returns the number of variables.
func (e ExecutionEnvironment) Len() int {
	return len(e.vars)
}

// Environ returns the variables as sorted "KEY=VALUE" entries suitable for exec.Cmd.Env.
func (e ExecutionEnvironment) Environ() []string {
	result := make([]string, 0, len(e.vars))
	for k, v := range e.vars {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}
