package detector

// Detect exposes detect with the environment spelled out.
func Detect(stdoutTTY bool, ci, term, override string) OutputMode {
	return detect(environment{stdoutTTY: stdoutTTY, ci: ci, term: term, override: override})
}
