package domain

import "slices"

// RequiredDependencies are the host commands Winetricks relies on.
var RequiredDependencies = []string{"7z", "cabextract", "zenity", "unzip", "curl", "wine"}

// MissingDependencyMessage is the warning shown for a dependency that is not on PATH.
func MissingDependencyMessage(name string) string {
	return name + " not installed! Winetricks might fail to install some packages or even open"
}

// DependencyReport lists the dependencies that could not be found.
type DependencyReport struct {
	Missing []string
}

// Add records a missing dependency, keeping the list sorted and unique.
func (r *DependencyReport) Add(name string) {
	i, found := slices.BinarySearch(r.Missing, name)
	if found {
		return
	}
	r.Missing = slices.Insert(r.Missing, i, name)
}

// OK reports whether every dependency was found.
func (r DependencyReport) OK() bool {
	return len(r.Missing) == 0
}

// Messages returns one warning per missing dependency.
func (r DependencyReport) Messages() []string {
	out := make([]string, 0, len(r.Missing))
	for _, name := range r.Missing {
		out = append(out, MissingDependencyMessage(name))
	}
	return out
}
