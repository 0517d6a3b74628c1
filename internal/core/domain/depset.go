// Package domain contains the core domain models for dependency reconciliation.
package domain

import "strings"

// DependencySet is the declared, ordered set of package names for a project.
// Entries are stored case-folded and duplicate-free; first-seen order is
// preserved so that serialization stays stable across edits.
type DependencySet []string

// Fold returns the canonical form of a package name.
// Pip treats package names case-insensitively, so all comparison and storage
// happens on the folded form.
func Fold(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Normalize folds case and removes duplicates while preserving first-seen order.
// It is idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(names []string) DependencySet {
	set := make(DependencySet, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		folded := Fold(name)
		if folded == "" || seen[folded] {
			continue
		}
		seen[folded] = true
		set = append(set, folded)
	}
	return set
}

// Add returns the union of the set and the given names.
// Existing entries keep their position; new names are appended in the order
// given, skipping any already present after folding.
func (s DependencySet) Add(names ...string) DependencySet {
	out := make(DependencySet, len(s), len(s)+len(names))
	copy(out, s)
	seen := make(map[string]bool, len(s)+len(names))
	for _, name := range s {
		seen[name] = true
	}
	for _, name := range names {
		folded := Fold(name)
		if folded == "" || seen[folded] {
			continue
		}
		seen[folded] = true
		out = append(out, folded)
	}
	return out
}

// Remove returns the set with the given names (case-folded) removed,
// preserving the relative order of the survivors.
func (s DependencySet) Remove(names ...string) DependencySet {
	drop := make(map[string]bool, len(names))
	for _, name := range names {
		drop[Fold(name)] = true
	}
	out := make(DependencySet, 0, len(s))
	for _, name := range s {
		if !drop[name] {
			out = append(out, name)
		}
	}
	return out
}

// Contains reports whether the set holds the given name after folding.
func (s DependencySet) Contains(name string) bool {
	folded := Fold(name)
	for _, entry := range s {
		if entry == folded {
			return true
		}
	}
	return false
}

// Missing returns the declared names absent from installed, in declared order.
// This is the install batch for a reconciliation run.
func (s DependencySet) Missing(installed []string) []string {
	present := make(map[string]bool, len(installed))
	for _, name := range installed {
		present[Fold(name)] = true
	}
	var missing []string
	for _, name := range s {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	return missing
}

// Extra returns the installed names not declared in the set, in the order
// installed was reported. This is the uninstall batch for one removal pass.
func (s DependencySet) Extra(installed []string) []string {
	declared := make(map[string]bool, len(s))
	for _, name := range s {
		declared[name] = true
	}
	var extra []string
	for _, name := range installed {
		if !declared[Fold(name)] {
			extra = append(extra, Fold(name))
		}
	}
	return extra
}
