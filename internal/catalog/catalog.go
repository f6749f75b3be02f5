// Package catalog holds the packages each installable module is expected to
// leave on the system, and resolves them against the selected modules.
package catalog

import (
	"fmt"

	"github.com/iotempower/installcheck/internal/options"
)

// Manager identifies the package manager that owns a package.
type Manager string

const (
	Apt Manager = "apt"
	Npm Manager = "npm"
)

// Package is one catalog entry.
type Package struct {
	Name    string
	Manager Manager
	Module  string
}

// packages is ordered; checks are reported in this order within a module.
var packages = [...]Package{
	{"python3.11-venv", Apt, "general"},
	{"git", Apt, "general"},
	{"jq", Apt, "general"},
	{"make", Apt, "general"},
	{"curl", Apt, "general"},
	{"nodejs", Apt, "general"},
	{"haveged", Apt, "general"},
	{"python3-dev", Apt, "general"},
	{"terminal-kit", Npm, "general"},
	{"g++", Apt, "cloud_commander"},
	{"gritty", Npm, "cloud_commander"},
	{"cloudcmd", Npm, "cloud_commander"},
	{"node-red", Npm, "node_red"},
	{"debian-keyring", Apt, "caddy"},
	{"apt-transport-https", Apt, "caddy"},
	{"debian-archive-keyring", Apt, "caddy"},
	{"caddy", Apt, "caddy"},
	{"mosquitto-clients", Apt, "mosquitto"},
	{"mosquitto", Apt, "mosquitto"},
}

// Packages returns a copy of the full catalog in order.
func Packages() []Package {
	out := make([]Package, len(packages))
	copy(out, packages[:])
	return out
}

// Modules returns the distinct modules of the catalog in first-seen order.
func Modules() []string {
	return modulesOf(packages[:])
}

func modulesOf(table []Package) []string {
	seen := make(map[string]bool)
	var mods []string
	for _, p := range table {
		if !seen[p.Module] {
			seen[p.Module] = true
			mods = append(mods, p.Module)
		}
	}
	return mods
}

// Check is a package that must be present because its module was selected.
type Check struct {
	Name    string
	Manager Manager
	Module  string
}

// Label identifies the check in reports and test names.
func (c Check) Label() string {
	return fmt.Sprintf("%s/%s/%s", c.Name, c.Manager, c.Module)
}

// Resolve returns the checks for every enabled module in opts, in settings
// file order across modules and catalog order within a module.
func Resolve(opts *options.Options) []Check {
	return ResolveFrom(packages[:], opts)
}

// ResolveFrom is Resolve over an arbitrary table.
func ResolveFrom(table []Package, opts *options.Options) []Check {
	var checks []Check
	for _, e := range opts.Entries() {
		if !e.Enabled() {
			continue
		}
		for _, p := range table {
			if p.Module == e.Module {
				checks = append(checks, Check{Name: p.Name, Manager: p.Manager, Module: p.Module})
			}
		}
	}
	return checks
}
