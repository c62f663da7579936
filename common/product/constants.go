/*
 * === This file is part of Lander ===
 *
 * Copyright 2026 the Lander authors.
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package product

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

func getExecutableDir() string {
	ex, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Dir(ex)
}

// parseVersionFile picks up VERSION_MAJOR/MINOR/PATCH := N lines, the same
// format the Makefile reads.
func parseVersionFile(contents string) (major, minor, patch string, ok bool) {
	for _, line := range strings.Split(contents, "\n") {
		if !strings.HasPrefix(line, "VERSION_") {
			continue
		}
		splitLine := strings.Split(line, ":=")
		if len(splitLine) != 2 {
			return "", "", "", false
		}
		value := strings.TrimSpace(splitLine[1])
		switch strings.TrimSpace(splitLine[0]) {
		case "VERSION_MAJOR":
			major = value
		case "VERSION_MINOR":
			minor = value
		case "VERSION_PATCH":
			patch = value
		}
	}
	return major, minor, patch, major != "" || minor != "" || patch != ""
}

func fillVersionFromVersionFile(versionFilePath string) {
	vfContents, err := os.ReadFile(versionFilePath)
	if err != nil {
		return
	}
	major, minor, patch, ok := parseVersionFile(string(vfContents))
	if !ok {
		return
	}
	if major != "" {
		VERSION_MAJOR = major
	}
	if minor != "" {
		VERSION_MINOR = minor
	}
	if patch != "" {
		VERSION_PATCH = patch
	}
}

func fillBuildFromGit(localRepoPath string) {
	// equivalent to git rev-parse --short HEAD
	r, err := git.PlainOpen(localRepoPath)
	if err != nil {
		return // all of this is best-effort
	}

	h, err := r.ResolveRevision(plumbing.Revision("HEAD"))
	if err != nil {
		return
	}
	BUILD = h.String()[:7]
}

func init() {
	// If the binary was built with go build directly instead of make.
	if VERSION_MAJOR == "0" &&
		VERSION_MINOR == "0" &&
		VERSION_PATCH == "0" &&
		BUILD == "" {
		basePath := filepath.Dir(getExecutableDir())
		versionFilePath := filepath.Join(basePath, "VERSION")

		if _, err := os.Stat(versionFilePath); err == nil {
			fillVersionFromVersionFile(versionFilePath)
		}

		fillBuildFromGit(basePath)
	}

	VERSION = strings.Join([]string{VERSION_MAJOR, VERSION_MINOR, VERSION_PATCH}, ".")
	VERSION_SHORT = VERSION
	VERSION_BUILD = VERSION
	if BUILD != "" {
		VERSION_BUILD = strings.Join([]string{VERSION, BUILD}, "-")
	}
}

var ( // Acquired from -ldflags="-X=..." in Makefile
	VERSION_MAJOR = "0"
	VERSION_MINOR = "0"
	VERSION_PATCH = "0"
	BUILD         = ""
)

var (
	NAME             = "lander"
	PRETTY_SHORTNAME = "Lander"
	PRETTY_FULLNAME  = "Lander Descent Sequence Simulator"
	VERSION          string
	VERSION_SHORT    string
	VERSION_BUILD    string
)
