// This file is part of nes2a03.
//
// nes2a03 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// nes2a03 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with nes2a03.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"strings"

	"github.com/jetsetilly/nes2a03/curated"
	"github.com/pkg/profile"
)

// Profile specifies which profile to generate. Only one profile can be
// generated at a time.
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = iota
	ProfileCPU
	ProfileMem
	ProfileBlock
)

func (p Profile) String() string {
	switch p {
	case ProfileNone:
		return "NONE"
	case ProfileCPU:
		return "CPU"
	case ProfileMem:
		return "MEM"
	case ProfileBlock:
		return "BLOCK"
	}
	return ""
}

// UnknownProfile is returned by ParseProfileString() for unrecognised
// profile names.
const UnknownProfile = "profile: unknown profile type (%s)"

// ParseProfileString converts a string to a Profile value. The empty string
// is the same as NONE. Matching is not case sensitive.
func ParseProfileString(s string) (Profile, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "NONE":
		return ProfileNone, nil
	case "CPU":
		return ProfileCPU, nil
	case "MEM":
		return ProfileMem, nil
	case "BLOCK":
		return ProfileBlock, nil
	}
	return ProfileNone, curated.Errorf(UnknownProfile, s)
}

// RunProfiler runs the supplied function "through" the requested Profile.
// The profile is written to a file named after the profile type in the path
// directory. An empty path means the current working directory.
func RunProfiler(p Profile, path string, run func() error) error {
	var mode func(*profile.Profile)

	switch p {
	case ProfileNone:
		return run()
	case ProfileCPU:
		mode = profile.CPUProfile
	case ProfileMem:
		mode = profile.MemProfile
	case ProfileBlock:
		mode = profile.BlockProfile
	default:
		return curated.Errorf(UnknownProfile, p)
	}

	if path == "" {
		path = "."
	}

	defer profile.Start(mode, profile.ProfilePath(path), profile.NoShutdownHook, profile.Quiet).Stop()

	return run()
}
