package version

import "fmt"

type Version struct {
	Major, Minor, Patch int
}

func (v *Version) String() string {
	return fmt.Sprintf("%v.%v.%v", v.Major, v.Minor, v.Patch)
}

type Info struct {
	Name    string
	Version Version
}

func (i Info) String() string {
	return fmt.Sprintf("%v %v", i.Name, i.Version.String())
}

// Harness identifies this build of the benchmark harness.
var Harness = Info{
	Name:    "stripbench",
	Version: Version{Major: 1, Minor: 0, Patch: 0},
}
