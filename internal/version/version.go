// Package version resolves current module version.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/hashicorp/go-version"
)

// Module is path of the module which version is resolved.
const Module = "github.com/go-faster/sbo"

var once struct {
	version Value
	sync.Once
}

// Value describes module version.
type Value struct {
	Major int
	Minor int
	Patch int
	Name  string
	Raw   string
}

func (v Value) String() string {
	s := fmt.Sprintf("v%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Name != "" {
		s += "-" + v.Name
	}
	return s
}

// AtLeast reports whether core of v is not less than minimum.
func (v Value) AtLeast(minimum string) bool {
	want, err := version.NewVersion(minimum)
	if err != nil {
		return false
	}
	got, err := version.NewVersion(v.Raw)
	if err != nil {
		return false
	}
	return got.Core().GreaterThanOrEqual(want.Core())
}

func dev() Value {
	// Zero-versioned dev version.
	return Value{Patch: 1, Name: "dev", Raw: "0.0.1-dev"}
}

// Extract version Value from BuildInfo.
func Extract(info *debug.BuildInfo) Value {
	var raw string
	if strings.HasPrefix(info.Main.Path, Module) {
		raw = info.Main.Version
	}
	for _, d := range info.Deps {
		if d.Path == Module {
			raw = d.Version
			break
		}
	}
	v, err := version.NewVersion(raw)
	if err != nil {
		return dev()
	}
	ver := Value{
		Name: v.Prerelease(), // "alpha", "beta.1"
		Raw:  raw,
	}
	if s := v.Segments(); len(s) > 2 {
		ver.Major, ver.Minor, ver.Patch = s[0], s[1], s[2]
	}
	return ver
}

// Get optimistically gets current module version.
//
// Does not handle replace directives.
func Get() Value {
	once.Do(func() {
		info, ok := debug.ReadBuildInfo()
		if !ok {
			once.version = dev()
			return
		}
		once.version = Extract(info)
	})

	return once.version
}
