// Package cpu identifies the host processor so benchmark results can be compared across machines.
package cpu

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/cpuid/v2"
	"github.com/prometheus/procfs"
)

// ErrEnvironment is returned when the host does not expose the CPU metadata needed to label a result.
var ErrEnvironment = errors.New("cpu metadata unavailable")

const defaultProcDir = procfs.DefaultMountPoint

// Identity describes the processor a benchmark ran on.
type Identity struct {
	// Brand is the human readable processor name.
	Brand string

	// ActualHz is the measured clock frequency of the first reported core.
	ActualHz int64
}

// Identifier queries the host for an Identity.
// The measured frequency is read from the kernel's cpuinfo table when it is available,
// since CPUID only reports the nominal clock.
type Identifier struct {
	procDir string
	cpuid   cpuid.CPUInfo
}

func NewIdentifier() *Identifier {
	return &Identifier{
		procDir: defaultProcDir,
		cpuid:   cpuid.CPU,
	}
}

// Identify returns the host CPU identity or an error wrapping ErrEnvironment.
func (id *Identifier) Identify() (Identity, error) {
	info, err := readCPUInfo(id.procDir)
	if err != nil {
		return Identity{}, err
	}

	identity := Identity{
		Brand:    strings.TrimSpace(id.cpuid.BrandName),
		ActualHz: info.hz,
	}

	if identity.Brand == "" {
		identity.Brand = info.modelName
	}

	if identity.ActualHz == 0 {
		identity.ActualHz = id.cpuid.Hz
	}

	if identity.Brand == "" {
		return Identity{}, fmt.Errorf("%w: no brand string reported", ErrEnvironment)
	}

	if identity.ActualHz <= 0 {
		return Identity{}, fmt.Errorf("%w: no clock frequency reported for %q", ErrEnvironment, identity.Brand)
	}

	return identity, nil
}

type cpuInfo struct {
	modelName string
	hz        int64
}

// readCPUInfo returns the model name and clock of the first core listed in procDir's cpuinfo table.
// A missing table is not an error; other platforms simply do not have one.
func readCPUInfo(procDir string) (cpuInfo, error) {
	if procDir == "" {
		return cpuInfo{}, nil
	}

	if _, err := os.Stat(filepath.Join(procDir, "cpuinfo")); errors.Is(err, os.ErrNotExist) {
		return cpuInfo{}, nil
	}

	fs, err := procfs.NewFS(procDir)
	if err != nil {
		return cpuInfo{}, fmt.Errorf("%w: %v", ErrEnvironment, err)
	}

	cores, err := fs.CPUInfo()
	if err != nil {
		return cpuInfo{}, fmt.Errorf("%w: %v", ErrEnvironment, err)
	}

	if len(cores) == 0 {
		return cpuInfo{}, nil
	}

	// A zero clock on the first core is left for the CPUID fallback, later cores are never consulted.
	return cpuInfo{
		modelName: strings.TrimSpace(cores[0].ModelName),
		hz:        int64(math.Round(cores[0].CPUMHz * 1e6)),
	}, nil
}
