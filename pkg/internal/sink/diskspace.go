package sink

import (
	"fmt"

	"github.com/shirou/gopsutil/disk"
)

// usageFunc reports filesystem usage for the volume holding path.
type usageFunc func(path string) (*disk.UsageStat, error)

func defaultUsage(path string) (*disk.UsageStat, error) {
	return disk.Usage(path)
}

// checkFreeSpace fails when the volume at dir has less than need+margin bytes free.
func checkFreeSpace(usage usageFunc, dir string, need, margin uint64) (free uint64, err error) {
	stat, err := usage(dir)
	if err != nil {
		return 0, err
	}
	if stat.Free < need+margin {
		return stat.Free, fmt.Errorf("%w: %s has %d bytes free, need %d (+%d margin)",
			ErrInsufficientSpace, dir, stat.Free, need, margin)
	}
	return stat.Free, nil
}
