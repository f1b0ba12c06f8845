// Package version looks up the latest release and compares it with the running build.
package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

type semver [3]int

func parseSemver(s string) (semver, error) {
	var v semver

	parts := strings.Split(strings.TrimPrefix(strings.TrimSpace(s), "v"), ".")
	if len(parts) != len(v) {
		return v, fmt.Errorf("version %q is not major.minor.patch", s)
	}

	for i, part := range parts {
		// drop pre-release and build suffixes such as 1.2.3-rc1
		part, _, _ = strings.Cut(part, "-")
		n, err := strconv.Atoi(part)
		if err != nil {
			return v, fmt.Errorf("version %q: %w", s, err)
		}
		v[i] = n
	}

	return v, nil
}

// Compare returns 1 when a is newer than b, -1 when it is older and 0 when they match.
// A leading "v" is ignored.
func Compare(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, err
	}

	bv, err := parseSemver(b)
	if err != nil {
		return 0, err
	}

	i, found := lo.Find([]int{0, 1, 2}, func(i int) bool { return av[i] != bv[i] })
	if !found {
		return 0, nil
	}

	if av[i] > bv[i] {
		return 1, nil
	}
	return -1, nil
}
