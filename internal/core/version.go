package core

import (
	"sort"

	debversion "github.com/knqyf263/go-deb-version"

	"rosws/internal/types"
)

// versionCache memoizes parsed Debian versions so that repeated
// constraints on popular dependencies are parsed once per resolution.
type versionCache struct {
	deb map[string]debversion.Version
	err map[string]error
}

func newVersionCache() *versionCache {
	return &versionCache{
		deb: map[string]debversion.Version{},
		err: map[string]error{},
	}
}

// debVersion returns a parsed Debian version, caching the result.
func (c *versionCache) debVersion(value string) (debversion.Version, error) {
	if parsed, ok := c.deb[value]; ok {
		return parsed, nil
	}
	if err, ok := c.err[value]; ok {
		return debversion.Version{}, err
	}
	parsed, err := debversion.NewVersion(value)
	if err != nil {
		c.err[value] = err
		return debversion.Version{}, err
	}
	c.deb[value] = parsed
	return parsed, nil
}

// opRank puts upper bounds first, then exact pins, then lower bounds.
var opRank = map[types.ConstraintOp]int{
	types.ConstraintOpLt:  0,
	types.ConstraintOpLte: 1,
	types.ConstraintOpEq:  2,
	types.ConstraintOpGte: 3,
	types.ConstraintOpGt:  4,
}

// normalizeConstraints splits constraints into those with a parseable
// version and those without, deduplicating and sorting the valid ones.
func normalizeConstraints(cache *versionCache, constraints []types.Constraint) ([]types.Constraint, []types.Constraint) {
	var valid []types.Constraint
	var invalid []types.Constraint
	seen := map[types.Constraint]struct{}{}
	for _, constraint := range constraints {
		if _, ok := seen[constraint]; ok {
			continue
		}
		seen[constraint] = struct{}{}
		if _, err := cache.debVersion(constraint.Version); err != nil {
			invalid = append(invalid, constraint)
			continue
		}
		valid = append(valid, constraint)
	}
	sort.SliceStable(valid, func(i, j int) bool {
		if opRank[valid[i].Op] != opRank[valid[j].Op] {
			return opRank[valid[i].Op] < opRank[valid[j].Op]
		}
		left, _ := cache.debVersion(valid[i].Version)
		right, _ := cache.debVersion(valid[j].Version)
		return left.LessThan(right)
	})
	return valid, invalid
}
