package types

// Constraint is a version bound attached to a package.xml dependency via
// one of the version_* attributes.
type Constraint struct {
	Op      ConstraintOp
	Version string
}

func (c Constraint) String() string {
	return string(c.Op) + " " + c.Version
}
