package xfrm

import "fmt"

var errSameFrame = fmt.Errorf("xfrm: from and to frames must differ")

func errInvalidName(name Name) error {
	return fmt.Errorf("xfrm: invalid transform name %q", name.String())
}

func errReverseOriginalExists(name Name) error {
	return fmt.Errorf("xfrm: %s already exists as an original edge; %s would duplicate its computed inverse", name.Reversed(), name)
}

func errWouldCreateCycle(name Name) error {
	return fmt.Errorf("xfrm: %s would create a cycle", name)
}

func errPathNotFound(name Name) error {
	return fmt.Errorf("xfrm: no path %s", name)
}

func errMutateComputed(name Name) error {
	return fmt.Errorf("xfrm: %s is a computed edge, not an original", name)
}

func errNotOriginal(name Name) error {
	return fmt.Errorf("xfrm: %s is not an original edge", name)
}
