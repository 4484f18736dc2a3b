package runtime

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/aretw0/advent/pkg/domain"
)

// Instance is a constructed, runnable puzzle module.
type Instance struct {
	Descriptor domain.Descriptor
	Solution   domain.Solution
}

// Load constructs a Solution for every descriptor, in order.
// Construction is attempted for all descriptors even after a failure. If any
// failed, Load returns a *domain.LoadError listing exactly the failed ones and
// no instances.
func Load(descriptors []domain.Descriptor) ([]Instance, error) {
	instances := make([]Instance, 0, len(descriptors))
	var failures []domain.LoadFailure

	for _, d := range descriptors {
		sol, err := instantiate(d)
		if err != nil {
			failures = append(failures, domain.LoadFailure{Descriptor: d, Err: err})
			continue
		}
		instances = append(instances, Instance{Descriptor: d, Solution: sol})
	}

	if len(failures) > 0 {
		return nil, &domain.LoadError{Failures: failures}
	}
	return instances, nil
}

func instantiate(d domain.Descriptor) (sol domain.Solution, err error) {
	if d.Factory == nil {
		return nil, errors.New("no factory registered")
	}

	defer func() {
		if r := recover(); r != nil {
			sol = nil
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()

	sol, err = d.Factory()
	if err != nil {
		return nil, err
	}
	if sol == nil {
		return nil, fmt.Errorf("factory returned nil solution for %s", d.Ref)
	}
	return sol, nil
}
