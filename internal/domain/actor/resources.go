package actor

import (
	"fmt"
	"strings"
)

// Resource is a bar with a current value and a maximum
type Resource struct {
	Value int `json:"value" yaml:"value"`
	Max   int `json:"max" yaml:"max"`
}

// Resources are the hit point, mind point and inventory point bars
type Resources struct {
	HP Resource `json:"hp" yaml:"hp"`
	MP Resource `json:"mp" yaml:"mp"`
	IP Resource `json:"ip" yaml:"ip"`
}

// Resource attribute paths accepted by ModifyResource
const (
	ResourceHP = "resources.hp"
	ResourceMP = "resources.mp"
	ResourceIP = "resources.ip"
)

// Crisis reports whether hit points are at or below half
func (r Resources) Crisis() bool {
	return r.HP.Value <= r.HP.Max/2
}

func (a *Actor) resource(path string) (*Resource, error) {
	switch strings.ToLower(path) {
	case ResourceHP:
		return &a.Resources.HP, nil
	case ResourceMP:
		return &a.Resources.MP, nil
	case ResourceIP:
		return &a.Resources.IP, nil
	}
	return nil, fmt.Errorf("unknown resource %q", path)
}

// ModifyResource changes a resource bar. With isDelta the value is added to
// the current value, otherwise it replaces it. The result is clamped into
// [0, max]. It returns the applied change.
func (a *Actor) ModifyResource(path string, value int, isDelta bool) (int, error) {
	res, err := a.resource(path)
	if err != nil {
		return 0, err
	}

	next := value
	if isDelta {
		next = res.Value + value
	}
	if next < 0 {
		next = 0
	}
	if res.Max > 0 && next > res.Max {
		next = res.Max
	}

	applied := next - res.Value
	res.Value = next
	return applied, nil
}

// ResourceValue returns the current value of a resource bar
func (a *Actor) ResourceValue(path string) (Resource, error) {
	res, err := a.resource(path)
	if err != nil {
		return Resource{}, err
	}
	return *res, nil
}
