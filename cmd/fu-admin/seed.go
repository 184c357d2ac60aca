package main

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/projectfu-discord/internal/domain/actor"
)

// seedFile is the layout of a seed file
type seedFile struct {
	Actors []any `yaml:"actors"`
}

// ParseSeed reads actors from YAML. Each entry goes through the actor's JSON
// form so class feature data survives as raw JSON.
func ParseSeed(data []byte) ([]*actor.Actor, error) {
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	out := make([]*actor.Actor, 0, len(file.Actors))
	for idx, entry := range file.Actors {
		raw, err := json.Marshal(entry)
		if err != nil {
			return nil, fmt.Errorf("actor %d: %w", idx, err)
		}
		a := &actor.Actor{}
		if err := json.Unmarshal(raw, a); err != nil {
			return nil, fmt.Errorf("actor %d: %w", idx, err)
		}
		if a.Name == "" {
			return nil, fmt.Errorf("actor %d: name is required", idx)
		}
		out = append(out, a)
	}
	return out, nil
}
