// Package classfeature holds the data models class-feature items decode into
// and the registry that maps a namespaced feature type to its model.
package classfeature

import (
	"encoding/json"
	"sort"
	"strings"
	"sync"

	dnderr "github.com/KirkDiggler/projectfu-discord/internal/errors"
)

// DataModel is the decoded data of one class feature
type DataModel interface {
	Validate() error
}

// Factory returns an empty data model ready to be decoded into
type Factory func() DataModel

// FeatureType joins a namespace and key into the identifier stored on items
func FeatureType(namespace, key string) string {
	return namespace + "." + key
}

// Registry maps namespace.key feature types to data model factories
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a data model under namespace.key. Registering the same type
// twice fails with an already-exists error.
func (r *Registry) Register(namespace, key string, factory Factory) error {
	if namespace == "" || key == "" {
		return dnderr.InvalidArgument("namespace and key are required")
	}
	if strings.Contains(namespace, ".") || strings.Contains(key, ".") {
		return dnderr.InvalidArgumentf("namespace %q and key %q must not contain '.'", namespace, key)
	}
	if factory == nil {
		return dnderr.InvalidArgument("factory is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	featureType := FeatureType(namespace, key)
	if _, exists := r.factories[featureType]; exists {
		return dnderr.AlreadyExistsf("class feature %s already registered", featureType).
			WithMeta("feature_type", featureType)
	}
	r.factories[featureType] = factory
	return nil
}

// Get returns the factory for a feature type
func (r *Registry) Get(featureType string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[featureType]
	return factory, exists
}

// List returns all registered feature types, sorted
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.factories))
	for featureType := range r.factories {
		types = append(types, featureType)
	}
	sort.Strings(types)
	return types
}

// Decode parses raw item data into the registered model and validates it
func (r *Registry) Decode(featureType string, raw json.RawMessage) (DataModel, error) {
	factory, ok := r.Get(featureType)
	if !ok {
		return nil, dnderr.NotFoundf("class feature %s is not registered", featureType)
	}

	model := factory()
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, model); err != nil {
			return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument,
				"failed to decode class feature "+featureType)
		}
	}
	if err := model.Validate(); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeValidation,
			"invalid class feature "+featureType)
	}
	return model, nil
}
