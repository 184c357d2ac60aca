package classfeature

// Namespace is the system namespace the built-in features register under
const Namespace = "projectfu"

const (
	KeyArcanum   = "arcanum"
	KeyAlchemy   = "alchemy"
	KeyMagitech  = "magitech"
	KeyInfusions = "infusions"
)

// RegisterClassFeatures registers the built-in class features. The first
// registry error is returned; registrations before it stay in place.
func RegisterClassFeatures(registry *Registry) error {
	builtins := []struct {
		key     string
		factory Factory
	}{
		{KeyArcanum, func() DataModel { return &Arcanum{} }},
		{KeyAlchemy, func() DataModel { return &Alchemy{} }},
		{KeyMagitech, func() DataModel { return &Magitech{} }},
		{KeyInfusions, func() DataModel { return &Infusions{} }},
	}

	for _, b := range builtins {
		if err := registry.Register(Namespace, b.key, b.factory); err != nil {
			return err
		}
	}
	return nil
}
