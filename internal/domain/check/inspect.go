package check

// Source is anything a check can be read from: a check itself, or a chat
// message carrying one in its flags
type Source interface {
	SourceCheck() *Check
}

// Inspector reads a check's side data without ever exposing stored state.
// Compound values are deep copies; scalar values are copied by value.
type Inspector struct {
	check *Check
}

// Inspect binds an inspector to the check behind src. A source without a
// check yields an inspector whose getters all return nil.
func Inspect(src Source) *Inspector {
	if src == nil {
		return &Inspector{}
	}
	return &Inspector{check: src.SourceCheck()}
}

// Check reports whether a check was found behind the source
func (i *Inspector) Check() bool {
	return i.check != nil
}

func (i *Inspector) data() *AdditionalData {
	if i.check == nil {
		return nil
	}
	return &i.check.AdditionalData
}

// GetDamage returns a copy of the damage, or nil
func (i *Inspector) GetDamage() *DamageData {
	data := i.data()
	if data == nil {
		return nil
	}
	return data.Damage.clone()
}

func (i *Inspector) GetHrZero() *bool {
	data := i.data()
	if data == nil || data.HrZero == nil {
		return nil
	}
	v := *data.HrZero
	return &v
}

func (i *Inspector) GetTargetedDefense() *Defense {
	data := i.data()
	if data == nil || data.TargetedDefense == nil {
		return nil
	}
	v := *data.TargetedDefense
	return &v
}

func (i *Inspector) GetDifficulty() *int {
	data := i.data()
	if data == nil || data.Difficulty == nil {
		return nil
	}
	v := *data.Difficulty
	return &v
}

// GetTargets returns a copy of the targets, or nil
func (i *Inspector) GetTargets() []TargetData {
	data := i.data()
	if data == nil {
		return nil
	}
	return cloneTargets(data.Targets)
}
