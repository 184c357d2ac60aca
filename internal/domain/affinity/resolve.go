package affinity

// ClickModifiers are the modifier keys held when damage was applied
type ClickModifiers struct {
	Alt   bool
	Ctrl  bool
	Shift bool
}

// Transform returns the damage an actor with affinity v takes from a damage total.
// Unknown affinities are treated as None.
func Transform(v Value, damage int, mods ClickModifiers) int {
	switch v.Normalize() {
	case Vulnerability:
		return damage * 2
	case Resistance:
		if mods.Shift {
			return damage
		}
		return floorHalf(damage)
	case Immunity:
		if mods.Shift && mods.Ctrl {
			return damage
		}
		return 0
	case Absorption:
		return -damage
	default:
		return damage
	}
}

// Delta is the signed change applied to the target's hit points.
// Harm is negative; absorption heals and is positive.
func Delta(v Value, damage int, mods ClickModifiers) int {
	return -Transform(v, damage, mods)
}

// MessageKey is the localization key describing how the damage landed
func MessageKey(v Value, mods ClickModifiers) string {
	switch v.Normalize() {
	case Vulnerability:
		return "FU.ChatApplyDamageVulnerable"
	case Resistance:
		if mods.Shift {
			return "FU.ChatApplyDamageResistantIgnored"
		}
		return "FU.ChatApplyDamageResistant"
	case Immunity:
		if mods.Shift && mods.Ctrl {
			return "FU.ChatApplyDamageImmuneIgnored"
		}
		return "FU.ChatApplyDamageImmune"
	case Absorption:
		return "FU.ChatApplyDamageAbsorb"
	default:
		return "FU.ChatApplyDamageNormal"
	}
}

func floorHalf(n int) int {
	if n < 0 {
		return (n - 1) / 2
	}
	return n / 2
}
