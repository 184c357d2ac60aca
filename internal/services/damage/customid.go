package damage

import (
	"strings"

	"github.com/KirkDiggler/projectfu-discord/internal/domain/affinity"
)

// Component custom ID parts, "fu:apply_damage:<messageID>:<mods>"
const (
	CustomIDContext     = "fu"
	ActionApplyDamage   = "apply_damage"
	customIDPartCount   = 4
	customIDPartMessage = 2
	customIDPartMods    = 3
)

// CustomID encodes an apply-damage button. Mods is the subset of "a", "c"
// and "s" standing for the alt, ctrl and shift keys.
func CustomID(messageID string, mods affinity.ClickModifiers) string {
	return strings.Join([]string{CustomIDContext, ActionApplyDamage, messageID, EncodeModifiers(mods)}, ":")
}

// ParseCustomID decodes an apply-damage button custom ID
func ParseCustomID(customID string) (string, affinity.ClickModifiers, bool) {
	parts := strings.SplitN(customID, ":", customIDPartCount)
	if len(parts) != customIDPartCount || parts[0] != CustomIDContext || parts[1] != ActionApplyDamage {
		return "", affinity.ClickModifiers{}, false
	}
	if parts[customIDPartMessage] == "" {
		return "", affinity.ClickModifiers{}, false
	}
	return parts[customIDPartMessage], DecodeModifiers(parts[customIDPartMods]), true
}

// EncodeModifiers writes held keys in a fixed a, c, s order
func EncodeModifiers(mods affinity.ClickModifiers) string {
	var sb strings.Builder
	if mods.Alt {
		sb.WriteByte('a')
	}
	if mods.Ctrl {
		sb.WriteByte('c')
	}
	if mods.Shift {
		sb.WriteByte('s')
	}
	return sb.String()
}

// DecodeModifiers ignores unknown letters
func DecodeModifiers(s string) affinity.ClickModifiers {
	return affinity.ClickModifiers{
		Alt:   strings.ContainsRune(s, 'a'),
		Ctrl:  strings.ContainsRune(s, 'c'),
		Shift: strings.ContainsRune(s, 's'),
	}
}
