package types

// ScriptTone represents the tone of a generated script
type ScriptTone string

const (
	ScriptToneProfessional  ScriptTone = "professional"
	ScriptToneCasual        ScriptTone = "casual"
	ScriptToneHumorous      ScriptTone = "humorous"
	ScriptToneInspirational ScriptTone = "inspirational"
	ScriptToneEducational   ScriptTone = "educational"
)

// IsValid checks if the script tone is valid
func (t ScriptTone) IsValid() bool {
	switch t {
	case ScriptToneProfessional,
		ScriptToneCasual,
		ScriptToneHumorous,
		ScriptToneInspirational,
		ScriptToneEducational:
		return true
	default:
		return false
	}
}

// Normalize returns the tone, treating empty or unknown values as
// ScriptToneProfessional
func (t ScriptTone) Normalize() ScriptTone {
	if !t.IsValid() {
		return ScriptToneProfessional
	}
	return t
}

// String returns the string representation of the script tone
func (t ScriptTone) String() string {
	return string(t)
}
