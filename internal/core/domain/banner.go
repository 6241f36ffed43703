package domain

// BannerTone is the severity of a status banner.
type BannerTone string

const (
	// ToneSuccess confirms a completed action.
	ToneSuccess BannerTone = "success"

	// ToneCritical reports a failure the user should react to.
	ToneCritical BannerTone = "critical"
)

// Banner is a user-facing status message. The widget surfaces exactly
// two tones; anything diagnostic goes to the logger instead.
type Banner struct {
	Tone    BannerTone
	Message string
}

// SuccessBanner builds a success-toned banner.
func SuccessBanner(message string) *Banner {
	return &Banner{Tone: ToneSuccess, Message: message}
}

// CriticalBanner builds a critical-toned banner.
func CriticalBanner(message string) *Banner {
	return &Banner{Tone: ToneCritical, Message: message}
}
