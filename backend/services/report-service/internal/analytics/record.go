package analytics

// Channel identifies one scalar measurement stream inside a sample record.
type Channel string

// Channels reported by the VR headset during a training session.
const (
	ChannelPupilLeft  Channel = "pupil_left"
	ChannelPupilRight Channel = "pupil_right"
	ChannelEEGDelta   Channel = "eeg_delta"
	ChannelEEGTheta   Channel = "eeg_theta"
	ChannelEEGAlpha   Channel = "eeg_alpha"
	ChannelEEGBeta    Channel = "eeg_beta"
	ChannelEEGGamma   Channel = "eeg_gamma"
	ChannelBlink      Channel = "blink"
	ChannelScore      Channel = "score"
)

var knownChannels = []Channel{
	ChannelPupilLeft,
	ChannelPupilRight,
	ChannelEEGDelta,
	ChannelEEGTheta,
	ChannelEEGAlpha,
	ChannelEEGBeta,
	ChannelEEGGamma,
	ChannelBlink,
	ChannelScore,
}

// KnownChannels returns every channel the pipeline understands, in stable order.
func KnownChannels() []Channel {
	out := make([]Channel, len(knownChannels))
	copy(out, knownChannels)
	return out
}

// ParseChannel maps a wire/query string onto a known channel.
func ParseChannel(s string) (Channel, bool) {
	for _, ch := range knownChannels {
		if string(ch) == s {
			return ch, true
		}
	}
	return "", false
}

// Record is one timestamped biometric observation. A channel absent from
// Values means the headset did not report it for that sample; absence is
// never coded as zero so it cannot bias an average.
type Record struct {
	Timestamp float64             `json:"timestamp"`
	Values    map[Channel]float64 `json:"values,omitempty"`
}

// Value returns the channel reading and whether it is present.
func (r Record) Value(ch Channel) (float64, bool) {
	v, ok := r.Values[ch]
	return v, ok
}

// Point is a single chart coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
