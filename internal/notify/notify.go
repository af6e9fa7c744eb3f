package notify

// Delivery selects how a break alert reaches the writer.
type Delivery string

const (
	DeliveryVisual Delivery = "visual"
	DeliverySound  Delivery = "sound"
	DeliveryBoth   Delivery = "both"
)

// Valid reports whether d is one of the known deliveries.
func (d Delivery) Valid() bool {
	return d == DeliveryVisual || d == DeliverySound || d == DeliveryBoth
}

func (d Delivery) visual() bool { return d != DeliverySound }

func (d Delivery) sound() bool { return d == DeliverySound || d == DeliveryBoth }

// Config holds the notifications section of the wordpace config.
type Config struct {
	// Enabled turns every notification off when false.
	Enabled bool `koanf:"enabled" yaml:"enabled" json:"enabled"`
	// Type is the break alert delivery. The live progress
	// notification is always visual.
	Type      Delivery `koanf:"type" yaml:"type" json:"type"`
	SoundFile string   `koanf:"sound_file" yaml:"sound_file" json:"sound_file"`
	// LiveUpdates refreshes the progress notification after every poll.
	LiveUpdates bool `koanf:"live_updates" yaml:"live_updates" json:"live_updates"`
	OnBreak     bool `koanf:"on_break" yaml:"on_break" json:"on_break"`
}

// DefaultConfig enables visual alerts and live updates.
func DefaultConfig() Config {
	return Config{
		Enabled:     true,
		Type:        DeliveryVisual,
		LiveUpdates: true,
		OnBreak:     true,
	}
}

// Message is one desktop notification.
type Message struct {
	Title string
	Body  string
	// Urgent asks the notification daemon to keep the message up.
	Urgent bool
	// Replaces is the ID of an earlier message to overwrite, if any.
	Replaces string
}
