package config

// OutputConfig holds settings for the terminal board renderer.
type OutputConfig struct {
	// Colour enables ANSI colours. It is ignored when output is not a terminal.
	Colour bool `mapstructure:"colour"`

	// Coordinates prints file letters and rank numbers around the board.
	Coordinates bool `mapstructure:"coordinates"`

	// Flip draws the board from black's side.
	Flip bool `mapstructure:"flip"`
}

// NewOutputConfig returns the default renderer settings.
func NewOutputConfig() OutputConfig {
	return OutputConfig{
		Colour:      true,
		Coordinates: true,
	}
}
