// Package config loads and validates tetrus settings.
//
// Settings live in a TOML file, by default
// $XDG_CONFIG_HOME/tetrus/config.toml (falling back to
// ~/.config/tetrus/config.toml). A missing file is not an error: [Load]
// returns [Default]. Unknown keys are rejected so typos do not pass
// silently.
//
// # File Format
//
//	columns = 10
//	rows = 22
//	fall_interval = "500ms"
//	seed = 0
//	sound = false
//	log_file = ""
//
//	[keys]
//	left = ["left", "h"]
//	right = ["right", "l"]
//	down = ["down", "j"]
//	rotate_cw = ["up", "x", "k"]
//	rotate_ccw = ["z"]
//	hard_drop = [" ", "space"]
//	pause = ["p"]
//	quit = ["esc", "q", "ctrl+c"]
//
// Key names follow bubbletea's KeyMsg.String() spelling.
package config
