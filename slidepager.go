package slidepager

import (
	_ "embed"
)

//go:embed version.txt
var Version string

//go:embed slidepager.toml
var DefaultConfig string
