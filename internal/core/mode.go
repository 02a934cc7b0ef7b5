package core

// Mode selects between live-editing development behavior and the
// embedded-content production behavior.
type Mode int

const (
	ModeDev Mode = iota
	ModeProd
)
