package app

// Version is replaced at link time with -X.
var Version = "0.1.0"

const (
	Name        = "Peeky"
	Description = "macOS menu bar memo overlay app"
)

type Info struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

func CurrentInfo() Info {
	return Info{Name: Name, Version: Version, Description: Description}
}
