package session

import "fmt"

// Command is a user intent, independent of the toolkit that raised it.
type Command int

const (
	CommandOpen Command = iota
	CommandZoomIn
	CommandZoomOut
	CommandFit
	CommandActualSize
	CommandConvert
)

var commandNames = map[Command]string{
	CommandOpen:       "open",
	CommandZoomIn:     "zoom_in",
	CommandZoomOut:    "zoom_out",
	CommandFit:        "fit",
	CommandActualSize: "actual_size",
	CommandConvert:    "convert",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", int(c))
}
