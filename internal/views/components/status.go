package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"
)

// StatusBar shows the current status on the left and image facts on the right.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	formatLabel *widget.Label
	sizeLabel   *widget.Label
}

func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.statusLabel.Truncation = fyne.TextTruncateEllipsis
	sb.formatLabel = widget.NewLabel("")
	sb.sizeLabel = widget.NewLabel("")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewBorder(
		nil, nil,
		nil,
		container.NewHBox(sb.formatLabel, sb.sizeLabel),
		sb.statusLabel,
	)
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// SetImageInfo shows the detected format, pixel size and file size.
func (sb *StatusBar) SetImageInfo(format string, width, height int, fileSize int64) {
	sb.formatLabel.SetText(fmt.Sprintf("Format: %s", format))

	info := fmt.Sprintf("%d x %d px", width, height)
	if fileSize > 0 {
		info += fmt.Sprintf(" (%s)", humanize.Bytes(uint64(fileSize)))
	}
	sb.sizeLabel.SetText(info)
}

func (sb *StatusBar) Reset() {
	sb.statusLabel.SetText("Ready")
	sb.formatLabel.SetText("")
	sb.sizeLabel.SetText("")
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
