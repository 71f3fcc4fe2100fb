package internal

import (
	"strings"

	"graphics.gd/classdb/Button"
	"graphics.gd/classdb/Control"
	"graphics.gd/classdb/HBoxContainer"
	"graphics.gd/classdb/LineEdit"
	"graphics.gd/classdb/RichTextLabel"
	"graphics.gd/classdb/VBoxContainer"
	"graphics.gd/variant/Vector2"
)

// UI is the chat box floating next to the orb. It only collects input
// and renders completed turns, the request lifecycle lives on the
// client.
type UI struct {
	Control.Extension[UI] `gd:"HaloUI"`

	Layout struct {
		VBoxContainer.Instance

		Transcript RichTextLabel.Instance

		Compose struct {
			HBoxContainer.Instance

			Input LineEdit.Instance
			Send  Button.Instance
		}
	}

	client *Client
}

func (ui *UI) Ready() {
	ui.AsControl().SetPosition(Vector2.New(24, 24))
	ui.Layout.Transcript.SetBbcodeEnabled(true)
	ui.Layout.Transcript.SetScrollFollowing(true)
	ui.Layout.Transcript.AsControl().SetCustomMinimumSize(Vector2.New(420, 280))
	ui.Layout.Compose.Input.AsControl().SetCustomMinimumSize(Vector2.New(360, 0))
	ui.Layout.Compose.Input.SetPlaceholderText("talk to lira")
	ui.Layout.Compose.Send.SetText("Send")
	ui.Layout.Compose.Send.AsBaseButton().OnPressed(ui.submit)
	ui.Layout.Compose.Input.OnTextSubmitted(func(string) { ui.submit() })
}

func (ui *UI) submit() {
	text := strings.TrimSpace(ui.Layout.Compose.Input.Text())
	if text == "" || ui.client == nil || ui.client.Processing() {
		return
	}
	ui.Layout.Compose.Input.Clear()
	ui.Layout.Transcript.AppendText("[b]you[/b] " + text + "\n")
	ui.client.Send(text)
}

// append renders a completed turn, called from the client's frame loop.
func (ui *UI) append(turn Turn) {
	line := "[b]lira[/b] " + turn.Reply
	if turn.Emotion != "" {
		line += " [i](" + turn.Emotion + ")[/i]"
	}
	ui.Layout.Transcript.AppendText(line + "\n")
}
