package notify

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bwmarrin/discordgo"
)

// Discord posts run artifacts to a club channel. It is optional; the files
// on disk remain the primary output.
type Discord struct {
	session   *discordgo.Session
	channelID string
}

// NewDiscord opens a bot session for the given token.
func NewDiscord(token, channelID string) (*Discord, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	return &Discord{session: session, channelID: channelID}, nil
}

// SendChart posts the rendered chart image as a file attachment.
func (d *Discord) SendChart(path, caption string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open chart for upload: %w", err)
	}
	defer f.Close()

	_, err = d.session.ChannelMessageSendComplex(d.channelID, &discordgo.MessageSend{
		Content: caption,
		Files: []*discordgo.File{{
			Name:        filepath.Base(path),
			ContentType: "image/png",
			Reader:      f,
		}},
	})
	if err != nil {
		return fmt.Errorf("failed to send chart to channel %s: %w", d.channelID, err)
	}
	return nil
}

// SendReport posts the inactivity report text.
func (d *Discord) SendReport(text string) error {
	if _, err := d.session.ChannelMessageSend(d.channelID, "```\n"+text+"```"); err != nil {
		return fmt.Errorf("failed to send report to channel %s: %w", d.channelID, err)
	}
	return nil
}

// Close releases the underlying session.
func (d *Discord) Close() error {
	return d.session.Close()
}
