package discord

import (
	"bytes"
	"context"

	"github.com/bwmarrin/discordgo"
)

// Publisher manda los mensajes del notifier al canal configurado.
type Publisher struct {
	s *discordgo.Session
}

func NewPublisher(s *discordgo.Session) *Publisher { return &Publisher{s: s} }

func (p *Publisher) SendText(ctx context.Context, channelID, text string) error {
	_, err := p.s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content:         text,
		AllowedMentions: &discordgo.MessageAllowedMentions{},
	}, discordgo.WithContext(ctx))
	return err
}

func (p *Publisher) SendImage(ctx context.Context, channelID, filename string, png []byte) error {
	_, err := p.s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Files: []*discordgo.File{{
			Name:        filename,
			ContentType: "image/png",
			Reader:      bytes.NewReader(png),
		}},
	}, discordgo.WithContext(ctx))
	return err
}
