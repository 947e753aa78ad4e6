package discord

import (
	"bytes"
	"errors"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// code de discord cuando el webhook de la interacción todavía no existe
const unknownWebhook = 10015

// Defer efímero (para trabajos >3s)
func (r *Router) deferEphemeral(ic *discordgo.InteractionCreate) error {
	err := r.s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		r.log.Warn("defer ephemeral", zap.Error(err))
	}
	return err
}

func (r *Router) replyEphemeral(ic *discordgo.InteractionCreate, content string) {
	r.followup(ic, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
}

func (r *Router) replyFile(ic *discordgo.InteractionCreate, name string, png []byte) {
	r.followup(ic, &discordgo.WebhookParams{
		Flags: discordgo.MessageFlagsEphemeral,
		Files: []*discordgo.File{{
			Name:        name,
			ContentType: "image/png",
			Reader:      bytes.NewReader(png),
		}},
	})
}

func (r *Router) followup(ic *discordgo.InteractionCreate, params *discordgo.WebhookParams) {
	_, err := r.s.FollowupMessageCreate(ic.Interaction, true, params)
	if err == nil {
		return
	}
	// Fallback sólo si todavía no hay respuesta
	var reqErr *discordgo.RESTError
	if errors.As(err, &reqErr) && reqErr.Message != nil && reqErr.Message.Code == unknownWebhook {
		_ = r.s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: params.Content,
				Flags:   discordgo.MessageFlagsEphemeral,
				Files:   params.Files,
			},
		})
		return
	}
	r.log.Warn("followup", zap.Error(err))
}
