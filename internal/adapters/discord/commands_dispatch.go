// aqui solo se maneja la interaccion del usuario y se despacha a los servicios
package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

func (r *Router) handleSlashCommand(s *discordgo.Session, ic *discordgo.InteractionCreate) {
	cmd := ic.ApplicationCommandData()
	log := r.log.With(
		zap.String("cmd", cmd.Name),
		zap.String("user_id", ic.Member.User.ID),
		zap.String("guild_id", ic.GuildID),
	)
	log.Info("slash command")

	defer func() {
		if rec := recover(); rec != nil {
			log.Error("panic in command", zap.Any("panic", rec))
			r.replyEphemeral(ic, "❌ Something went wrong processing the command.")
		}
	}()

	_ = r.deferEphemeral(ic)
	ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
	defer cancel()

	switch cmd.Name {
	case "deadlock":
		r.replyEphemeral(ic, "hi")

	case "deadlockstats":
		steamID, _ := optStr(ic, "steamid")
		msg, err := r.stats.Describe(ctx, steamID)
		if err != nil {
			msg = "⚠️ Failed to fetch stats: " + err.Error()
		}
		r.replyEphemeral(ic, msg)

	case "addsteamid":
		steamID, _ := optStr(ic, "steamid")
		msg, err := r.roster.Add(ctx, ic.GuildID, steamID)
		if err != nil {
			log.Error("add steam id", zap.Error(err))
			msg = "⚠️ Could not add Steam ID: " + err.Error()
		}
		r.replyEphemeral(ic, msg)

	case "removesteamid":
		steamID, _ := optStr(ic, "steamid")
		msg, err := r.roster.Remove(ctx, ic.GuildID, steamID)
		if err != nil {
			log.Error("remove steam id", zap.Error(err))
			msg = "⚠️ Could not remove Steam ID: " + err.Error()
		}
		r.replyEphemeral(ic, msg)

	case "liststeamids":
		msg, err := r.roster.List(ctx, ic.GuildID)
		if err != nil {
			msg = "⚠️ Could not list Steam IDs: " + err.Error()
		}
		r.replyEphemeral(ic, msg)

	case "setnotifychannel":
		if !r.requireAdminOrRoles(s, ic) {
			return
		}
		channelID, ok := optChannelID(ic, "channel")
		if !ok {
			r.replyEphemeral(ic, "Usage: `/setnotifychannel channel:#canal`")
			return
		}
		msg, err := r.roster.SetNotifyChannel(ctx, ic.GuildID, channelID)
		if err != nil {
			log.Error("set notify channel", zap.Error(err))
			msg = "⚠️ Could not set the channel: " + err.Error()
		}
		r.replyEphemeral(ic, msg)

	case "scoreboard":
		matchID, ok := optInt64(ic, "match")
		if !ok || matchID <= 0 {
			r.replyEphemeral(ic, "Usage: `/scoreboard match:<id>`")
			return
		}
		if !r.limiter.Allow(ic.Member.User.ID) {
			r.replyEphemeral(ic, "⏳ Wait a few seconds before rendering another scoreboard.")
			return
		}
		defer step(log, "scoreboard.render")()
		png, err := r.scoreboard.Render(ctx, matchID)
		if err != nil {
			log.Warn("scoreboard", zap.Int64("match_id", matchID), zap.Error(err))
			r.replyEphemeral(ic, fmt.Sprintf("⚠️ Could not render match %d: %v", matchID, err))
			return
		}
		r.replyFile(ic, fmt.Sprintf("match_%d.png", matchID), png)

	default:
		r.replyEphemeral(ic, "Unknown command.")
	}
}
