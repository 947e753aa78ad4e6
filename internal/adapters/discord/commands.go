package discord

import "github.com/bwmarrin/discordgo"

var minMatchID = 1.0

var Commands = []*discordgo.ApplicationCommand{
	{
		Name:        "deadlock",
		Description: "Replies with hi",
	},
	{
		Name:        "deadlockstats",
		Description: "Get Deadlock stats for a Steam ID",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "steamid",
			Description: "Steam ID to fetch stats for",
			Required:    true,
		}},
	},
	{
		Name:        "addsteamid",
		Description: "Add a Steam ID to the notification list",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "steamid",
			Description: "Steam ID to add",
			Required:    true,
		}},
	},
	{
		Name:        "removesteamid",
		Description: "Remove a Steam ID from the notification list",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "steamid",
			Description: "Steam ID to remove",
			Required:    true,
		}},
	},
	{
		Name:        "setnotifychannel",
		Description: "Set the Discord channel for match notifications (admins)",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:         discordgo.ApplicationCommandOptionChannel,
			Name:         "channel",
			Description:  "Channel to send notifications to",
			ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
			Required:     true,
		}},
	},
	{
		Name:        "liststeamids",
		Description: "List all Steam IDs in the notification list",
	},
	{
		Name:        "scoreboard",
		Description: "Render the scoreboard of a match",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "match",
			Description: "Deadlock match ID",
			MinValue:    &minMatchID,
			Required:    true,
		}},
	},
}
