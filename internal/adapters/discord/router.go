package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/jose-valero/deadlock-match-bot/internal/app/service"
)

// un render por usuario cada tanto; cada uno pega ~24 requests a deadlock-api
const scoreboardCooldown = 30 * time.Second

type Router struct {
	s            *discordgo.Session
	guildID      string
	adminRoleIDs []string

	roster     *service.RosterService
	stats      *service.StatsService
	scoreboard *service.ScoreboardService

	limiter *userLimiter
	log     *zap.Logger
}

func NewRouter(
	s *discordgo.Session,
	guildID string,
	adminRoleIDs []string,
	roster *service.RosterService,
	stats *service.StatsService,
	scoreboard *service.ScoreboardService,
	log *zap.Logger,
) *Router {
	return &Router{
		s:            s,
		guildID:      guildID,
		adminRoleIDs: adminRoleIDs,
		roster:       roster,
		stats:        stats,
		scoreboard:   scoreboard,
		limiter:      newUserLimiter(scoreboardCooldown),
		log:          log.With(zap.String("component", "discord")),
	}
}

// Register crea los slash commands en el guild (instantáneo, a diferencia de los globales).
func (r *Router) Register() error {
	appID := r.s.State.User.ID
	for _, cmd := range Commands {
		if _, err := r.s.ApplicationCommandCreate(appID, r.guildID, cmd); err != nil {
			return err
		}
	}
	r.log.Info("commands registered", zap.Int("count", len(Commands)), zap.String("guild_id", r.guildID))
	return nil
}

func (r *Router) Handlers() {
	r.s.AddHandler(func(s *discordgo.Session, ic *discordgo.InteractionCreate) {
		if ic.Type != discordgo.InteractionApplicationCommand {
			return
		}
		if ic.Member == nil || ic.Member.User == nil {
			// DMs: los comandos son de guild
			return
		}
		r.handleSlashCommand(s, ic)
	})
}
