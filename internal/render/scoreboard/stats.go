package scoreboard

import "github.com/jose-valero/deadlock-match-bot/internal/domain"

type Stat int

const (
	StatSouls Stat = iota
	StatKills
	StatDeaths
	StatAssists
	StatPlayerDamage
	StatObjectiveDamage
	StatHealing
	numStats
)

type statRow struct {
	Stat          Stat
	Label         string
	Highlight     string // color del gradiente del líder
	Highlightable bool
}

// Orden de filas de la tabla, de arriba hacia abajo.
var statRows = [numStats]statRow{
	{StatSouls, "TOTAL SOULS", "#97f5ce", true},
	{StatKills, "KILLS", "#d24f54", true},
	{StatDeaths, "DEATHS", "", false},
	{StatAssists, "ASSISTS", "#7b2c97", true},
	{StatPlayerDamage, "PLAYER DMG", "#2b60ca", true},
	{StatObjectiveDamage, "OBJ DMG", "#be943e", true},
	{StatHealing, "HEALING", "#96cd1d", true},
}

func (s Stat) Label() string { return statRows[s].Label }

func (s Stat) Value(p domain.PlayerStats) int {
	switch s {
	case StatSouls:
		return p.Souls
	case StatKills:
		return p.Kills
	case StatDeaths:
		return p.Deaths
	case StatAssists:
		return p.Assists
	case StatPlayerDamage:
		return p.PlayerDamage
	case StatObjectiveDamage:
		return p.ObjectiveDamage
	case StatHealing:
		return p.Healing
	}
	return 0
}

// Leaders guarda el máximo de cada stat sobre los dos rosters juntos.
type Leaders struct {
	max [numStats]int
}

func ComputeLeaders(m domain.MatchRenderModel) Leaders {
	all := make([]domain.PlayerStats, 0, len(m.TeamA.Players)+len(m.TeamB.Players))
	all = append(all, m.TeamA.Players...)
	all = append(all, m.TeamB.Players...)

	var l Leaders
	for i, p := range all {
		for _, row := range statRows {
			v := row.Stat.Value(p)
			if i == 0 || v > l.max[row.Stat] {
				l.max[row.Stat] = v
			}
		}
	}
	return l
}

func (l Leaders) Max(s Stat) int { return l.max[s] }

// IsLeader: empates incluidos, deaths nunca.
func (l Leaders) IsLeader(s Stat, v int) bool {
	if !statRows[s].Highlightable {
		return false
	}
	return v == l.max[s]
}

// TeamSummary son los tres números de la barra de cada equipo.
type TeamSummary struct {
	Kills  int
	Souls  int // miles
	Damage int
}

func Summarize(t domain.TeamStats) TeamSummary {
	s := TeamSummary{Souls: t.TotalSouls}
	for _, p := range t.Players {
		s.Kills += p.Kills
		s.Damage += p.PlayerDamage
	}
	return s
}
