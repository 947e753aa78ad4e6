package domain

// PlayerStats: números finales de un jugador en un match.
type PlayerStats struct {
	Nickname        string
	Avatar          string // no se dibuja, pero lo arrastramos
	HeroName        string
	HeroImage       string // URL o path local
	Souls           int
	Kills           int
	Deaths          int
	Assists         int
	PlayerDamage    int
	ObjectiveDamage int
	Healing         int
}

// TeamStats es un lado del scoreboard. Players viene en orden de render (izq -> der).
type TeamStats struct {
	Name       string
	Color      string // hex, ej: "#2a3a6a"
	Victory    bool
	TotalSouls int // ya dividido por 1000
	Players    []PlayerStats
	RankIcon   string // "" = sin icono
}

// MatchRenderModel es lo que consume el compositor. Se arma una vez por match y no se toca más.
type MatchRenderModel struct {
	MatchID  string
	Duration string // M:SS
	TeamA    TeamStats
	TeamB    TeamStats
}
