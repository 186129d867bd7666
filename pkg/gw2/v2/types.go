package v2

import (
	"encoding/json"
	"slices"
	"time"
)

// BuildInfo contains the current build id of the game.
type BuildInfo struct {
	ID int `json:"id" yaml:"id"`
}

// Permission is a scope an API key may be granted.
type Permission string

// Known permissions.
const (
	PermissionAccount     Permission = "account"
	PermissionBuilds      Permission = "builds"
	PermissionCharacters  Permission = "characters"
	PermissionGuilds      Permission = "guilds"
	PermissionInventories Permission = "inventories"
	PermissionProgression Permission = "progression"
	PermissionPvP         Permission = "pvp"
	PermissionTradingPost Permission = "tradingpost"
	PermissionUnlocks     Permission = "unlocks"
	PermissionWallet      Permission = "wallet"
)

// Token describes the API key used for the request. Name is not escaped by
// the API and may contain markup.
type Token struct {
	ID          string       `json:"id"          yaml:"id"`
	Name        string       `json:"name"        yaml:"name"`
	Permissions []Permission `json:"permissions" yaml:"permissions"`
}

// HasPermission reports whether the key was granted permission.
func (t Token) HasPermission(permission Permission) bool {
	return slices.Contains(t.Permissions, permission)
}

// Population is a world's population level.
type Population string

// World populations.
const (
	PopulationLow      Population = "Low"
	PopulationMedium   Population = "Medium"
	PopulationHigh     Population = "High"
	PopulationVeryHigh Population = "VeryHigh"
	PopulationFull     Population = "Full"
)

// World is a game server. The first digit of the id is the region (1 North
// America, 2 Europe), the second the language.
type World struct {
	ID         int        `json:"id"         yaml:"id"`
	Name       string     `json:"name"       yaml:"name"`
	Population Population `json:"population" yaml:"population"`
}

// Region returns the world's region code taken from its id.
func (w World) Region() int {
	return w.ID / 1000 //nolint:mnd // first digit of a four digit id
}

// Attribute is a character attribute such as Power.
type Attribute string

// Amulet is a structured PvP amulet.
type Amulet struct {
	ID         int               `json:"id"         yaml:"id"`
	Name       string            `json:"name"       yaml:"name"`
	Icon       string            `json:"icon"       yaml:"icon"`
	Attributes map[Attribute]int `json:"attributes" yaml:"attributes"`
}

// Hero is a Stronghold hero.
type Hero struct {
	ID          string     `json:"id"          yaml:"id"`
	Name        string     `json:"name"        yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Type        string     `json:"type"        yaml:"type"`
	Stats       HeroStats  `json:"stats"       yaml:"stats"`
	Overlay     string     `json:"overlay"     yaml:"overlay"`
	Underlay    string     `json:"underlay"    yaml:"underlay"`
	Skins       []HeroSkin `json:"skins"       yaml:"skins"`
}

// HeroStats are a hero's ratings.
type HeroStats struct {
	Offense int `json:"offense" yaml:"offense"`
	Defense int `json:"defense" yaml:"defense"`
	Speed   int `json:"speed"   yaml:"speed"`
}

// HeroSkin is a skin available for a hero.
type HeroSkin struct {
	ID          int    `json:"id"                     yaml:"id"`
	Name        string `json:"name"                   yaml:"name"`
	Icon        string `json:"icon"                   yaml:"icon"`
	Default     bool   `json:"default"                yaml:"default"`
	UnlockItems []int  `json:"unlock_items,omitempty" yaml:"unlock_items,omitempty"`
}

// Rank is a PvP rank.
type Rank struct {
	ID         int         `json:"id"          yaml:"id"`
	FinisherID int         `json:"finisher_id" yaml:"finisher_id"`
	Name       string      `json:"name"        yaml:"name"`
	Icon       string      `json:"icon"        yaml:"icon"`
	MinRank    int         `json:"min_rank"    yaml:"min_rank"`
	MaxRank    int         `json:"max_rank"    yaml:"max_rank"`
	Levels     []RankLevel `json:"levels"      yaml:"levels"`
}

// RankLevel is the experience needed to cover a span of PvP levels.
type RankLevel struct {
	MinRank int `json:"min_rank" yaml:"min_rank"`
	MaxRank int `json:"max_rank" yaml:"max_rank"`
	Points  int `json:"points"   yaml:"points"`
}

// RatingType is the kind of a PvP game.
type RatingType string

// Rating types. Custom arenas report "None".
const (
	RatingTypeRanked   RatingType = "Ranked"
	RatingTypeUnranked RatingType = "Unranked"
	RatingTypeNone     RatingType = "None"
)

// Game is a structured PvP game played by the key's account.
type Game struct {
	ID           string         `json:"id"                      yaml:"id"`
	MapID        int            `json:"map_id"                  yaml:"map_id"`
	Started      time.Time      `json:"started"                 yaml:"started"`
	Ended        time.Time      `json:"ended"                   yaml:"ended"`
	Result       string         `json:"result"                  yaml:"result"`
	Team         string         `json:"team"                    yaml:"team"`
	Profession   string         `json:"profession"              yaml:"profession"`
	Scores       map[string]int `json:"scores"                  yaml:"scores"`
	RatingType   RatingType     `json:"rating_type"             yaml:"rating_type"`
	RatingChange *int           `json:"rating_change,omitempty" yaml:"rating_change,omitempty"`
	Season       *string        `json:"season,omitempty"        yaml:"season,omitempty"`
}

// Duration returns how long the game lasted.
func (g Game) Duration() time.Duration {
	return g.Ended.Sub(g.Started)
}

// Standing is the account's standing in one PvP season.
type Standing struct {
	Current  StandingScore `json:"current"   yaml:"current"`
	Best     StandingScore `json:"best"      yaml:"best"`
	SeasonID string        `json:"season_id" yaml:"season_id"`
}

// StandingScore is a pip and rating snapshot. Division and tier are 0-based
// indexes into the season's divisions.
type StandingScore struct {
	TotalPoints int  `json:"total_points"     yaml:"total_points"`
	Division    int  `json:"division"         yaml:"division"`
	Tier        int  `json:"tier"             yaml:"tier"`
	Points      int  `json:"points"           yaml:"points"`
	Repeats     int  `json:"repeats"          yaml:"repeats"`
	Rating      *int `json:"rating,omitempty" yaml:"rating,omitempty"`
	Decay       *int `json:"decay,omitempty"  yaml:"decay,omitempty"`
}

// Season is a structured PvP season.
type Season struct {
	ID           string                     `json:"id"                     yaml:"id"`
	Name         string                     `json:"name"                   yaml:"name"`
	Start        time.Time                  `json:"start"                  yaml:"start"`
	End          time.Time                  `json:"end"                    yaml:"end"`
	Active       bool                       `json:"active"                 yaml:"active"`
	Divisions    []Division                 `json:"divisions"              yaml:"divisions"`
	Leaderboards map[string]json.RawMessage `json:"leaderboards,omitempty" yaml:"-"`
}

// Division is a division of a PvP season.
type Division struct {
	Name      string         `json:"name"                 yaml:"name"`
	Flags     []DivisionFlag `json:"flags,omitempty"      yaml:"flags,omitempty"`
	LargeIcon string         `json:"large_icon,omitempty" yaml:"large_icon,omitempty"`
	SmallIcon string         `json:"small_icon,omitempty" yaml:"small_icon,omitempty"`
	PipIcon   string         `json:"pip_icon"             yaml:"pip_icon"`
	Tiers     []DivisionTier `json:"tiers"                yaml:"tiers"`
}

// DivisionFlag describes what can happen to a division.
type DivisionFlag string

// Division flags.
const (
	DivisionFlagCanLosePoints DivisionFlag = "CanLosePoints"
	DivisionFlagCanLoseTiers  DivisionFlag = "CanLoseTiers"
	DivisionFlagRepeatable    DivisionFlag = "Repeatable"
)

// DivisionTier is the pip count of one tier.
type DivisionTier struct {
	Points int `json:"points" yaml:"points"`
}
