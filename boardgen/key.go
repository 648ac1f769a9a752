package boardgen

import (
	"math/rand"

	codenames "github.com/hbiede/Codenames-Board-Generator"
)

// NewKey generates the spymaster's key: a coin flip picks the starting team,
// which gets nine tiles to the other team's eight, plus a lone assassin. The
// remaining seven cells stay blank for bystanders.
//
// On a 5x5 board the capacity checks can't fire, but they stay wired so a
// bad board size fails loudly instead of looping.
func NewKey(r *rand.Rand) (*codenames.Grid, codenames.Team, error) {
	starter := codenames.BlueTeam
	if r.Intn(2) == 1 {
		starter = codenames.RedTeam
	}

	g := codenames.NewGrid(codenames.Rows)
	if err := Assign(g, starter.Marker(), codenames.FirstMoverTiles, r); err != nil {
		return nil, codenames.NoTeam, err
	}
	if err := Assign(g, starter.Other().Marker(), codenames.SecondMoverTiles, r); err != nil {
		return nil, codenames.NoTeam, err
	}
	if err := Assign(g, codenames.Assassin, codenames.AssassinTiles, r); err != nil {
		return nil, codenames.NoTeam, err
	}
	return g, starter, nil
}
