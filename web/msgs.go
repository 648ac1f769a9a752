package web

import codenames "github.com/hbiede/Codenames-Board-Generator"

type boardResponse struct {
	StartingTeam string         `json:"starting_team"`
	Cards        []cardResponse `json:"cards"`
}

// cardResponse is one tile, in row-major order from the top-left.
type cardResponse struct {
	Word  string `json:"word"`
	Agent string `json:"agent"`
}

func teamName(t codenames.Team) string {
	switch t {
	case codenames.BlueTeam:
		return "blue"
	case codenames.RedTeam:
		return "red"
	}
	return ""
}

func agentName(m codenames.Marker) string {
	switch m {
	case codenames.BlueAgent:
		return "blue"
	case codenames.RedAgent:
		return "red"
	case codenames.Assassin:
		return "assassin"
	}
	return "bystander"
}
