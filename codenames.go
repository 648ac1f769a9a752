package codenames

const (
	// Rows is the number of rows of cards on a board.
	Rows = 5
	// Columns is the number of columns of cards on a board.
	Columns = 5
	// Size is the total number of cards on a board.
	Size = Rows * Columns
)

const (
	// FirstMoverTiles is how many words the starting team has to guess. The
	// starting team always guesses one extra word.
	FirstMoverTiles = 9
	// SecondMoverTiles is how many words the other team has to guess.
	SecondMoverTiles = 8
	// AssassinTiles is how many assassins are hidden on the board.
	AssassinTiles = 1
)

// Marker is the affiliation hidden behind a single tile on the key board.
type Marker int

const (
	// NoMarker means the tile belongs to nobody, a bystander.
	NoMarker Marker = iota
	// BlueAgent means the tile belongs to an agent on the blue team.
	BlueAgent
	// RedAgent means the tile belongs to an agent on the red team.
	RedAgent
	// Assassin means guessing this tile loses the game outright.
	Assassin
)

func (m Marker) String() string {
	switch m {
	case NoMarker:
		return "Bystander"
	case BlueAgent:
		return "Blue Agent"
	case RedAgent:
		return "Red Agent"
	case Assassin:
		return "Assassin"
	}
	return ""
}

// Code returns the single-character code used on printed key boards. A
// bystander tile prints as blank.
func (m Marker) Code() string {
	switch m {
	case BlueAgent:
		return "B"
	case RedAgent:
		return "R"
	case Assassin:
		return "X"
	}
	return ""
}

// ParseMarker maps a printed code back to its marker. The empty string is a
// valid code, meaning NoMarker.
func ParseMarker(code string) (Marker, bool) {
	switch code {
	case "":
		return NoMarker, true
	case "B":
		return BlueAgent, true
	case "R":
		return RedAgent, true
	case "X":
		return Assassin, true
	}
	return NoMarker, false
}

// Team is one of the two guessing sides.
type Team int

const (
	// NoTeam is an error case.
	NoTeam Team = iota
	BlueTeam
	RedTeam
)

func (t Team) String() string {
	switch t {
	case BlueTeam:
		return "Blue Team"
	case RedTeam:
		return "Red Team"
	}
	return ""
}

// Marker returns the agent marker used for this team's tiles.
func (t Team) Marker() Marker {
	switch t {
	case BlueTeam:
		return BlueAgent
	case RedTeam:
		return RedAgent
	}
	return NoMarker
}

// Other returns the opposing team.
func (t Team) Other() Team {
	switch t {
	case BlueTeam:
		return RedTeam
	case RedTeam:
		return BlueTeam
	}
	return NoTeam
}
