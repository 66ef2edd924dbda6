package game

// Role is the secret identity dealt to one player.
type Role int

const (
	RoleCitizen Role = iota
	RoleImpostor
	RoleJester
)

func (r Role) String() string {
	switch r {
	case RoleCitizen:
		return "citizen"
	case RoleImpostor:
		return "impostor"
	case RoleJester:
		return "jester"
	default:
		return "unknown"
	}
}

// KnowsWord reports whether the role is told the secret word. Only the
// impostor plays blind; the jester knows the word but wins by getting
// voted out.
func (r Role) KnowsWord() bool {
	return r != RoleImpostor
}

// RoleRecord is one player's dealt role. Partner is set only on impostor
// records, and only when the variant reveals impostors to each other with
// more than one in play; the constructors below are the only way records
// are built, so a citizen or jester never carries a partner.
type RoleRecord struct {
	Role    Role
	Partner string
}

func citizenRecord() RoleRecord {
	return RoleRecord{Role: RoleCitizen}
}

func jesterRecord() RoleRecord {
	return RoleRecord{Role: RoleJester}
}

func impostorRecord(partner string) RoleRecord {
	return RoleRecord{Role: RoleImpostor, Partner: partner}
}

// NoJester is the JesterIndex of a round whose variant deals no jester.
const NoJester = -1

// Round is one complete assignment. It is produced fresh for every game
// start or replay and never mutated; a new Round replaces the old one.
type Round struct {
	// Players is the shuffled seating order. All index fields below
	// refer to positions in this slice, and Roles aligns with it.
	Players         []string
	ImpostorIndices []int
	JesterIndex     int
	Roles           []RoleRecord
	SecretWord      string
	// Starter is a facilitation hint chosen independently of any role.
	Starter string
}
