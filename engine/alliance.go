package engine

import "fmt"

// Alliance is a symmetric relation between two players, destroyed by
// either party via Break.
type Alliance struct {
	g         *Game
	a, b      *Player
	createdAt Tick
}

func (al *Alliance) CreatedAt() Tick { return al.createdAt }

// Other returns the partner of p in this alliance
func (al *Alliance) Other(p *Player) *Player {
	if al.a == p {
		return al.b
	}
	return al.a
}

// Break dissolves the alliance
func (al *Alliance) Break() {
	al.g.removeAlliance(al)
}

// AllianceRequest is a directed pending relation, destroyed on
// resolution.
type AllianceRequest struct {
	g         *Game
	from, to  *Player
	createdAt Tick
	resolved  bool
}

func (r *AllianceRequest) From() *Player   { return r.from }
func (r *AllianceRequest) To() *Player     { return r.to }
func (r *AllianceRequest) CreatedAt() Tick { return r.createdAt }

// Accept forms the alliance and destroys the request
func (r *AllianceRequest) Accept() *Alliance {
	if r.resolved {
		panic(fmt.Sprintf("engine: alliance request %s->%s resolved twice", r.from.name, r.to.name))
	}
	r.resolved = true
	r.g.removeRequest(r)
	al := &Alliance{g: r.g, a: r.from, b: r.to, createdAt: r.g.ticks}
	r.g.alliances = append(r.g.alliances, al)
	return al
}

// Reject destroys the request without forming an alliance
func (r *AllianceRequest) Reject() {
	if r.resolved {
		return
	}
	r.resolved = true
	r.g.removeRequest(r)
}
