// Package record keeps a notation record of a game by mirroring every
// applied move into a full rules engine.
package record

import (
	"fmt"

	"github.com/corentings/chess/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/benbeisheim/consolechess/internal/model"
)

// Recorder mirrors moves into a corentings game to obtain SAN and FEN.
// The core generates pseudo-legal moves, so the mirror may refuse one (for
// example a move that leaves the king in check). From then on the recorder
// is detached and falls back to the raw UCI list.
type Recorder struct {
	mirror     *chess.Game
	detached   bool
	blackFirst bool
	uci        []string
	san        []string
}

func New() *Recorder {
	return &Recorder{mirror: chess.NewGame()}
}

// NewFromFEN starts the mirror from fen. An unusable FEN yields a detached
// recorder rather than an error.
func NewFromFEN(fen string) *Recorder {
	r := &Recorder{}
	opt, err := chess.FEN(fen)
	if err != nil {
		log.Warnf("record: mirror cannot load %q: %v", fen, err)
		r.detached = true
		return r
	}
	r.mirror = chess.NewGame(opt)
	r.blackFirst = r.mirror.Position().Turn() == chess.Black
	return r
}

// Push records an applied move.
func (r *Recorder) Push(m model.Move) {
	r.uci = append(r.uci, m.UCI())
	if r.detached {
		return
	}
	pos := r.mirror.Position()
	decoded, err := chess.UCINotation{}.Decode(pos, m.UCI())
	if err != nil {
		r.detach(m, err)
		return
	}
	if !isValid(pos, decoded) {
		r.detach(m, fmt.Errorf("not a legal move in %s", pos.String()))
		return
	}
	san := chess.AlgebraicNotation{}.Encode(pos, decoded)
	if err := r.mirror.Move(decoded, nil); err != nil {
		r.detach(m, err)
		return
	}
	r.san = append(r.san, san)
}

func isValid(pos *chess.Position, m *chess.Move) bool {
	for _, vm := range pos.ValidMoves() {
		if vm.S1() == m.S1() && vm.S2() == m.S2() && vm.Promo() == m.Promo() {
			return true
		}
	}
	return false
}

func (r *Recorder) detach(m model.Move, err error) {
	log.Warnf("record: mirror refused %s, keeping UCI only: %v", m.UCI(), err)
	r.detached = true
}

func (r *Recorder) Detached() bool {
	return r.detached
}

func (r *Recorder) UCI() []string {
	return append([]string(nil), r.uci...)
}

// FEN returns the mirror's position, or "" once detached.
func (r *Recorder) FEN() string {
	if r.detached {
		return ""
	}
	return r.mirror.Position().String()
}

// Lines renders numbered move pairs, "1. e4 e5". SAN is used while the
// mirror is attached, UCI otherwise.
func (r *Recorder) Lines() []string {
	moves := r.san
	if r.detached {
		moves = r.uci
	}

	var lines []string
	i := 0
	if r.blackFirst && len(moves) > 0 {
		lines = append(lines, fmt.Sprintf("1... %s", moves[0]))
		i = 1
	}
	for ; i < len(moves); i += 2 {
		moveNum := len(lines) + 1
		line := fmt.Sprintf("%d. %s", moveNum, moves[i])
		if i+1 < len(moves) {
			line += " " + moves[i+1]
		}
		lines = append(lines, line)
	}
	return lines
}
