// Package perft counts leaf nodes of the move-generation tree, the
// standard integration test for a bitboard engine's legality and move
// generator: node counts are sensitive to almost any generator bug, so
// matching a known-good table at several depths catches nearly all of
// them.
package perft

import "github.com/corvidlabs/binpack/chess"

// Counters tallies leaf nodes and the special move kinds that produced
// them, breaking down a perft count the way the chess-programming
// literature's reference tables do.
type Counters struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
}

// Add accumulates o's tallies into c.
func (c *Counters) Add(o Counters) {
	c.Nodes += o.Nodes
	c.Captures += o.Captures
	c.EnPassant += o.EnPassant
	c.Castles += o.Castles
	c.Promotions += o.Promotions
}

// hashEntry caches the Counters for a (position, depth) pair, keyed by
// Zobrist hash, so transpositions in the search tree are counted once.
type hashEntry struct {
	zobrist  uint64
	depth    int
	counters Counters
}

// HashTableSize is the default number of slots in a Count hash table.
const HashTableSize = 1 << 20

// NewHashTable returns a hash table sized for Count's transposition
// cache. Passing nil to Count disables the cache.
func NewHashTable() []hashEntry {
	return make([]hashEntry, HashTableSize)
}

// Count returns the perft result for pos at depth, the number of leaf
// positions reachable by depth pseudo-legal-then-filtered plies. hashTable,
// if non-nil, memoizes by Zobrist hash and is mutated in place; callers
// computing perft for a single fixed position across rising depths should
// reuse the same table.
func Count(pos *chess.Position, depth int, hashTable []hashEntry) Counters {
	if depth == 0 {
		return Counters{Nodes: 1}
	}

	var zobrist uint64
	if hashTable != nil {
		zobrist = pos.Zobrist()
		index := zobrist % uint64(len(hashTable))
		if hashTable[index].depth == depth && hashTable[index].zobrist == zobrist {
			return hashTable[index].counters
		}
	}

	var r Counters
	us := pos.SideToMove
	for _, move := range chess.GenerateMoves(pos) {
		captured := isCapture(pos, move)

		pos.DoMove(move)
		if pos.IsChecked(us) {
			pos.UndoMove(move)
			continue
		}

		if depth == 1 {
			if captured {
				r.Captures++
			}
			switch move.Type {
			case chess.EnPassant:
				r.EnPassant++
			case chess.Castle:
				r.Castles++
			case chess.Promotion:
				r.Promotions++
			}
		}

		r.Add(Count(pos, depth-1, hashTable))
		pos.UndoMove(move)
	}

	if hashTable != nil {
		index := zobrist % uint64(len(hashTable))
		hashTable[index] = hashEntry{zobrist: zobrist, depth: depth, counters: r}
	}
	return r
}

// isCapture reports whether move removes an enemy piece from the board,
// counting en passant (whose destination square is otherwise empty) and
// excluding castling, whose occupied To square holds the mover's own
// rook rather than a captured piece (§3's "king captures own rook"
// convention).
func isCapture(pos *chess.Position, move chess.Move) bool {
	return move.Type == chess.EnPassant || (move.Type != chess.Castle && pos.Get(move.To) != chess.NoPiece)
}
