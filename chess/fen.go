// fen.go parses and formats positions using Forsyth-Edwards Notation.
// http://en.wikipedia.org/wiki/Forsyth%E2%80%93Edwards_Notation
//
// The codec's decode path never calls into this file (§4.4); it exists for
// test fixtures, perft tooling and the writer's demo-game CLI.

package chess

import (
	"fmt"
	"strconv"
	"strings"
)

var itoa = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8"}

var symbolToPiece = map[rune]Piece{
	'p': ColorFigure(Black, Pawn),
	'n': ColorFigure(Black, Knight),
	'b': ColorFigure(Black, Bishop),
	'r': ColorFigure(Black, Rook),
	'q': ColorFigure(Black, Queen),
	'k': ColorFigure(Black, King),

	'P': ColorFigure(White, Pawn),
	'N': ColorFigure(White, Knight),
	'B': ColorFigure(White, Bishop),
	'R': ColorFigure(White, Rook),
	'Q': ColorFigure(White, Queen),
	'K': ColorFigure(White, King),
}

var pieceToSymbol = map[Piece]string{
	NoPiece: ".",
}

func init() {
	for r, pi := range symbolToPiece {
		pieceToSymbol[pi] = string(r)
	}
}

type castleInfo struct {
	Castle Castle
	Piece  [2]Piece
	Square [2]Square
}

var symbolToCastleInfo = map[rune]castleInfo{
	'K': {Castle: WhiteOO, Piece: [2]Piece{ColorFigure(White, King), ColorFigure(White, Rook)}, Square: [2]Square{SquareE1, SquareH1}},
	'Q': {Castle: WhiteOOO, Piece: [2]Piece{ColorFigure(White, King), ColorFigure(White, Rook)}, Square: [2]Square{SquareE1, SquareA1}},
	'k': {Castle: BlackOO, Piece: [2]Piece{ColorFigure(Black, King), ColorFigure(Black, Rook)}, Square: [2]Square{SquareE8, SquareH8}},
	'q': {Castle: BlackOOO, Piece: [2]Piece{ColorFigure(Black, King), ColorFigure(Black, Rook)}, Square: [2]Square{SquareE8, SquareA8}},
}

// PositionFromFEN parses fen (6 space-separated fields) into a new Position.
func PositionFromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("fen: expected 6 fields, got %d", len(fields))
	}

	pos := NewPosition()
	if err := ParsePiecePlacement(fields[0], pos); err != nil {
		return nil, err
	}
	if err := ParseSideToMove(fields[1], pos); err != nil {
		return nil, err
	}
	if err := ParseCastlingAbility(fields[2], pos); err != nil {
		return nil, err
	}
	if err := ParseEnpassantSquare(fields[3], pos); err != nil {
		return nil, err
	}
	halfMove, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("fen: invalid half-move clock: %w", err)
	}
	fullMove, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("fen: invalid full-move number: %w", err)
	}
	pos.SetHalfMoveClock(halfMove)
	pos.FullMoveNumber = fullMove
	return pos, nil
}

// ParsePiecePlacement parses the first FEN field into pos.
func ParsePiecePlacement(str string, pos *Position) error {
	ranks := strings.Split(str, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("fen: expected 8 ranks, got %d", len(ranks))
	}
	for r := range ranks {
		f := 0
		for _, p := range ranks[r] {
			pi, ok := symbolToPiece[p]
			if !ok {
				if '1' <= p && p <= '8' {
					f += int(p-'0') - 1
				} else {
					return fmt.Errorf("fen: expected piece or digit, got %q", p)
				}
			} else {
				pos.Put(RankFile(7-r, f), pi)
			}
			f++
			if f > 8 {
				return fmt.Errorf("fen: rank %d too long", 8-r)
			}
		}
		if f != 8 {
			return fmt.Errorf("fen: rank %d too short", 8-r)
		}
	}
	return nil
}

// FormatPiecePlacement converts pos to the first FEN field.
func FormatPiecePlacement(pos *Position) string {
	var s strings.Builder
	for r := 7; r >= 0; r-- {
		space := 0
		for f := 0; f < 8; f++ {
			pi := pos.Get(RankFile(r, f))
			if pi == NoPiece {
				space++
				continue
			}
			if space != 0 {
				s.WriteString(itoa[space])
				space = 0
			}
			s.WriteString(pieceToSymbol[pi])
		}
		if space != 0 {
			s.WriteString(itoa[space])
		}
		if r != 0 {
			s.WriteByte('/')
		}
	}
	return s.String()
}

// ParseSideToMove parses the second FEN field.
func ParseSideToMove(str string, pos *Position) error {
	switch str {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return fmt.Errorf("fen: invalid side to move %q", str)
	}
	return nil
}

// ParseCastlingAbility parses the third FEN field.
func ParseCastlingAbility(str string, pos *Position) error {
	if str == "-" {
		pos.SetCastlingAbility(NoCastle)
		return nil
	}
	var ability Castle
	for _, p := range str {
		info, ok := symbolToCastleInfo[p]
		if !ok {
			return fmt.Errorf("fen: invalid castling ability %q", str)
		}
		ability |= info.Castle
		for i := 0; i < 2; i++ {
			if info.Piece[i] != pos.Get(info.Square[i]) {
				return fmt.Errorf("fen: expected %v at %v, got %v", info.Piece[i], info.Square[i], pos.Get(info.Square[i]))
			}
		}
	}
	pos.SetCastlingAbility(ability)
	return nil
}

// FormatCastlingAbility converts pos's castling rights to the third FEN
// field.
func FormatCastlingAbility(pos *Position) string {
	return pos.CastlingAbility().String()
}

// ParseEnpassantSquare parses the fourth FEN field.
func ParseEnpassantSquare(str string, pos *Position) error {
	if str == "-" {
		pos.SetEnpassantSquare(NoSquare)
		return nil
	}
	sq, err := SquareFromString(str)
	if err != nil {
		return err
	}
	pos.SetEnpassantSquare(sq)
	return nil
}

// FormatEnpassantSquare converts pos's en-passant target to the fourth FEN
// field.
func FormatEnpassantSquare(pos *Position) string {
	if pos.EnpassantSquare() == NoSquare {
		return "-"
	}
	return pos.EnpassantSquare().String()
}
