package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/milk9111/sheetrunner/common"
)

// Map characters. Anything else is empty space.
const (
	CharGround       = '*'
	CharPlayer       = 'P'
	CharDoor         = 'D'
	CharArachne      = 'A'
	CharSpike        = 'S'
	CharPlantivorus  = 'F'
	CharGhost        = 'G'
	CharTimeBonus    = 'T'
	CharPencil       = 'C'
	CharMonsterStart = '['
	CharMonsterEnd   = ']'
)

// MonsterSpan is the patrol interval of one monster, as recorded from the
// bracket markers of its row.
type MonsterSpan struct {
	X1, X2 int
	Row    int
}

// Layout is the parsed content of a map file, in grid coordinates.
type Layout struct {
	Ground      []common.Position
	Player      common.Position
	Door        common.Position
	Arachnes    []common.Position
	Spikes      []common.Position
	Plants      []common.Position
	Ghosts      []common.Position
	TimeBonuses []common.Position
	Pencils     []common.Position
	Monsters    []MonsterSpan
}

// ParseMapFile opens and parses the map file at path.
func ParseMapFile(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open map: %w", err)
	}
	defer f.Close()

	layout, err := ParseMap(f)
	if err != nil {
		if mfe, ok := err.(*MapFormatError); ok {
			mfe.Path = path
			return nil, mfe
		}
		return nil, fmt.Errorf("read map %s: %w", path, err)
	}
	return layout, nil
}

// ParseMap scans a map one character at a time, rows top to bottom and
// columns left to right. The bracket markers record absolute columns: at the
// end of each row a monster is added when the recorded start and end columns
// differ, and both reset to 0 for the next row. Several bracket pairs on one
// row therefore collapse into the last recorded start and end.
func ParseMap(r io.Reader) (*Layout, error) {
	var (
		l         Layout
		hasPlayer bool
		hasDoor   bool
		row       int
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	for sc.Scan() {
		monsterX1, monsterX2 := 0, 0
		for col, ch := range []byte(sc.Text()) {
			pos := common.NewPosition(col, row)
			switch ch {
			case CharGround:
				l.Ground = append(l.Ground, pos)
			case CharPlayer:
				hasPlayer = true
				l.Player = pos
			case CharDoor:
				hasDoor = true
				l.Door = pos
			case CharArachne:
				l.Arachnes = append(l.Arachnes, pos)
			case CharMonsterStart:
				monsterX1 = col
			case CharMonsterEnd:
				monsterX2 = col
			case CharSpike:
				l.Spikes = append(l.Spikes, pos)
			case CharPlantivorus:
				l.Plants = append(l.Plants, pos)
			case CharGhost:
				l.Ghosts = append(l.Ghosts, pos)
			case CharTimeBonus:
				l.TimeBonuses = append(l.TimeBonuses, pos)
			case CharPencil:
				l.Pencils = append(l.Pencils, pos)
			}
		}

		if monsterX1 != monsterX2 {
			l.Monsters = append(l.Monsters, MonsterSpan{X1: monsterX1, X2: monsterX2, Row: row})
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if !hasPlayer {
		return nil, &MapFormatError{Err: ErrMissingPlayer}
	}
	if !hasDoor {
		return nil, &MapFormatError{Err: ErrMissingDoor}
	}
	return &l, nil
}
