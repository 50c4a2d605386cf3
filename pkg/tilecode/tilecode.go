package tilecode

// Code is a tile terrain/feature code, 0-104.
type Code uint8

// Flag is a bitset of tile properties. Values are powers of two so a tile
// can carry several at once.
type Flag uint16

const (
	HDoor      Flag = 1 << 0
	VDoor      Flag = 1 << 1
	DoorClosed Flag = 1 << 2
	Chamber    Flag = 1 << 6
	Protected  Flag = 1 << 7
	WebFloor   Flag = 1 << 8
	Miniset    Flag = 1 << 9
	Chasm      Flag = 1 << 10
	Secret     Flag = 1 << 11
	NoCeiling  Flag = 1 << 12
)

// Structural codes produced by carving and marching tiles.
const (
	Unset       Code = 0  // not yet carved
	VWall       Code = 1  // vertical wall / raw-carved floor (pre marching-tiles)
	HWall       Code = 2  // horizontal wall
	Corner      Code = 3
	WallEndH    Code = 23 // horizontal wall tile bordering void, tile-fix target
	Pillar      Code = 15
	Floor       Code = 13
	Void        Code = 22 // uncarved interior
	HDoorClosed Code = 25
	VDoorClosed Code = 26
	StairsUp    Code = 60
	StairsDown  Code = 61
	CenterPost  Code = 100 // chamber pillar
	SecretWall  Code = 92
	ChasmCode   Code = 79
	HangingCode Code = 80
	PlankH      Code = 81
	PlankV      Code = 82
	SpinnerCode Code = 96
	WebFloorObj Code = 78 // placed object code that sets WebFloor instead of overwriting
	StatueCol   Code = 99 // boss-chamber statue column
	Bookshelf   Code = 101
	Pedestal    Code = 102
	Chest       Code = 103
	Statue      Code = 104
)

// PlatformEndpoints maps a platform corner index (0-3) to its tile code,
// for the rotating_platforms theme.
var PlatformEndpoints = [4]Code{84, 85, 86, 87}

// Monster codes referenced directly by placement logic.
const (
	Spiderling         Code = 62
	TrappingSpiderling Code = 90
	SpiderQueen        Code = 98
)

// Pre-door wall-variant decorative codes and their rotations, used by the
// wall & door builder. Mirrors the source's l5_conv_tbl / wall decoration
// switch: solid, mossy, webbed horizontal/vertical variants.
const (
	WallSolidH Code = 14
	WallMossH  Code = 19
	WallWebH   Code = 24
	WallSolidV Code = 18
	WallMossV  Code = 21
	WallWebV   Code = 27
)

// asciiTable is the canonical tile-code -> ASCII projection, ported
// verbatim from the original char_map_ initializer.
var asciiTable = map[Code]byte{
	1: '|', 2: '-', 3: '+', 4: '+', 5: '+', 6: '+', 7: '+', 8: '+', 9: '+', 10: '+',
	11: 'o', 12: 'O', 13: ' ', 14: '+', 15: 'P', 16: '+', 17: '+', 18: '|', 19: '-',
	20: '+', 21: '+', 22: '.', 23: '+', 24: '+', 25: 'd', 26: 'D', 27: '+',
	28: 'k', 30: 'l', 31: 'z', 35: 'g', 36: 'G', 37: '+', 40: 'n', 42: 'a', 43: ' ',
	60: '<', 61: '>', 62: 's', 63: '\'', 64: '~', 65: 'S', 66: 'b', 67: 'q', 68: 'L',
	69: 'K', 70: 'M', 71: 'I', 72: 'c', 73: 'w', 74: 'C', 75: 'J', 76: ')', 77: '(',
	78: '#', 79: '_', 80: '^', 81: '/', 82: '\\', 83: 'Y', 84: '1', 85: '2', 86: '3',
	87: '4', 88: 'e', 89: ',', 90: 't', 91: 'V', 92: '&', 93: 'm', 94: 'W', 95: 'r',
	96: '%', 97: 'E', 98: 'Q', 99: 'X', 100: 'p', 101: 'A', 102: 'B', 103: 'F', 104: 'N',
}

// ASCII returns the projected character for a tile code. Unmapped codes
// (including Unset) project to a space, matching the zero-valued default
// the original leaves for codes it never assigns.
func ASCII(c Code) byte {
	if ch, ok := asciiTable[c]; ok {
		return ch
	}
	return ' '
}

// monsterObjectCodes is the set of codes that render into ascii_mobj
// instead of ascii_terrain.
var monsterObjectCodes = map[Code]bool{
	28: true, 30: true, 31: true, 35: true, 36: true, 40: true, 42: true,
	62: true, 65: true, 66: true, 67: true, 68: true, 69: true, 70: true,
	71: true, 72: true, 73: true, 74: true, 75: true, 83: true, 88: true,
	89: true, 90: true, 91: true, 93: true, 94: true, 95: true, 97: true,
	98: true,
}

// IsMonsterObject reports whether a code belongs on the monster/object
// ASCII layer rather than the terrain layer.
func IsMonsterObject(c Code) bool {
	return monsterObjectCodes[Code(c)]
}

// walkableCodes is the set of codes that count as floor for room discovery,
// path solving and IsRoomTile.
var walkableCodes = map[Code]bool{
	11: true, 12: true, 13: true, 60: true, 61: true, 62: true,
	63: true, 64: true, 65: true, 75: true,
}

// IsWalkable reports whether a tile code is part of the walkable set.
func IsWalkable(c Code) bool {
	return walkableCodes[c]
}

// transparentChars is the set of projected ASCII characters a tile may
// carry and still be see-through, ported from IsTileTransparent. Working
// from the projected character (not the raw code) matches the original,
// which tests ascii_dungeon rather than dungeon directly, and several
// distinct codes share one character.
var transparentChars = map[byte]bool{
	' ': true, '^': true, '/': true, '\\': true, 's': true, 'S': true,
	'Q': true, 'r': true, 'E': true, 'Y': true, 'K': true, 'q': true,
	'w': true, 'b': true, 'L': true, 'o': true, 'O': true, 'g': true,
	'G': true, '<': true, '>': true, '\'': true, '~': true, '(': true,
	')': true, 'd': true, 'D': true,
}

// IsTransparent reports whether a tile code is see-through for the
// visibility raycaster. Doors project to the same 'd'/'D' character
// whether open or closed, so transparency for them is gated on the
// DoorClosed flag directly rather than on the projected character.
func IsTransparent(c Code, flags Flag) bool {
	if IsDoorCode(c) {
		return flags&DoorClosed == 0
	}
	return transparentChars[ASCII(c)]
}

// clearChars is the set of projected ASCII characters a tile may carry and
// still be passable for movement/path solving, ignoring door-open state.
var clearChars = map[byte]bool{
	' ': true, '^': true, 's': true, 'S': true, 'Q': true, 'r': true,
	'E': true, 'Y': true, 'w': true, 'K': true, 'o': true, 'O': true,
	'L': true, '(': true, ')': true,
}

// IsClear reports whether a tile code is passable. When considerDoorState
// is true, closed doors (flagged DoorClosed) are not passable.
func IsClear(c Code, flags Flag, considerDoorState bool) bool {
	ch := ASCII(c)
	if ch == 'd' || ch == 'D' {
		if considerDoorState {
			return flags&DoorClosed == 0
		}
		return true
	}
	return clearChars[ch]
}

// nextToWallCodes is the set of codes that make a tile "next to wall" when
// found in the 8-neighborhood, ported from IsTileNextToWall.
var nextToWallCodes = map[Code]bool{1: true, 2: true, 16: true, 18: true}

// IsWallLike reports whether a code counts toward IsTileNextToWall.
func IsWallLike(c Code) bool {
	return nextToWallCodes[c]
}

// IsDoorCode reports whether a code is one of the closed-door terrain
// codes (before DoorClosed-flag driven ASCII projection).
func IsDoorCode(c Code) bool {
	return c == HDoorClosed || c == VDoorClosed
}

// placementMonsterCodes is the set of monster codes IsGoodPlaceLocation
// checks against the min_monster exclusion radius.
var placementMonsterCodes = map[Code]bool{62: true, 65: true, 73: true, 75: true}

// IsPlacementMonster reports whether a code counts as a monster tile for
// placement rejection sampling.
func IsPlacementMonster(c Code) bool {
	return placementMonsterCodes[c]
}

// Offset is a 2D tile displacement.
type Offset struct{ DX, DY int }

// DirOffsets maps a 3x3 direction code (0-9) to its tile offset. Index 4 is
// the zero offset (self); index 9 is the "unreachable" sentinel and also
// maps to the zero offset, matching code_to_offset_'s trailing duplicate
// entry in the original.
var DirOffsets = [10]Offset{
	{+1, +1}, {+0, +1}, {-1, +1},
	{+1, +0}, {+0, +0}, {-1, +0},
	{+1, -1}, {+0, -1}, {-1, -1},
	{+0, +0},
}

// Unreachable is the direction code meaning no path exists.
const Unreachable = 9

// Self is the direction code meaning the source tile is the destination.
const Self = 4

// MoveCost maps a 3x3 neighbor index (row-major, y-outer/x-inner matching
// DirOffsets' layout) to its Dijkstra edge cost: 1.4 diagonal, 1.0
// orthogonal, 0.0 for the self cell.
var MoveCost = [9]float32{
	1.4, 1.0, 1.4,
	1.0, 0.0, 1.0,
	1.4, 1.0, 1.4,
}

// OffsetToCode maps a unit offset (dx, dy each in {-1,0,1}) to its 3x3
// direction code, the inverse of DirOffsets for the 9 real entries.
func OffsetToCode(dx, dy int) int {
	for code := 0; code < 9; code++ {
		o := DirOffsets[code]
		if o.DX == dx && o.DY == dy {
			return code
		}
	}
	return Unreachable
}
