package vm

// Opcode is the top four bits of an instruction word (bits 31..28),
// selecting one of fourteen operations.
type Opcode uint32

const (
	OpCondMove Opcode = iota
	OpSegLoad
	OpSegStore
	OpAdd
	OpMul
	OpDiv
	OpNand
	OpHalt
	OpMapSeg
	OpUnmapSeg
	OpOutput
	OpInput
	OpLoadProgram
	OpLoadImm
)

func (op Opcode) String() string {
	switch op {
	case OpCondMove:
		return "CondMove"
	case OpSegLoad:
		return "SegLoad"
	case OpSegStore:
		return "SegStore"
	case OpAdd:
		return "Add"
	case OpMul:
		return "Mul"
	case OpDiv:
		return "Div"
	case OpNand:
		return "Nand"
	case OpHalt:
		return "Halt"
	case OpMapSeg:
		return "MapSeg"
	case OpUnmapSeg:
		return "UnmapSeg"
	case OpOutput:
		return "Output"
	case OpInput:
		return "Input"
	case OpLoadProgram:
		return "LoadProgram"
	case OpLoadImm:
		return "LoadImm"
	default:
		return "Invalid"
	}
}

// Field bit positions: LSB of each field, plus the field width, so a
// mask-and-shift reads directly off the constant.
const (
	opcodeLSB = 28
	opcodeMsk = 0xF

	regAStdLSB = 6
	regBStdLSB = 3
	regCStdLSB = 0
	regMsk     = 0x7

	regAImmLSB = 25
	immLSB     = 0
	immMsk     = 0x1FFFFFF // 25 bits
)

// Decoded holds the opcode and the fields relevant to it. For the
// standard form A/B/C are all populated; for LoadImm only A and Imm
// are meaningful.
type Decoded struct {
	Op   Opcode
	A    uint32
	B    uint32
	C    uint32
	Imm  uint32
}

// Decode extracts the opcode and its operand fields from a single
// instruction word. No endianness conversion happens here: the Loader
// already fixed byte order when it assembled the word.
func Decode(word uint32) Decoded {
	op := Opcode((word >> opcodeLSB) & opcodeMsk)

	if op == OpLoadImm {
		return Decoded{
			Op:  op,
			A:   (word >> regAImmLSB) & regMsk,
			Imm: (word >> immLSB) & immMsk,
		}
	}

	return Decoded{
		Op: op,
		A:  (word >> regAStdLSB) & regMsk,
		B:  (word >> regBStdLSB) & regMsk,
		C:  (word >> regCStdLSB) & regMsk,
	}
}
