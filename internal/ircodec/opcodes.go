package ircodec

// Type tag bytes.
const (
	tagVoid    byte = 0x00
	tagInt1    byte = 0x01
	tagInt8    byte = 0x02
	tagInt16   byte = 0x03
	tagInt32   byte = 0x04
	tagInt64   byte = 0x05
	tagFloat32 byte = 0x06
	tagFloat64 byte = 0x07
	tagPointer byte = 0xE0
	tagStruct  byte = 0xF0
)

// Operand tag bytes prefixing each Call argument, which may hold either a
// virtual value reference or an inlined constant outside the family
// opcode-variant scheme. Return's operand and a Branch condition carry no
// tag: they are always value references.
const (
	operandValue    byte = 0x00
	operandConstant byte = 0x01
)

// Instruction opcodes, by family and operand variant.
const (
	opAllocResult byte = 0x00
	opAllocCount  byte = 0x01

	opStoreVal         byte = 0x10
	opStoreConst       byte = 0x11
	opStoreValIndex    byte = 0x12
	opStoreConstIndex  byte = 0x13

	opLoadResult      byte = 0x20
	opLoadResultIndex byte = 0x21

	opAddValues byte = 0x30
	opAddRHSConst byte = 0x31

	opSubValues   byte = 0x40
	opSubRHSConst byte = 0x41
	opSubLHSConst byte = 0x42

	opMulValues   byte = 0x50
	opMulRHSConst byte = 0x51

	opDivValues   byte = 0x60
	opDivRHSConst byte = 0x61
	opDivLHSConst byte = 0x62

	opRemValues   byte = 0x70
	opRemRHSConst byte = 0x71
	opRemLHSConst byte = 0x72

	opCmpValues   byte = 0x80
	opCmpRHSConst byte = 0x81

	opAndValues   byte = 0x90
	opAndRHSConst byte = 0x91
	opAndLHSConst byte = 0x92

	opOrValues   byte = 0xA0
	opOrRHSConst byte = 0xA1
	opOrLHSConst byte = 0xA2

	opXorValues   byte = 0xB0
	opXorRHSConst byte = 0xB1
	opXorLHSConst byte = 0xB2

	opBranch byte = 0xC0

	opBranchCond byte = 0xC1

	opCallVoid byte = 0xD0
	opCallResult byte = 0xD1

	opReturnVoid byte = 0xE0
	opReturnVal  byte = 0xE1
)

var magic = [4]byte{'S', 'H', 'R', 'D'}

const (
	versionMajor byte = 0x00
	versionMinor byte = 0x01
)
