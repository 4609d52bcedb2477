// Package disasm renders ARM instruction words as mnemonic text, for
// trace output and the host's disasm command. It has no effect on execution;
// Step in the exec package never consults it.
package disasm

import (
	"fmt"
	"strings"

	"arm7tdmi/decode"
)

var aluMnemonics = [...]string{
	"AND", "EOR", "SUB", "RSB", "ADD", "ADC", "SBC", "RSC",
	"TST", "TEQ", "CMP", "CMN", "ORR", "MOV", "BIC", "MVN",
}

var registerNames = [...]string{
	"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7",
	"r8", "r9", "r10", "r11", "r12", "sp", "lr", "pc",
}

func reg(i uint32) string {
	if i < 16 {
		return registerNames[i]
	}
	return fmt.Sprintf("r%d", i)
}

func cond(inst uint32) string {
	cc := (inst >> 28) & 0xF
	if cc == 0xE {
		return "" // AL is conventionally elided
	}
	names := [...]string{"EQ", "NE", "CS", "CC", "MI", "PL", "VS", "VC",
		"HI", "LS", "GE", "LT", "GT", "LE", "", "NV"}
	return names[cc]
}

// ARM disassembles a 32-bit ARM instruction word into a single line of
// mnemonic text. Unknown or unimplemented families render as a bare hex
// dump rather than failing.
func ARM(inst uint32) string {
	typ := decode.DecodeARM(inst)
	c := cond(inst)

	switch typ {
	case decode.BranchAndExchange:
		return fmt.Sprintf("BX%s %s", c, reg(inst&0xF))

	case decode.Branch:
		link := ""
		if inst&0x01000000 != 0 {
			link = "L"
		}
		offset := int32(inst&0x00FFFFFF) << 8 >> 8
		return fmt.Sprintf("B%s%s #%+d", link, c, offset*4+8)

	case decode.SoftwareInterrupt:
		return fmt.Sprintf("SWI%s #%#x", c, inst&0x00FFFFFF)

	case decode.Multiply:
		rd := (inst >> 16) & 0xF
		rn := (inst >> 12) & 0xF
		rs := (inst >> 8) & 0xF
		rm := inst & 0xF
		op := "MUL"
		extra := ""
		if inst&0x00200000 != 0 {
			op = "MLA"
			extra = ", " + reg(rn)
		}
		return fmt.Sprintf("%s%s %s, %s, %s%s", op, c, reg(rd), reg(rm), reg(rs), extra)

	case decode.MultiplyLong:
		rdHi := (inst >> 16) & 0xF
		rdLo := (inst >> 12) & 0xF
		rs := (inst >> 8) & 0xF
		rm := inst & 0xF
		signed := inst&0x00400000 != 0
		accumulate := inst&0x00200000 != 0
		prefix := "U"
		if signed {
			prefix = "S"
		}
		suffix := "MULL"
		if accumulate {
			suffix = "MLAL"
		}
		return fmt.Sprintf("%s%s%s %s, %s, %s, %s", prefix, suffix, c, reg(rdLo), reg(rdHi), reg(rm), reg(rs))

	case decode.SingleDataSwap:
		rd := (inst >> 12) & 0xF
		rn := (inst >> 16) & 0xF
		rm := inst & 0xF
		op := "SWP"
		if inst&0x00400000 != 0 {
			op = "SWPB"
		}
		return fmt.Sprintf("%s%s %s, %s, [%s]", op, c, reg(rd), reg(rm), reg(rn))

	case decode.SingleDataTransfer, decode.HalfwordDataTransferRegisterOffset, decode.HalfwordDataTransferImmediateOffset:
		return disasmTransfer(inst, typ, c)

	case decode.BlockDataTransfer:
		return disasmBlockTransfer(inst, c)

	case decode.DataProcessingOrPSRTransfer:
		return disasmDataProcessing(inst, c)

	case decode.ArmUndefined:
		return fmt.Sprintf("UDF (%#08x)", inst)

	default:
		return fmt.Sprintf(".word %#08x", inst)
	}
}

func disasmDataProcessing(inst uint32, c string) string {
	opcode := (inst >> 21) & 0xF
	s := ""
	if inst&0x00100000 != 0 {
		s = "S"
	}
	if opcode >= 8 && opcode <= 11 && inst&0x00100000 == 0 {
		// MRS/MSR
		if inst&0x00200000 == 0 {
			rd := (inst >> 12) & 0xF
			return fmt.Sprintf("MRS%s %s, CPSR", c, reg(rd))
		}
		return fmt.Sprintf("MSR%s CPSR, ...", c)
	}
	rn := (inst >> 16) & 0xF
	rd := (inst >> 12) & 0xF
	mnem := aluMnemonics[opcode]
	operand := operand2(inst)
	switch opcode {
	case 8, 9, 10, 11: // TST, TEQ, CMP, CMN have no destination
		return fmt.Sprintf("%s%s%s %s, %s", mnem, c, s, reg(rn), operand)
	case 13, 15: // MOV, MVN have no first operand
		return fmt.Sprintf("%s%s%s %s, %s", mnem, c, s, reg(rd), operand)
	default:
		return fmt.Sprintf("%s%s%s %s, %s, %s", mnem, c, s, reg(rd), reg(rn), operand)
	}
}

func operand2(inst uint32) string {
	if inst&0x02000000 != 0 {
		imm := inst & 0xFF
		rotate := (inst >> 8) & 0xF * 2
		return fmt.Sprintf("#%#x", rotateRight(imm, rotate))
	}
	rm := inst & 0xF
	shiftTypes := [...]string{"LSL", "LSR", "ASR", "ROR"}
	st := shiftTypes[(inst>>5)&0x3]
	if inst&0x10 != 0 {
		rs := (inst >> 8) & 0xF
		return fmt.Sprintf("%s, %s %s", reg(rm), st, reg(rs))
	}
	amount := (inst >> 7) & 0x1F
	if amount == 0 {
		return reg(rm)
	}
	return fmt.Sprintf("%s, %s #%d", reg(rm), st, amount)
}

func rotateRight(v, n uint32) uint32 {
	n %= 32
	if n == 0 {
		return v
	}
	return (v >> n) | (v << (32 - n))
}

func disasmTransfer(inst uint32, typ decode.ArmInstType, c string) string {
	rd := (inst >> 12) & 0xF
	rn := (inst >> 16) & 0xF
	load := inst&0x00100000 != 0
	op := "STR"
	if load {
		op = "LDR"
	}
	if typ == decode.SingleDataTransfer && inst&0x00400000 != 0 {
		op += "B"
	}
	base := reg(rn)
	if inst&0x01000000 == 0 {
		return fmt.Sprintf("%s%s %s, [%s], #imm", op, c, reg(rd), base)
	}
	return fmt.Sprintf("%s%s %s, [%s, #imm]", op, c, reg(rd), base)
}

func disasmBlockTransfer(inst uint32, c string) string {
	rn := (inst >> 16) & 0xF
	load := inst&0x00100000 != 0
	op := "STM"
	if load {
		op = "LDM"
	}
	var names []string
	for i := uint32(0); i < 16; i++ {
		if inst&(1<<i) != 0 {
			names = append(names, reg(i))
		}
	}
	return fmt.Sprintf("%s%s %s, {%s}", op, c, reg(rn), strings.Join(names, ", "))
}
