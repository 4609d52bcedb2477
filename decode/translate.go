package decode

// not1 complements a single bit value (0 or 1); used in the several
// translation templates below that need the logical complement of a
// flag bit rather than its arithmetic negation.
func not1(x uint32) uint32 {
	return x ^ 1
}

// TranslateThumb produces the ARM word equivalent to a Thumb instruction,
// or false if no ARM equivalent exists (LongBranchWithLink: ARM has no
// single-instruction form of a BL target computed across two Thumb
// halfwords).
func TranslateThumb(inst uint16) (uint32, bool) {
	typ := DecodeThumb(inst)

	op0 := uint32(inst&0x1800) >> 11
	off5 := uint32(inst&0x7C0) >> 6
	rs := uint32(inst&0x38) >> 3
	rd0 := uint32(inst & 0x7)
	i := uint32(inst&0x400) >> 10
	op1 := uint32(inst&0x200) >> 9
	rn := uint32(inst&0x1C0) >> 6
	rd1 := uint32(inst&0x700) >> 8
	off8 := uint32(inst & 0xFF)
	op2 := uint32(inst&0x3C0) >> 6
	op3 := uint32(inst&0x300) >> 8
	h1 := uint32(inst&0x80) >> 7
	h2 := uint32(inst&0x40) >> 6
	l := uint32(inst&0x800) >> 11
	b := uint32(inst&0x1000) >> 12
	word7 := uint32(inst & 0x7F)
	r := uint32(inst&0x100) >> 8
	cond := uint32(inst&0xF00) >> 8
	off11 := uint32(inst & 0x7FF)

	switch typ {
	case ThumbSoftwareInterrupt:
		return off8 | 0xEF000000, true

	case AddOffsetToStackPointer:
		return 0b11100000000011011101000000000000 | word7 | (1 << (23 - h1)), true

	case PushPopRegisters:
		return 0b11101000001011010000000000000000 | off8 |
			(((r & not1(l)) & 0b1) << 14) |
			((r & l) << 15) |
			(l << 20) |
			(l << 23) |
			((not1(l) & 0b1) << 24), true

	case LoadStoreWithRegisterOffset:
		return 0b11100111100000000000000000000000 | rn | (rd0 << 12) | (rs << 16) | (i << 22) | (l << 20), true

	case LoadStoreSignExtendedByteHalfword:
		return 0b11100001100000000000000010010000 | rn | (l << 5) | (i << 6) | (rd0 << 12) | (rs << 16) | ((i | l) << 20), true

	case ALUOperation:
		shift := uint32(0)
		if op2 == 0x7 {
			shift = 0b0111
		}
		switch {
		case op2 == 0xD: // multiply
			return 0b11100000000100000000000010010000 | rs | (rd0 << 8) | (rd0 << 16), true
		case op2 == 0x9:
			return 0b11100010011100000000000000000000 | (rd0 << 12) | (rs << 16), true
		default:
			mapped := op2
			switch {
			case op2 >= 0x2 && op2 <= 0x4:
				mapped = 0xC
			case op2 == 0x7:
				mapped = 0xD
			case op2 == 0x9:
				mapped = 0x3
			}
			return 0b11100000000100000000000000000000 | rs | (shift << 4) | (rd0 << 12) | (rd0 << 16) | (mapped << 21), true
		}

	case HiRegisterOperationsBranchExchange:
		var mapped uint32
		switch op3 {
		case 0:
			mapped = 0b0100
		case 1:
			mapped = 0b1010
		case 2:
			mapped = 0b1101
		default: // 3
			mapped = 0b0000
		}
		rsh := rs | (h2 << 3)
		rdh := rd0 | (h1 << 3)
		if mapped == 0 {
			return 0b11100001001011111111111100010000 | rsh, true
		}
		var setCmpFlag uint32
		if mapped == 10 {
			setCmpFlag = 0b1 << 20
		}
		return 0b11100000000000000000000000000000 | rsh | (rdh << 12) | (rdh << 16) | setCmpFlag | (mapped << 21), true

	case AddSubtract:
		top := (op1 << 1) | ((not1(op1) & 0b1) << 2)
		return 0b11100000000100000000000000000000 | rn | (rd0 << 12) | (rs << 16) | (top << 21) | (i << 25), true

	case UnconditionalBranch:
		return 0b11101010000000000000000000000000 | (off11 >> 1), true

	case PCRelativeLoad:
		return 0b11100101100111110000000000000000 | (off8 << 2) | (rd1 << 12), true

	case LoadStoreHalfword:
		offhi := (off5 << 1 & 0xF0) >> 4
		offlo := off5<<1&0xF
		return 0b11100001110000000000000010110000 | (rs << 16) | (rd0 << 12) | (l << 20) | (offhi << 8) | offlo, true

	case SPRelativeLoadStore:
		return 0b11100101100011010000000000000000 | off8 | (rd1 << 12) | (l << 20), true

	case LoadAddress:
		return 0b11100010100011010000001000000000 | off8 | (rd1 << 12) | ((not1(l) & 0b1) << 17), true

	case MultipleLoadStore:
		return 0b11101000101000000000000000000000 | off8 | (rd1 << 16) | (l << 20), true

	case ConditionalBranch:
		return 0b00001010000000000000000000000000 | off8 | (cond << 28), true

	case LongBranchWithLink:
		return 0, false

	case MoveShiftedRegister:
		return 0b11100001101100000000000000000000 | rs | (op0 << 5) | (off5 << 7) | (rd0 << 12), true

	case MoveCompareAddSubtractImmediate:
		var mapped uint32
		switch op0 {
		case 0:
			mapped = 0b1101
		case 1:
			mapped = 0b1010
		case 2:
			mapped = 0b0100
		default: // 3
			mapped = 0b0010
		}
		return 0b11100010000100000000000000000000 | off8 | (rd1 << 12) | (rd1 << 16) | (mapped << 21), true

	case LoadStoreWithImmediateOffset:
		return 0b11100101100000000000000000000000 | off5 | (rd0 << 12) | (rs << 16) | (l << 20) | (b << 22), true

	default: // ThumbUndefined
		return 0b11100110000000000000000000010000, true
	}
}
