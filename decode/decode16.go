package decode

type bitpat16 struct {
	mask, value uint16
}

func (p bitpat16) match(inst uint16) bool {
	return inst&p.mask == p.value
}

// thumbPatterns, like armPatterns, is ordered for first-match-wins: the
// three- and four-bit-prefix families at the end would otherwise also
// match the more specific encodings tested earlier.
var thumbPatterns = []struct {
	pat bitpat16
	typ ThumbInstType
}{
	{bitpat16{0xFF00, 0xDF00}, ThumbSoftwareInterrupt},
	{bitpat16{0xFF00, 0xB000}, AddOffsetToStackPointer},
	{bitpat16{0xF600, 0xB400}, PushPopRegisters},
	{bitpat16{0xF200, 0x5000}, LoadStoreWithRegisterOffset},
	{bitpat16{0xF200, 0x5200}, LoadStoreSignExtendedByteHalfword},
	{bitpat16{0xFC00, 0x4000}, ALUOperation},
	{bitpat16{0xFC00, 0x4400}, HiRegisterOperationsBranchExchange},
	{bitpat16{0xF800, 0x1800}, AddSubtract},
	{bitpat16{0xF800, 0xE000}, UnconditionalBranch},
	{bitpat16{0xF800, 0x4800}, PCRelativeLoad},
	{bitpat16{0xF000, 0x8000}, LoadStoreHalfword},
	{bitpat16{0xF000, 0x9000}, SPRelativeLoadStore},
	{bitpat16{0xF000, 0xA000}, LoadAddress},
	{bitpat16{0xF000, 0xC000}, MultipleLoadStore},
	{bitpat16{0xF000, 0xD000}, ConditionalBranch},
	{bitpat16{0xF000, 0xF000}, LongBranchWithLink},
	{bitpat16{0xE000, 0x0000}, MoveShiftedRegister},
	{bitpat16{0xE000, 0x2000}, MoveCompareAddSubtractImmediate},
	{bitpat16{0xE000, 0x6000}, LoadStoreWithImmediateOffset},
}

// DecodeThumb classifies a 16-bit Thumb instruction word into its
// instruction family.
func DecodeThumb(inst uint16) ThumbInstType {
	for _, p := range thumbPatterns {
		if p.pat.match(inst) {
			return p.typ
		}
	}
	return ThumbUndefined
}
