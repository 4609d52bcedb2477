package decode

// bitpat is a fixed bit pattern over a 32-bit word: a bit belongs to the
// pattern wherever mask has a 1, and must equal the corresponding bit of
// value there. Bits where mask is 0 are don't-care.
type bitpat struct {
	mask, value uint32
}

func (p bitpat) match(inst uint32) bool {
	return inst&p.mask == p.value
}

// armPatterns is deliberately ordered so the first match wins: more
// specific encodings (Branch and Exchange, the multiply family, the
// halfword transfer family) must be tested before the broad two-bit
// major-opcode groups they would otherwise also match.
var armPatterns = []struct {
	pat bitpat
	typ ArmInstType
}{
	{bitpat{0x0FFFFFF0, 0x012FFF10}, BranchAndExchange},
	{bitpat{0x0FB00FF0, 0x01000090}, SingleDataSwap},
	{bitpat{0x0FC000F0, 0x00000090}, Multiply},
	{bitpat{0x0F8000F0, 0x00800090}, MultiplyLong},
	{bitpat{0x0E400F90, 0x00000090}, HalfwordDataTransferRegisterOffset},
	{bitpat{0x0E400090, 0x00400090}, HalfwordDataTransferImmediateOffset},
	{bitpat{0x0E000010, 0x06000010}, ArmUndefined},
	{bitpat{0x0F000010, 0x0E000000}, CoprocessorDataOperation},
	{bitpat{0x0F000010, 0x0E000010}, CoprocessorRegisterTransfer},
	{bitpat{0x0F000000, 0x0F000000}, SoftwareInterrupt},
	{bitpat{0x0E000000, 0x08000000}, BlockDataTransfer},
	{bitpat{0x0E000000, 0x0A000000}, Branch},
	{bitpat{0x0E000000, 0x0C000000}, CoprocessorDataTransfer},
	{bitpat{0x0C000000, 0x04000000}, SingleDataTransfer},
	{bitpat{0x0C000000, 0x00000000}, DataProcessingOrPSRTransfer},
}

// DecodeARM classifies a 32-bit instruction word (condition field included
// but ignored) into its instruction family. The catch-all at the end of
// the pattern list ensures DecodeARM always returns a value; the fixed
// ordering above is what makes that catch-all correct rather than a mask
// for missing cases.
func DecodeARM(inst uint32) ArmInstType {
	for _, p := range armPatterns {
		if p.pat.match(inst) {
			return p.typ
		}
	}
	return ArmUndefined
}
