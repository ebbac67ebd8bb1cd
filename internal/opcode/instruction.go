package opcode

// Instruction describes a 6502 mnemonic and how it affects the control flow.
type Instruction struct {
	Name string
	Jump bool // the operand is the address of code that gets executed
	End  bool // execution does not continue with the following byte
}

func (i *Instruction) String() string {
	return i.Name
}

var (
	// logical and arithmetic
	Ora = &Instruction{Name: "ORA"}
	And = &Instruction{Name: "AND"}
	Eor = &Instruction{Name: "EOR"}
	Adc = &Instruction{Name: "ADC"}
	Sbc = &Instruction{Name: "SBC"}
	Cmp = &Instruction{Name: "CMP"}
	Cpx = &Instruction{Name: "CPX"}
	Cpy = &Instruction{Name: "CPY"}
	Dec = &Instruction{Name: "DEC"}
	Dex = &Instruction{Name: "DEX"}
	Dey = &Instruction{Name: "DEY"}
	Inc = &Instruction{Name: "INC"}
	Inx = &Instruction{Name: "INX"}
	Iny = &Instruction{Name: "INY"}
	Asl = &Instruction{Name: "ASL"}
	Rol = &Instruction{Name: "ROL"}
	Lsr = &Instruction{Name: "LSR"}
	Ror = &Instruction{Name: "ROR"}

	// moves
	Lda = &Instruction{Name: "LDA"}
	Sta = &Instruction{Name: "STA"}
	Ldx = &Instruction{Name: "LDX"}
	Stx = &Instruction{Name: "STX"}
	Ldy = &Instruction{Name: "LDY"}
	Sty = &Instruction{Name: "STY"}
	Tax = &Instruction{Name: "TAX"}
	Txa = &Instruction{Name: "TXA"}
	Tay = &Instruction{Name: "TAY"}
	Tya = &Instruction{Name: "TYA"}
	Tsx = &Instruction{Name: "TSX"}
	Txs = &Instruction{Name: "TXS"}
	Pla = &Instruction{Name: "PLA"}
	Pha = &Instruction{Name: "PHA"}
	Plp = &Instruction{Name: "PLP"}
	Php = &Instruction{Name: "PHP"}

	// jumps and flags
	Bpl = &Instruction{Name: "BPL", Jump: true}
	Bmi = &Instruction{Name: "BMI", Jump: true}
	Bvc = &Instruction{Name: "BVC", Jump: true}
	Bvs = &Instruction{Name: "BVS", Jump: true}
	Bcc = &Instruction{Name: "BCC", Jump: true}
	Bcs = &Instruction{Name: "BCS", Jump: true}
	Bne = &Instruction{Name: "BNE", Jump: true}
	Beq = &Instruction{Name: "BEQ", Jump: true}
	Brk = &Instruction{Name: "BRK", End: true}
	Rti = &Instruction{Name: "RTI", End: true}
	Jsr = &Instruction{Name: "JSR", Jump: true}
	Rts = &Instruction{Name: "RTS", End: true}
	Jmp = &Instruction{Name: "JMP", Jump: true, End: true}
	Bit = &Instruction{Name: "BIT"}
	Clc = &Instruction{Name: "CLC"}
	Sec = &Instruction{Name: "SEC"}
	Cld = &Instruction{Name: "CLD"}
	Sed = &Instruction{Name: "SED"}
	Cli = &Instruction{Name: "CLI"}
	Sei = &Instruction{Name: "SEI"}
	Clv = &Instruction{Name: "CLV"}
	Nop = &Instruction{Name: "NOP"}

	// illegal
	Slo = &Instruction{Name: "SLO"}
	Rla = &Instruction{Name: "RLA"}
	Sre = &Instruction{Name: "SRE"}
	Rra = &Instruction{Name: "RRA"}
	Sax = &Instruction{Name: "SAX"}
	Lax = &Instruction{Name: "LAX"}
	Dcp = &Instruction{Name: "DCP"}
	Isc = &Instruction{Name: "ISC"}
	Anc = &Instruction{Name: "ANC"}
	Alr = &Instruction{Name: "ALR"}
	Arr = &Instruction{Name: "ARR"}
	Xaa = &Instruction{Name: "XAA"}
	Axs = &Instruction{Name: "AXS"}
	Ahx = &Instruction{Name: "AHX"}
	Shy = &Instruction{Name: "SHY"}
	Shx = &Instruction{Name: "SHX"}
	Tas = &Instruction{Name: "TAS"}
	Las = &Instruction{Name: "LAS"}
	Kil = &Instruction{Name: "KIL"}
)
