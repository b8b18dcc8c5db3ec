// This file is part of Gopher2e.
//
// Gopher2e is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2e is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2e.  If not, see <https://www.gnu.org/licenses/>.

package instructions

// Operator identifies the operation performed by an instruction, independent
// of addressing mode.
type Operator int

// List of operators. The undocumented NMOS operators use the names given in
// "No More Secrets" (groepaz). The 65C02 operators include the Rockwell bit
// manipulation instructions.
const (
	Nop Operator = iota
	Adc
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya

	// undocumented NMOS
	Alr
	Anc
	Ane
	Arr
	Axs
	Dcp
	Isc
	Jam
	Las
	Lax
	Lxa
	Rla
	Rra
	Sax
	Sha
	Shx
	Shy
	Slo
	Sre
	Tas

	// CMOS
	Bbr
	Bbs
	Bra
	Phx
	Phy
	Plx
	Ply
	Rmb
	Smb
	Stz
	Trb
	Tsb
)

var operatorNames = [...]string{
	"NOP", "ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI", "BNE", "BPL",
	"BRK", "BVC", "BVS", "CLC", "CLD", "CLI", "CLV", "CMP", "CPX", "CPY", "DEC",
	"DEX", "DEY", "EOR", "INC", "INX", "INY", "JMP", "JSR", "LDA", "LDX", "LDY",
	"LSR", "ORA", "PHA", "PHP", "PLA", "PLP", "ROL", "ROR", "RTI", "RTS", "SBC",
	"SEC", "SED", "SEI", "STA", "STX", "STY", "TAX", "TAY", "TSX", "TXA", "TXS",
	"TYA",
	"ALR", "ANC", "ANE", "ARR", "AXS", "DCP", "ISC", "JAM", "LAS", "LAX", "LXA",
	"RLA", "RRA", "SAX", "SHA", "SHX", "SHY", "SLO", "SRE", "TAS",
	"BBR", "BBS", "BRA", "PHX", "PHY", "PLX", "PLY", "RMB", "SMB", "STZ", "TRB",
	"TSB",
}

func (op Operator) String() string {
	if op < 0 || int(op) >= len(operatorNames) {
		return "???"
	}
	return operatorNames[op]
}
