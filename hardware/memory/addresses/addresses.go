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

package addresses

// Soft switch addresses. Where a switch has an OFF and an ON address the ON
// address is always the OFF address plus one.
const (
	KBD         = uint16(0xc000) // read keyboard latch
	CLR80STORE  = uint16(0xc000) // write
	SET80STORE  = uint16(0xc001) // write
	RDMAINRAM   = uint16(0xc002) // write
	RDCARDRAM   = uint16(0xc003) // write
	WRMAINRAM   = uint16(0xc004) // write
	WRCARDRAM   = uint16(0xc005) // write
	SETSLOTCX   = uint16(0xc006) // write
	SETINTCX    = uint16(0xc007) // write
	SETSTDZP    = uint16(0xc008) // write
	SETALTZP    = uint16(0xc009) // write
	SETINTC3ROM = uint16(0xc00a) // write
	SETSLOTC3   = uint16(0xc00b) // write
	CLR80VID    = uint16(0xc00c) // write
	SET80VID    = uint16(0xc00d) // write
	CLRALTCHAR  = uint16(0xc00e) // write
	SETALTCHAR  = uint16(0xc00f) // write
	KBDSTRB     = uint16(0xc010)
	RDLCBNK2    = uint16(0xc011)
	RDLCRAM     = uint16(0xc012)
	RDRAMRD     = uint16(0xc013)
	RDRAMWRT    = uint16(0xc014)
	RDCXROM     = uint16(0xc015)
	RDALTZP     = uint16(0xc016)
	RDC3ROM     = uint16(0xc017)
	RD80STORE   = uint16(0xc018)
	RDVBLBAR    = uint16(0xc019)
	RDTEXT      = uint16(0xc01a)
	RDMIXED     = uint16(0xc01b)
	RDPAGE2     = uint16(0xc01c)
	RDHIRES     = uint16(0xc01d)
	RDALTCHAR   = uint16(0xc01e)
	RD80VID     = uint16(0xc01f)
	TAPEOUT     = uint16(0xc020)
	SPKR        = uint16(0xc030)
	STROBE      = uint16(0xc040)
	TXTCLR      = uint16(0xc050)
	TXTSET      = uint16(0xc051)
	MIXCLR      = uint16(0xc052)
	MIXSET      = uint16(0xc053)
	LOWSCR      = uint16(0xc054)
	HISCR       = uint16(0xc055)
	LORES       = uint16(0xc056)
	HIRES       = uint16(0xc057)
	CLRAN0      = uint16(0xc058)
	SETAN0      = uint16(0xc059)
	CLRAN1      = uint16(0xc05a)
	SETAN1      = uint16(0xc05b)
	CLRAN2      = uint16(0xc05c)
	SETAN2      = uint16(0xc05d)
	CLRAN3      = uint16(0xc05e)
	SETAN3      = uint16(0xc05f)
	TAPEIN      = uint16(0xc060)
	PB0         = uint16(0xc061)
	PB1         = uint16(0xc062)
	PB2         = uint16(0xc063)
	PADDL0      = uint16(0xc064)
	PADDL1      = uint16(0xc065)
	PADDL2      = uint16(0xc066)
	PADDL3      = uint16(0xc067)
	PTRIG       = uint16(0xc070)
	IOUDISON    = uint16(0xc07e) // write. reads RDIOUDIS
	IOUDISOFF   = uint16(0xc07f) // write. reads RDDHIRES
	LCBANK      = uint16(0xc080) // first of the sixteen language card switches
)

// CanonicalReadSymbols list the readable soft switch addresses along with the
// canonical names for those addresses. The map is used to create the Read
// array, which is more suitable for the emulation.
var CanonicalReadSymbols = map[uint16]string{
	KBD:       "KBD",
	KBDSTRB:   "KBDSTRB",
	RDLCBNK2:  "RDLCBNK2",
	RDLCRAM:   "RDLCRAM",
	RDRAMRD:   "RDRAMRD",
	RDRAMWRT:  "RDRAMWRT",
	RDCXROM:   "RDCXROM",
	RDALTZP:   "RDALTZP",
	RDC3ROM:   "RDC3ROM",
	RD80STORE: "RD80STORE",
	RDVBLBAR:  "RDVBLBAR",
	RDTEXT:    "RDTEXT",
	RDMIXED:   "RDMIXED",
	RDPAGE2:   "RDPAGE2",
	RDHIRES:   "RDHIRES",
	RDALTCHAR: "RDALTCHAR",
	RD80VID:   "RD80VID",
	TAPEOUT:   "TAPEOUT",
	SPKR:      "SPKR",
	STROBE:    "STROBE",
	TXTCLR:    "TXTCLR",
	TXTSET:    "TXTSET",
	MIXCLR:    "MIXCLR",
	MIXSET:    "MIXSET",
	LOWSCR:    "LOWSCR",
	HISCR:     "HISCR",
	LORES:     "LORES",
	HIRES:     "HIRES",
	CLRAN0:    "CLRAN0",
	SETAN0:    "SETAN0",
	CLRAN1:    "CLRAN1",
	SETAN1:    "SETAN1",
	CLRAN2:    "CLRAN2",
	SETAN2:    "SETAN2",
	CLRAN3:    "CLRAN3",
	SETAN3:    "SETAN3",
	TAPEIN:    "TAPEIN",
	PB0:       "PB0",
	PB1:       "PB1",
	PB2:       "PB2",
	PADDL0:    "PADDL0",
	PADDL1:    "PADDL1",
	PADDL2:    "PADDL2",
	PADDL3:    "PADDL3",
	PTRIG:     "PTRIG",
	IOUDISON:  "RDIOUDIS",
	IOUDISOFF: "RDDHIRES",
}

// CanonicalWriteSymbols list the writable soft switch addresses along with
// the canonical names for those addresses. (see above for commentary)
var CanonicalWriteSymbols = map[uint16]string{
	CLR80STORE:  "CLR80STORE",
	SET80STORE:  "SET80STORE",
	RDMAINRAM:   "RDMAINRAM",
	RDCARDRAM:   "RDCARDRAM",
	WRMAINRAM:   "WRMAINRAM",
	WRCARDRAM:   "WRCARDRAM",
	SETSLOTCX:   "SETSLOTCX",
	SETINTCX:    "SETINTCX",
	SETSTDZP:    "SETSTDZP",
	SETALTZP:    "SETALTZP",
	SETINTC3ROM: "SETINTC3ROM",
	SETSLOTC3:   "SETSLOTC3ROM",
	CLR80VID:    "CLR80VID",
	SET80VID:    "SET80VID",
	CLRALTCHAR:  "CLRALTCHAR",
	SETALTCHAR:  "SETALTCHAR",
	KBDSTRB:     "KBDSTRB",
	TAPEOUT:     "TAPEOUT",
	SPKR:        "SPKR",
	TXTCLR:      "TXTCLR",
	TXTSET:      "TXTSET",
	MIXCLR:      "MIXCLR",
	MIXSET:      "MIXSET",
	LOWSCR:      "LOWSCR",
	HISCR:       "HISCR",
	LORES:       "LORES",
	HIRES:       "HIRES",
	CLRAN0:      "CLRAN0",
	SETAN0:      "SETAN0",
	CLRAN1:      "CLRAN1",
	SETAN1:      "SETAN1",
	CLRAN2:      "CLRAN2",
	SETAN2:      "SETAN2",
	CLRAN3:      "CLRAN3",
	SETAN3:      "SETAN3",
	PTRIG:       "PTRIG",
	IOUDISON:    "IOUDISON",
	IOUDISOFF:   "IOUDISOFF",
}

// the language card switches have the same name for reading and writing.
var languageCardSymbols = [16]string{
	"RDBNK2WP", "RDROMWRBNK2", "RDROMWP2", "RDBNK2WR",
	"RDBNK2WP", "RDROMWRBNK2", "RDROMWP2", "RDBNK2WR",
	"RDBNK1WP", "RDROMWRBNK1", "RDROMWP1", "RDBNK1WR",
	"RDBNK1WP", "RDROMWRBNK1", "RDROMWP1", "RDBNK1WR",
}

// Read is a sparse array containing the canonical labels for the readable
// soft switches in the I/O page. The index is the low byte of the address. If
// the address is not named (empty string) then reading the address has no
// defined meaning.
var Read []string

// Write is a sparse array containing the canonical labels for the writable
// soft switches in the I/O page. (see above for commentary)
var Write []string

// this init() function create the Read/Write arrays using the read/write maps
// as a source
func init() {
	// the I/O page is 256 bytes. slot I/O above the language card is not
	// named here
	const ioTop = 0xff

	Read = make([]string, ioTop+1)
	for k, v := range CanonicalReadSymbols {
		Read[k&ioTop] = v
	}

	Write = make([]string, ioTop+1)
	for k, v := range CanonicalWriteSymbols {
		Write[k&ioTop] = v
	}

	for i, v := range languageCardSymbols {
		Read[(LCBANK&ioTop)+uint16(i)] = v
		Write[(LCBANK&ioTop)+uint16(i)] = v
	}
}

// Symbol returns the canonical name for the address. The read argument
// selects between the read and write names. An empty string is returned if the
// address is not a named soft switch.
func Symbol(address uint16, read bool) string {
	if address&0xff00 != 0xc000 {
		return ""
	}
	if read {
		return Read[address&0xff]
	}
	return Write[address&0xff]
}
