//
// dump.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"unsafe"

	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
	"github.com/markkurossi/twofish"
)

func printLayout(out io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Field").SetAlign(tabulate.ML)
	tab.Header("Offset").SetAlign(tabulate.MR)
	tab.Header("Words").SetAlign(tabulate.MR)
	tab.Header("Bytes").SetAlign(tabulate.MR)

	var ofs int
	for i := 0; i < twofish.NumSBoxes; i++ {
		row := tab.Row()
		row.Column(fmt.Sprintf("S%s", superscript.Itoa(i)))
		row.Column(fmt.Sprintf("%d", ofs))
		row.Column(fmt.Sprintf("%d", twofish.SBoxEntries))
		row.Column(fmt.Sprintf("%d", twofish.SBoxEntries*4))
		ofs += twofish.SBoxEntries * 4
	}
	row := tab.Row()
	row.Column("K")
	row.Column(fmt.Sprintf("%d", ofs))
	row.Column(fmt.Sprintf("%d", twofish.NumRoundKeys))
	row.Column(fmt.Sprintf("%d", twofish.NumRoundKeys*4))

	row = tab.Row()
	row.Column("Serialized").SetFormat(tabulate.FmtBold)
	row.Column("")
	row.Column("")
	row.Column(fmt.Sprintf("%d", twofish.ScheduleSize)).
		SetFormat(tabulate.FmtBold)

	row = tab.Row()
	row.Column("In memory").SetFormat(tabulate.FmtItalic)
	row.Column("")
	row.Column("")
	row.Column(fmt.Sprintf("%d", unsafe.Sizeof(twofish.Schedule{}))).
		SetFormat(tabulate.FmtItalic)

	row = tab.Row()
	row.Column("Budget").SetFormat(tabulate.FmtItalic)
	row.Column("")
	row.Column("")
	row.Column(fmt.Sprintf("%d", twofish.MaxScheduleBytes)).
		SetFormat(tabulate.FmtItalic)

	tab.Print(out)
}

func dumpSchedule(out io.Writer, sched *twofish.Schedule) {
	fmt.Fprintf(out, "Round keys:\n")
	for i := 0; i < twofish.NumRoundKeys; i += 2 {
		fmt.Fprintf(out, "  K%-2s %08X  K%-2s %08X\n",
			superscript.Itoa(i), sched.RoundKey(i),
			superscript.Itoa(i+1), sched.RoundKey(i+1))
	}
	for i := 0; i < twofish.NumSBoxes; i++ {
		fmt.Fprintf(out, "S%s:\n", superscript.Itoa(i))
		for x := 0; x < twofish.SBoxEntries; x += 8 {
			if x >= 16 && !verbose {
				fmt.Fprintf(out, "  ...\n")
				break
			}
			fmt.Fprintf(out, "  %02x:", x)
			for j := 0; j < 8; j++ {
				fmt.Fprintf(out, " %08X", sched.SBox(i, byte(x+j)))
			}
			fmt.Fprintln(out)
		}
	}
	if verbose {
		data := sched.Bytes()
		fmt.Fprintf(out, "Serialized:\n%s", hex.Dump(data[:]))
		clear(data[:])
	}
}
