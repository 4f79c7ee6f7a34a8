package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/emrt/internal/foreign"
	"github.com/joshuapare/emrt/objspace"
	"github.com/joshuapare/emrt/pkg/gc"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "demo-cycle",
		Short: "Show an unreferenced reference cycle being collected",
		RunE:  runDemoCycle,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "demo-data <hex-bytes>",
		Short: "Wrap a Windows-1252 byte string in a DATA object and decode it",
		Args:  cobra.ExactArgs(1),
		RunE:  runDemoData,
	})
}

type cellIV struct {
	other *objspace.RValue
	freed bool
}

func (c *cellIV) MarkIV(mark objspace.MarkFunc) { mark(c.other) }
func (c *cellIV) FreeIV()                       { c.freed = true }

func runDemoCycle(cmd *cobra.Command, args []string) error {
	col := gc.New(gc.Options{ArenaSize: 8})
	defer col.Close()

	a := col.Alloc(objspace.KindObject, nil)
	b := col.Alloc(objspace.KindObject, nil)
	col.RestoreArena(0)

	a.Data = &objspace.ObjectData{IV: &cellIV{other: b}}
	b.Data = &objspace.ObjectData{IV: &cellIV{other: a}}

	fmt.Printf("live before collect: %d\n", col.Live())
	col.Collect()
	fmt.Printf("live after collect:  %d\n", col.Live())
	return nil
}

func runDemoData(cmd *cobra.Command, args []string) error {
	raw, err := hex.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("invalid hex input: %w", err)
	}

	col := gc.New(gc.Options{ArenaSize: 8})
	defer col.Close()

	freed := false
	obj := col.Alloc(objspace.KindData, nil)
	obj.Data = &objspace.DataData{
		Ptr:  raw,
		Free: func(ptr any) { freed = true },
	}
	col.RestoreArena(0)

	text, err := foreign.DecodeLegacyText(raw)
	if err != nil {
		return err
	}
	fmt.Printf("decoded: %q\n", text)

	col.Collect()
	fmt.Printf("finalizer ran: %v\n", freed)
	return nil
}
