package main

import (
	"bufio"
	"io"
)

var asciiTiles = map[tile]byte{
	tileWall:    '#',
	tileOpen:    ' ',
	tileVisited: '.',
	tilePath:    '*',
	tileStart:   'S',
	tileEnd:     'E',
	tileCurrent: '@',
}

// writeASCII prints b one text line per board row.
func writeASCII(w io.Writer, b *board) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			if err := bw.WriteByte(asciiTiles[b.at(x, y)]); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
