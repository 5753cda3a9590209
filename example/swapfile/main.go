package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"gridorder/utils/binary"
	"gridorder/word"
)

func main() {
	in := flag.String("in", "", "packed input file to normalize")
	out := flag.String("out", "", "output file")
	magic := flag.String("magic", "", "4-byte magic expected in the first word, such as 'TDLP'; when set, files already in that order are copied through unswapped")
	flag.Parse()

	if *in == "" || *out == "" {
		flag.Usage()
		os.Exit(2)
	}

	log.WithField("module", "swapfile").Infof("host is big-endian: %v", binary.IsBigEndian())

	buf, err := os.ReadFile(*in)
	if err != nil {
		panic(err)
	}
	if len(buf)%word.Width != 0 {
		panic(fmt.Errorf("%s: size %d is not a multiple of the %d-byte word width", *in, len(buf), word.Width))
	}

	needSwap := true
	if *magic != "" {
		if len(*magic) != word.Width {
			panic(fmt.Errorf("magic must be exactly %d bytes: %q", word.Width, *magic))
		}
		var first, want word.Word
		copy(first[:], buf)
		copy(want[:], *magic)

		needSwap, err = word.NeedSwap(first, want)
		if err != nil {
			panic(fmt.Errorf("%s: %v", *in, err))
		}
	}

	if needSwap {
		if err := word.SwapBuffer(buf); err != nil {
			panic(err)
		}
		log.WithField("module", "swapfile").Infof("swapped %d words", len(buf)/word.Width)
	} else {
		log.WithField("module", "swapfile").Info("input already in expected byte order, copying through")
	}

	if err := os.WriteFile(*out, buf, 0644); err != nil {
		panic(err)
	}
}
