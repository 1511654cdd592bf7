package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/aglyzov/go-hamt/bitcount"
	"github.com/aglyzov/go-hamt/hamt"
)

func main() {
	var (
		total    = flag.Int("n", 1000, "number of fake words to insert")
		seed     = flag.Int64("seed", 1234567890, "fake data seed")
		popcount = flag.String("popcount", "intrinsic", "bit counter: "+strings.Join(bitcount.Names(), ", "))
		weak     = flag.Bool("weak", false, "hash words by length to force collisions")
		dump     = flag.Bool("dump", false, "dump the trie")
		verbose  = flag.Bool("v", false, "log collisions")
	)

	flag.Parse()

	var level = slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	count, ok := bitcount.ByName(*popcount)
	if !ok {
		logger.Error("unknown bit counter", "name", *popcount)
		os.Exit(2)
	}

	var hash = hamt.String
	if *weak {
		hash = func(s string) uint64 { return uint64(len(s)) }
	}

	var (
		tr    = hamt.New(hash, hamt.WithBitCounter(count), hamt.WithLogger(logger))
		faker = gofakeit.New(*seed)
		added int
	)

	for i := 0; i < *total; i++ {
		if tr.Insert(faker.Word()) {
			added++
		}
	}

	logger.Info("inserted", "words", *total, "distinct", added, "trie", tr.String())

	if err := tr.Verify(); err != nil {
		logger.Error("verification failed", "err", err)
		os.Exit(1)
	}

	if *dump {
		if err := tr.Dump(os.Stdout); err != nil {
			logger.Error("dump failed", "err", err)
			os.Exit(1)
		}
	}

	for _, word := range []string{"hamt", "trie", "the"} {
		cur := tr.Find(word)
		fmt.Printf("%-6s found=%-5v path=%s\n", word, cur.IsAtLeaf(), cur.Path())
	}
}
