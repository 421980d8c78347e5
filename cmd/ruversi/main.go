// Command ruversi is the CLI entry point: self-play generation,
// training, engine-vs-engine duels, interactive play, and the GTP and
// Cassio protocol adapters, all built on the same search/eval core
// (§6).
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/o-jill/ruversi-go/internal/board"
	"github.com/o-jill/ruversi-go/internal/cassio"
	"github.com/o-jill/ruversi-go/internal/eval"
	"github.com/o-jill/ruversi-go/internal/game"
	"github.com/o-jill/ruversi-go/internal/gtp"
	"github.com/o-jill/ruversi-go/internal/search"
	"github.com/o-jill/ruversi-go/internal/storage"
	"github.com/o-jill/ruversi-go/internal/train"
	"github.com/o-jill/ruversi-go/internal/tt"
)

// outcomeTarget mirrors the terminal scoring scale in internal/search
// (terminalScale): the trainer only has a win/loss/draw label per
// recorded game (driver.go stores sign(count()), not the final
// margin), so it is trained toward ±10/0: the score a resolved endgame
// leaf gives a one-stone win or loss, or a draw.
const outcomeTarget = 10

var (
	genkifu    = flag.Bool("genkifu", false, "self-play game generation mode")
	learn      = flag.Bool("learn", false, "train on the recorded kifu archive")
	duel       = flag.Bool("duel", false, "play two weight sets against each other")
	playFlag   = flag.Bool("play", false, "interactive game (human plays black unless -playw)")
	playb      = flag.Bool("playb", false, "interactive game, human plays black")
	playw      = flag.Bool("playw", false, "interactive game, human plays white")
	rfen       = flag.String("rfen", "", "load this RFEN position instead of the start")
	thinkab    = flag.Bool("thinkab", true, "use alpha-beta search (default)")
	thinkall   = flag.Bool("thinkall", false, "use exhaustive search to the end of the game")
	repeat     = flag.Int("repeat", 1, "training epochs or game count")
	eta        = flag.Float64("eta", 0.01, "learning rate")
	ev1        = flag.String("ev1", "", "weight file for side 1 (black)")
	ev2        = flag.String("ev2", "", "weight file for side 2 (white)")
	nFlag      = flag.Int("N", 8, "nominal search depth")
	gtpFlag    = flag.Bool("gtp", false, "run as a GTP engine over stdin/stdout")
	cassioFlag = flag.Bool("cassio", false, "run as a Cassio ENGINE-PROTOCOL engine over stdin/stdout")
	logPath    = flag.String("log", "/tmp/ruversigo.log", "trace log path for the protocol adapters")
)

func main() {
	flag.Parse()

	switch {
	case *gtpFlag:
		runGTP()
	case *cassioFlag:
		runCassio()
	case *genkifu:
		runGenkifu()
	case *learn:
		runLearn()
	case *duel:
		runDuel()
	case *playFlag, *playb, *playw:
		runPlay()
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func loadNet(path string) *eval.Network {
	if path == "" {
		n := eval.New()
		n.Init(rand.New(rand.NewSource(time.Now().UnixNano())))
		return n
	}
	n, err := eval.Load(path)
	if err != nil {
		log.Fatalf("ruversi: loading weights from %s: %v", path, err)
	}
	return n
}

func startPosition() board.Board {
	if *rfen == "" {
		return board.New()
	}
	b, err := board.ParseRFEN(*rfen)
	if err != nil {
		log.Fatalf("ruversi: parsing -rfen: %v", err)
	}
	return b
}

func searchDepth() int {
	if *thinkall {
		return board.NumCell * board.NumCell
	}
	return *nFlag
}

func openLogFile() *os.File {
	f, err := os.OpenFile(*logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Fatalf("ruversi: opening log file %s: %v", *logPath, err)
	}
	log.SetOutput(f)
	return f
}

func runGTP() {
	f := openLogFile()
	defer f.Close()
	log.Printf("gtp session starting, depth=%d", searchDepth())
	e := gtp.New(loadNet(*ev1), searchDepth())
	e.Run(os.Stdin, os.Stdout)
}

func runCassio() {
	f := openLogFile()
	defer f.Close()
	log.Printf("cassio session starting")
	e := cassio.New(loadNet(*ev1))
	e.Run(os.Stdin, os.Stdout)
}

func runGenkifu() {
	netBlack := loadNet(*ev1)
	netWhite := loadNet(*ev2)

	store, err := storage.Open()
	if err != nil {
		log.Fatalf("ruversi: opening store: %v", err)
	}
	defer store.Close()

	for i := 0; i < *repeat; i++ {
		start := startPosition()
		var k storage.Kifu
		if i%2 == 0 {
			k = game.PlaySelfPlay(start, netBlack, netWhite, searchDepth())
		} else {
			k = game.PlaySelfPlay(start, netWhite, netBlack, searchDepth())
		}
		k.ID = fmt.Sprintf("genkifu-%d-%d", time.Now().UnixNano(), i)
		if err := store.SaveKifu(k); err != nil {
			log.Fatalf("ruversi: saving kifu: %v", err)
		}
		fmt.Println(game.ToText(k))
	}
}

func runLearn() {
	net := loadNet(*ev1)
	trainer := &train.Trainer{Eta: float32(*eta)}

	store, err := storage.Open()
	if err != nil {
		log.Fatalf("ruversi: opening store: %v", err)
	}
	defer store.Close()

	ids, err := store.ListKifuIDs()
	if err != nil {
		log.Fatalf("ruversi: listing kifu archive: %v", err)
	}
	if len(ids) == 0 {
		log.Fatalf("ruversi: no recorded games to train on; run -genkifu first")
	}

	for epoch := 0; epoch < *repeat; epoch++ {
		var trained, skipped int
		for _, id := range ids {
			k, err := store.LoadKifu(id)
			if err != nil {
				log.Printf("ruversi: loading kifu %s: %v", id, err)
				continue
			}
			target := float32(k.Outcome) * outcomeTarget
			for _, ply := range k.Plies {
				b, err := board.ParseRFEN(ply.RFEN)
				if err != nil {
					log.Printf("ruversi: kifu %s has a malformed RFEN: %v", id, err)
					continue
				}
				if trainer.Step(net, b, target) {
					skipped++
				} else {
					trained++
				}
			}
		}
		log.Printf("epoch %d: trained %d positions, skipped %d", epoch, trained, skipped)

		cp := storage.Checkpoint{Epoch: epoch, Eta: float32(*eta), Weight: net.Weight, SavedAt: time.Now()}
		if err := store.SaveCheckpoint(cp); err != nil {
			log.Printf("ruversi: saving checkpoint: %v", err)
		}
	}

	if *ev1 != "" {
		if err := eval.Save(*ev1, net); err != nil {
			log.Fatalf("ruversi: saving weights to %s: %v", *ev1, err)
		}
	}
}

func runDuel() {
	net1 := loadNet(*ev1)
	net2 := loadNet(*ev2)
	depth := searchDepth()

	var wins1, wins2, draws int
	for i := 0; i < *repeat; i++ {
		start := startPosition()
		var k storage.Kifu
		if i%2 == 0 {
			k = game.PlaySelfPlay(start, net1, net2, depth)
		} else {
			k = game.PlaySelfPlay(start, net2, net1, depth)
		}

		result := int(k.Outcome)
		if i%2 != 0 {
			result = -result
		}
		switch {
		case result > 0:
			wins1++
		case result < 0:
			wins2++
		default:
			draws++
		}
	}
	fmt.Printf("ev1=%d ev2=%d draws=%d (of %d games)\n", wins1, wins2, draws, *repeat)
}

func runPlay() {
	humanBlack := *playb || (*playFlag && !*playw)
	net := loadNet(*ev1)
	depth := searchDepth()
	searcher := &search.Searcher{Net: net, TT: tt.New(1 << 20)}

	human := game.HumanStrategy(os.Stdin, os.Stdout)
	engine := game.NewSearchStrategy(searcher, depth)

	black, white := engine, engine
	if humanBlack {
		black = human
	} else {
		white = human
	}

	k := game.Play(startPosition(), black, white)
	fmt.Println(game.ToText(k))
}
