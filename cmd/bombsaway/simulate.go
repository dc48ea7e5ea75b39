package main

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"os"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/bombsaway/internal/abilities"
	"github.com/vancomm/bombsaway/internal/adventure"
	"github.com/vancomm/bombsaway/internal/board"
	"golang.org/x/sync/errgroup"
)

type tally struct {
	mu      sync.Mutex
	Games   int            `json:"games"`
	Won     int            `json:"won"`
	Scraped int            `json:"scraped"`
	Lost    int            `json:"lost"`
	Reached map[string]int `json:"reached,omitempty"`
}

func (t *tally) addOutcome(o board.Outcome) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Games++
	switch o.Status {
	case board.Won:
		t.Won++
		if o.Scraped {
			t.Scraped++
		}
	case board.Lost:
		t.Lost++
	}
}

func (t *tally) fields() logrus.Fields {
	return logrus.Fields{
		"games": t.Games,
		"won":   t.Won,
		"lost":  t.Lost,
	}
}

// simulate autoplays independent boards, one goroutine per board.
func simulate(ctx context.Context, base uint64) error {
	p, err := boardParams()
	if err != nil {
		return err
	}
	cfg, charges := p.Board(), p.Charges()
	log.WithField("config", cfg.Key()).Info("simulating")

	var t tally
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i := range games {
		g.Go(func() error {
			rnd := rand.New(rand.NewPCG(base, uint64(i)))
			bus := board.NewEventBus()
			b, err := board.New(cfg, rnd, bus)
			if err != nil {
				return err
			}
			m := abilities.NewManager(charges, 0)
			m.Attach(b, bus)
			if err := autoplay(gCtx, b, m, rnd); err != nil {
				return err
			}
			t.addOutcome(b.Outcome())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.WithFields(t.fields()).Info("simulation done")
	return json.NewEncoder(os.Stdout).Encode(&t)
}

// simulateAdventure autoplays whole runs, buying the cheapest affordable
// item in every shop.
func simulateAdventure(ctx context.Context, base uint64) error {
	cls, err := adventure.ParseClass(class)
	if err != nil {
		return err
	}

	t := tally{Reached: make(map[string]int)}
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i := range games {
		g.Go(func() error {
			rnd := rand.New(rand.NewPCG(base, uint64(i)))
			run := adventure.New(cls, adventure.DefaultSettings, rnd)
			if err := playRun(gCtx, run, rnd); err != nil {
				return err
			}

			t.mu.Lock()
			defer t.mu.Unlock()
			t.Games++
			if run.Phase() == adventure.Complete {
				t.Won++
			} else {
				t.Lost++
			}
			t.Reached[waveKey(run.Wave())]++
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.WithFields(t.fields()).WithField("class", cls).Info("adventure simulation done")
	return json.NewEncoder(os.Stdout).Encode(&t)
}

func playRun(ctx context.Context, run *adventure.Run, rnd *rand.Rand) error {
	for run.Phase() == adventure.Ready || run.Phase() == adventure.Shopping {
		if run.Phase() == adventure.Shopping {
			shop(run)
		}
		b, _, err := run.StartWave()
		if err != nil {
			return err
		}
		if err := autoplay(ctx, b, run.Abilities(), rnd); err != nil {
			return err
		}
	}
	return nil
}

func shop(run *adventure.Run) {
	for {
		var cheapest *adventure.Item
		for _, it := range run.Offer() {
			if run.Purchased(it.Key) || it.Cost > run.Scrap() {
				continue
			}
			if cheapest == nil || it.Cost < cheapest.Cost {
				cheapest = &it
			}
		}
		if cheapest == nil || run.Buy(cheapest.Key) != nil {
			return
		}
	}
}

func waveKey(wave int) string {
	return "wave_" + strconv.Itoa(wave)
}
