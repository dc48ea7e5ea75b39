package main

import (
	"context"
	"errors"
	"math/rand/v2"
	"os"

	"github.com/vancomm/bombsaway/internal/command"
)

func play(ctx context.Context, rnd *rand.Rand) error {
	p, err := boardParams()
	if err != nil {
		return err
	}
	session, err := command.NewSession(p.Board(), p.Charges(), rnd)
	if err != nil {
		return err
	}
	log.WithField("session", session.ID).Info("session started")

	err = session.Serve(ctx, os.Stdin, os.Stdout)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
