package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lemmakit/clu/internal/clu/mirror"
	"github.com/lemmakit/clu/internal/clu/store"
)

func runSync(cmd *cobra.Command, args []string) {
	s := store.Open(dataFile)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	m, err := mirror.New(ctx, cfg.Mirror)
	if err != nil {
		fail("opening mirror: %v", err)
	}
	defer m.Close(ctx)

	if err := m.EnsureSchema(ctx); err != nil {
		fail("preparing mirror schema: %v", err)
	}
	if err := m.SyncAll(ctx, s.All()); err != nil {
		fail("syncing mirror: %v", err)
	}

	fmt.Printf("Synced %d lemmas to %s mirror\n", s.Len(), cfg.Mirror.Backend)
}
