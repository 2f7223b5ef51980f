package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/davidjames6775-beep/Supervisor-Task-Herding/config"
	"github.com/davidjames6775-beep/Supervisor-Task-Herding/network"
	"github.com/davidjames6775-beep/Supervisor-Task-Herding/room"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := config.Load()
	tuning, err := config.LoadTuning(cfg.TuningPath)
	if err != nil {
		log.Error("load tuning", "err", err)
		os.Exit(1)
	}

	mgr, err := room.NewManager(tuning)
	if err != nil {
		log.Error("start manager", "err", err)
		os.Exit(1)
	}

	h := network.NewHandler(mgr, log)
	log.Info("listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, h.Routes()); err != nil {
		log.Error("server exited", "err", err)
		os.Exit(1)
	}
}
