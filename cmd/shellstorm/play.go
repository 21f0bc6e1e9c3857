package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lunarbyte/shellstorm/internal/audio"
	"github.com/lunarbyte/shellstorm/internal/config"
	"github.com/lunarbyte/shellstorm/internal/core"
	"github.com/lunarbyte/shellstorm/internal/game"
	"github.com/lunarbyte/shellstorm/internal/netplay"
	"github.com/lunarbyte/shellstorm/internal/platform/tui"
	"github.com/lunarbyte/shellstorm/internal/storage"
)

var (
	flagCharacter string
	flagConfig    string
	flagWeb       string
	flagSound     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a local run",
	Long: `Start a local run in the current terminal.

Examples:
  shellstorm play
  shellstorm play --character boulder --sound
  shellstorm play --seed 42 --config my-tuning.yaml
  shellstorm play --web :8080    # spectators at ws://localhost:8080/watch`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagCharacter, "character", "c", "", "character to play (see 'shellstorm characters')")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "path to a custom simulation config YAML")
	playCmd.Flags().StringVar(&flagWeb, "web", "", "serve a live spectator feed on this address")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "enable sound effects")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}

	if flagCharacter != "" {
		if _, err := game.CharacterByID(flagCharacter); err != nil {
			return err
		}
	}

	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		w, h = 80, 24
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rt := core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: flagFPS,
		Seed:     seed,
	}

	opts := tui.Options{
		Character: flagCharacter,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: leaderboard disabled: %v\n", err)
	} else {
		opts.Store = store
		defer store.Close()
	}

	if flagSound {
		player := audio.NewPlayer()
		if err := player.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		} else {
			opts.Audio = player
			defer player.Cleanup()
		}
	}

	if flagWeb != "" {
		logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "shellstorm-web"})
		hub := netplay.NewHub(logger)
		defer hub.Close()

		mux := http.NewServeMux()
		mux.Handle("/watch", hub)
		go func() {
			if err := http.ListenAndServe(flagWeb, mux); err != nil {
				logger.Error("spectator server stopped", "error", err)
			}
		}()
		opts.Hub = hub
	}

	return tui.Run(gameCfg, rt, opts)
}
