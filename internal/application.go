package application

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"sort"
	"time"

	"github.com/playgrid/tictactoe-sim/internal/board"
	"github.com/playgrid/tictactoe-sim/internal/config"
	"github.com/playgrid/tictactoe-sim/internal/match"
	"github.com/playgrid/tictactoe-sim/internal/player"
)

// RunApp - runs one simulated match between random players and prints the
// board after every turn plus the final scores.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	grid, err := board.New(conf.Game.BoardSize)
	if err != nil {
		return fmt.Errorf("could not create board: %w", err)
	}

	seed := conf.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) //nolint: gosec // game moves, not secrets

	labels := conf.Game.LabelList()
	players := make([]player.Player, 0, len(labels))
	for range labels {
		players = append(players, player.NewRandomPlayer(rng))
	}

	game, err := match.New(grid, players, labels)
	if err != nil {
		return fmt.Errorf("could not create match: %w", err)
	}

	log.Info("Starting match", "match_id", game.ID(), "board_size", conf.Game.BoardSize, "labels", labels, "seed", seed)

	fmt.Fprint(os.Stdout, game.Board())

	game.Observe(func(_ board.Board, label string, loc board.Location, next board.Board) {
		log.Info("Turn played", "match_id", game.ID(), "label", label, "row", loc.Row, "col", loc.Col)
		fmt.Fprintln(os.Stdout)
		fmt.Fprint(os.Stdout, next)
	})

	outcome := game.Run()

	switch outcome.Status {
	case match.StatusWon:
		log.Info("Match won", "match_id", game.ID(), "winner", outcome.Winner)
	case match.StatusDrawn:
		log.Info("Match drawn", "match_id", game.ID())
	case match.StatusForfeited:
		log.Info("Match forfeited", "match_id", game.ID(), "loser", outcome.Loser, "reason", outcome.Reason)
	}

	fmt.Fprintf(os.Stdout, "\nScores: %s\n", formatScores(outcome.Scores))

	return nil
}

func formatScores(scores map[string]int) string {
	labels := make([]string, 0, len(scores))
	for label := range scores {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	out := ""
	for i, label := range labels {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%s=%d", label, scores[label])
	}

	return out
}
