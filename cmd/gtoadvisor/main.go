package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/pokerforge/gtoadvisor/analysis"
	"github.com/pokerforge/gtoadvisor/gto"
	"github.com/pokerforge/gtoadvisor/internal/server"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	LogLevel string           `short:"l" help:"Log level (debug, info, warn, error)" default:"info"`

	Serve  ServeCmd  `cmd:"" help:"Run the WebSocket advisory server"`
	Decide DecideCmd `cmd:"" help:"Recommend an action for a single decision point"`
	Chart  ChartCmd  `cmd:"" help:"Print a preflop range chart"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("gtoadvisor"),
		kong.Description("Frequency-based poker decision engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	logger := log.New(os.Stderr)
	switch cli.LogLevel {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}

type ServeCmd struct {
	Config string `short:"c" default:"gtoadvisor.hcl" help:"Path to HCL configuration file"`
	Addr   string `short:"a" help:"Listen address (overrides config)"`
}

func (cmd *ServeCmd) Run(logger *log.Logger) error {
	cfg, err := server.LoadConfig(cmd.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cmd.Addr != "" {
		host, port, ok := strings.Cut(cmd.Addr, ":")
		if ok {
			cfg.Server.Address = host
			if _, err := fmt.Sscanf(port, "%d", &cfg.Server.Port); err != nil {
				return fmt.Errorf("invalid addr %q: %w", cmd.Addr, err)
			}
		} else {
			cfg.Server.Address = cmd.Addr
		}
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	srv := server.NewServer(cfg, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down server")
		return srv.Stop()
	})
	return g.Wait()
}

type DecideCmd struct {
	Hole     []string `short:"H" required:"" help:"Two hole card tokens (e.g. As Kd)"`
	Board    []string `short:"b" help:"Community card tokens"`
	Position string   `short:"p" default:"BTN" help:"Seat (UTG, MP, HJ, CO, BTN, SB, BB)"`
	Pot      int      `default:"15" help:"Current pot size"`
	Stack    int      `default:"1000" help:"Effective stack size"`
	Call     int      `default:"0" help:"Amount to call"`
	BigBlind int      `default:"10" help:"Big blind size"`
	RaiseMin int      `default:"0" help:"Minimum raise (-1 if raising is disallowed)"`
	RaiseMax int      `default:"0" help:"Maximum raise (defaults to stack)"`
	Seed     int64    `default:"0" help:"Random seed for reproducible output"`
}

func (cmd *DecideCmd) Run(logger *log.Logger) error {
	street := gto.Preflop
	switch len(cmd.Board) {
	case 0:
	case 3:
		street = gto.Flop
	case 4:
		street = gto.Turn
	case 5:
		street = gto.River
	default:
		return fmt.Errorf("board must have 0, 3, 4 or 5 cards, got %d", len(cmd.Board))
	}

	raiseMin := cmd.RaiseMin
	if raiseMin == 0 {
		raiseMin = 2 * cmd.BigBlind
	}
	raiseMax := cmd.RaiseMax
	if raiseMax == 0 {
		raiseMax = cmd.Stack
	}

	sit := &gto.Situation{
		Street:         street,
		Position:       gto.PositionFromString(cmd.Position),
		HoleCards:      cmd.Hole,
		CommunityCards: cmd.Board,
		PotSize:        cmd.Pot,
		StackSize:      cmd.Stack,
		CallAmount:     cmd.Call,
		BigBlind:       cmd.BigBlind,
		ValidActions: []gto.ValidAction{
			{Action: gto.ActionFold},
			{Action: gto.ActionCall, MinAmount: cmd.Call, MaxAmount: cmd.Call},
			{Action: gto.ActionRaise, MinAmount: raiseMin, MaxAmount: raiseMax},
		},
	}

	advisor := gto.NewAdvisor(gto.Config{Seed: cmd.Seed}, logger)
	result := advisor.Decide(sit)

	fmt.Printf("action:     %s", result.Action)
	if result.Amount > 0 {
		fmt.Printf(" %d", result.Amount)
	}
	fmt.Println()
	fmt.Printf("confidence: %.2f\n", result.Confidence)
	fmt.Printf("sizing:     %s\n", result.Sizing.Explanation)
	fmt.Printf("reasoning:  %s\n", result.Reasoning)
	return nil
}

type ChartCmd struct {
	Position string `arg:"" default:"BTN" help:"Seat (UTG, MP, HJ, CO, BTN, SB, BB)"`
	Context  string `short:"x" default:"open" help:"Range context (open, defend, 3bet, call_3bet)"`
}

func (cmd *ChartCmd) Run(logger *log.Logger) error {
	model := analysis.NewRangeModel()
	r := model.Lookup(cmd.Position, "preflop", analysis.Context(cmd.Context))
	labels := r.Labels()

	fmt.Printf("%s %s (%d hands):\n", cmd.Position, cmd.Context, len(labels))
	for i, label := range labels {
		fmt.Printf("%-5s", label)
		if (i+1)%10 == 0 {
			fmt.Println()
		}
	}
	if len(labels)%10 != 0 {
		fmt.Println()
	}
	return nil
}
