package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/joho/godotenv"

	"github.com/theezequiel42/water-tracker/internal/config"
	"github.com/theezequiel42/water-tracker/internal/logger"
	"github.com/theezequiel42/water-tracker/internal/sheet"
	"github.com/theezequiel42/water-tracker/internal/statement"
)

type Params struct {
	Name  string `descr:"Name as written in the sheet" positional:"true" optional:"true"`
	Month string `descr:"Month key or label, e.g. \"maio 2025\" (defaults to the previous month)" short:"m" optional:"true"`
	List  bool   `descr:"List the names and months found in the sheet" short:"l" optional:"true"`
}

func main() {
	boa.NewCmdT[Params]("report").
		WithShort("Print a consumption and billing statement").
		WithLong("Loads the consumption sheet and prints the statement of one person for a month, followed by the amount billed in every month.").
		WithRunFunc(func(params *Params) {
			if err := run(params); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}).
		Run()
}

func run(params *Params) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New("report", cfg.Log.Level, os.Stderr)
	if err != nil {
		return err
	}

	slog.SetDefault(log)

	layout, err := cfg.Layout()
	if err != nil {
		return err
	}

	opts, err := cfg.SheetOptions()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Sheet.FetchTimeout)
	defer cancel()

	loader, err := sheet.NewLoader(ctx, opts)
	if err != nil {
		return err
	}

	ledger, err := statement.NewService(loader, layout).Load(ctx)
	if err != nil {
		return err
	}

	if params.List {
		printIndex(os.Stdout, ledger, time.Now())
		return nil
	}

	if params.Name == "" {
		return errors.New("a name is required unless --list is given")
	}

	key := params.Month
	if key == "" {
		key = ledger.DefaultMonth(time.Now()).Key
	}

	s, err := ledger.Statement(params.Name, key)
	if errors.Is(err, statement.ErrNotFound) {
		if hint := ledger.Suggest(params.Name); hint != "" {
			return fmt.Errorf("%w (did you mean %q?)", err, hint)
		}
	}

	if err != nil {
		return err
	}

	printStatement(os.Stdout, s)
	printChart(os.Stdout, ledger.Chart(s.Name), s.Month.Key)

	return nil
}
