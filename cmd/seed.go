package cmd

import (
	"context"
	"errors"
	"fmt"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

type demoProduct struct {
	name        string
	description string
	price       string
	stock       int
}

var demoProducts = []demoProduct{
	{"Fresh Water 5L", "Drinking water canister", "4.99", 200},
	{"Diesel Filter", "Spin-on fuel filter for marine engines", "38.50", 40},
	{"First Aid Kit", "Offshore first aid kit", "59.90", 25},
	{"Coffee Beans 1kg", "Medium roast", "17.25", 80},
	{"VHF Antenna", "Marine VHF antenna, 1.5 m", "89.00", 10},
}

// Seed creates the demo catalog. Products whose name already exists are
// skipped, so it can run repeatedly. It returns how many were created.
func Seed(ctx context.Context, root *CompositionRoot) (int, error) {
	existing, err := root.CreateListProductsQueryHandler().Handle(ctx, queries.NewListProductsQuery())
	if err != nil {
		return 0, fmt.Errorf("list products: %w", err)
	}
	names := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		names[p.Name] = struct{}{}
	}

	handler := root.CreateCreateProductCommandHandler()
	created := 0
	var errs []error
	for _, demo := range demoProducts {
		if _, ok := names[demo.name]; ok {
			continue
		}

		cmd, cmdErr := commands.NewCreateProductCommand(demo.name, demo.description, decimal.RequireFromString(demo.price), demo.stock)
		if cmdErr != nil {
			errs = append(errs, cmdErr)
			continue
		}
		if _, cmdErr = handler.Handle(ctx, cmd); cmdErr != nil {
			errs = append(errs, fmt.Errorf("create %s: %w", demo.name, cmdErr))
			continue
		}
		created++
	}

	root.Logger().InfoContext(ctx, "Seeded demo products", "created", created)
	return created, errors.Join(errs...)
}
