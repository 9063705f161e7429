package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"principles/internal/app"
	"principles/internal/card"
	"principles/internal/principles"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one principle as a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := principles.Default()
			unit, err := resolveUnit(store, args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), app.FormatUnit(unit))
			return err
		},
	}
}

// resolveUnit maps a principle id, or "end", to the card it shows.
func resolveUnit(store *principles.Store, arg string) (card.Unit, error) {
	r := card.NewRenderer(store)
	if arg == "end" {
		return r.Project(store.Len()), nil
	}
	id, err := strconv.Atoi(arg)
	if err != nil {
		return card.Unit{}, fmt.Errorf("invalid principle id %q", arg)
	}
	p, err := store.ByID(id)
	if err != nil {
		return card.Unit{}, err
	}
	return r.Project(p.ID - 1), nil
}
