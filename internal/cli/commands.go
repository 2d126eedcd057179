package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/f1-telemetry-service/internal/render"
)

func newRacesCmd(opts *options, factory DashboardFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "races",
		Short: "List the season's races",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := openSession(cmd, opts, factory)
			defer s.close()

			list, selected := s.dash.Races()
			render.Races(cmd.OutOrStdout(), list, selected)
			return nil
		},
	}
}

func newRaceCmd(opts *options, factory DashboardFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "race [round]",
		Short: "Show results and tyre stints for a race",
		Long:  "Show the podium, classification and tyre stint chart for a round. Without a round the initial round is shown.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var round int
			if len(args) == 1 {
				var err error
				round, err = strconv.Atoi(args[0])
				if err != nil || round < 1 {
					return fmt.Errorf("invalid round %q", args[0])
				}
			}

			s := openSession(cmd, opts, factory)
			defer s.close()

			if round > 0 {
				done, err := s.dash.SelectRace(s.ctx, round)
				if err != nil {
					return fmt.Errorf("select round %d: %w", round, err)
				}
				if err := s.wait(done); err != nil {
					return err
				}
			}
			render.Race(cmd.OutOrStdout(), s.dash.RaceView())
			return nil
		},
	}
}

func newTeamsCmd(opts *options, factory DashboardFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "teams [team]",
		Short: "Show team standings and driver careers",
		Long:  "Show every team and the career totals of one team's drivers. Without a team the first team is shown.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := openSession(cmd, opts, factory)
			defer s.close()

			if len(args) == 1 {
				done, err := s.dash.SelectTeam(s.ctx, args[0])
				if err != nil {
					return fmt.Errorf("select team %q: %w", args[0], err)
				}
				if err := s.wait(done); err != nil {
					return err
				}
			}
			render.Teams(cmd.OutOrStdout(), s.dash.TeamView())
			return nil
		},
	}
}

func newSpecsCmd(opts *options, factory DashboardFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "specs",
		Short: "Show the car technical specifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := openSession(cmd, opts, factory)
			defer s.close()

			render.Specs(cmd.OutOrStdout(), s.dash.SpecsView())
			return nil
		},
	}
}
