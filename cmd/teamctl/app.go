package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"opportunity-team/internal/client"
	"opportunity-team/internal/models"
	"opportunity-team/internal/panel"

	"github.com/urfave/cli/v3"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "teamctl",
		Usage: "manage the sales team of an opportunity",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api-url",
				Usage:   "roster API base URL",
				Value:   "http://localhost:8080/api/v1",
				Sources: cli.EnvVars("TEAMCTL_API_URL"),
			},
			&cli.StringFlag{
				Name:    "token",
				Usage:   "bearer token",
				Sources: cli.EnvVars("TEAMCTL_TOKEN"),
			},
			&cli.StringFlag{
				Name:    "opportunity",
				Aliases: []string{"o"},
				Usage:   "opportunity id",
				Sources: cli.EnvVars("TEAMCTL_OPPORTUNITY"),
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "per-call timeout",
				Value: client.DefaultTimeout,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log API calls to stderr",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "members",
				Usage:  "list the team",
				Action: listMembers,
			},
			{
				Name:   "roles",
				Usage:  "list the team roles",
				Action: listRoles,
			},
			{
				Name:      "search",
				Usage:     "search users to add",
				ArgsUsage: "<term>",
				Action:    searchUsers,
			},
			{
				Name:  "add",
				Usage: "add a user to the team",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "user", Usage: "user id", Required: true},
					&cli.StringFlag{Name: "role", Usage: "team role", Required: true},
					&cli.BoolFlag{Name: "read-only", Usage: "grant Read instead of Edit access"},
				},
				Action: addMember,
			},
			{
				Name:      "remove",
				Usage:     "remove a member from the team",
				ArgsUsage: "<member-id>",
				Action:    removeMember,
			},
		},
	}
}

// session is a panel bound to the API for one command run.
type session struct {
	panel *panel.Panel
	out   io.Writer
}

func openSession(cmd *cli.Command, needsOpportunity bool) (*session, error) {
	root := cmd.Root()
	opportunityID := root.String("opportunity")
	if needsOpportunity && opportunityID == "" {
		return nil, errors.New("opportunity id is required (--opportunity or TEAMCTL_OPPORTUNITY)")
	}

	level := slog.LevelError
	if root.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(root.ErrWriter, &slog.HandlerOptions{Level: level}))

	backend := client.New(client.Config{
		BaseURL: root.String("api-url"),
		Token:   root.String("token"),
		Timeout: root.Duration("timeout"),
		Logger:  logger,
	})

	out := root.Writer
	notifier := panel.NotifierFunc(func(t panel.Toast) {
		fmt.Fprintf(out, "[%s] %s: %s\n", t.Variant, t.Title, t.Message)
	})

	return &session{
		panel: panel.New(opportunityID, backend, notifier, panel.WithLogger(logger)),
		out:   out,
	}, nil
}

func listMembers(ctx context.Context, cmd *cli.Command) error {
	s, err := openSession(cmd, true)
	if err != nil {
		return err
	}
	if err := s.panel.Load(ctx); err != nil {
		return err
	}
	s.printMembers()
	return nil
}

func listRoles(ctx context.Context, cmd *cli.Command) error {
	s, err := openSession(cmd, false)
	if err != nil {
		return err
	}
	roles, err := s.panel.Source().Roles(ctx)
	if err != nil {
		return err
	}
	for _, r := range roles {
		fmt.Fprintln(s.out, r.Value)
	}
	return nil
}

func searchUsers(ctx context.Context, cmd *cli.Command) error {
	term := cmd.Args().First()
	s, err := openSession(cmd, false)
	if err != nil {
		return err
	}

	candidates, err := s.panel.OnSearchInput(ctx, term)
	if err != nil {
		return err
	}
	if !s.panel.State().DropdownOpen {
		return fmt.Errorf("search term %q is too short", term)
	}

	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tTITLE")
	for _, c := range candidates {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Email, c.Title)
	}
	return w.Flush()
}

func addMember(ctx context.Context, cmd *cli.Command) error {
	s, err := openSession(cmd, true)
	if err != nil {
		return err
	}
	if err := s.panel.Load(ctx); err != nil {
		return err
	}

	userID := cmd.String("user")
	s.panel.OnAccessToggle(userID, !cmd.Bool("read-only"))
	if err := s.panel.OnRoleSelected(ctx, userID, cmd.String("role")); err != nil {
		return err
	}
	s.printMembers()
	return nil
}

func removeMember(ctx context.Context, cmd *cli.Command) error {
	memberID := cmd.Args().First()
	if memberID == "" {
		return errors.New("member id is required")
	}
	s, err := openSession(cmd, true)
	if err != nil {
		return err
	}
	if err := s.panel.OnRemoveRequested(ctx, memberID); err != nil {
		return err
	}
	s.printMembers()
	return nil
}

func (s *session) printMembers() {
	members := s.panel.TeamMembers()
	if len(members) == 0 {
		fmt.Fprintln(s.out, "no team members")
		return
	}

	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMEMBER\tACCESS")
	for i, pill := range s.panel.Pills() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", pill.Name, pill.Label, accessLabel(members[i]))
	}
	_ = w.Flush()
}

func accessLabel(m models.TeamMemberRecord) string {
	if m.AccessLevel == "" {
		return "-"
	}
	return m.AccessLevel
}
