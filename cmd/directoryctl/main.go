package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spec-kit/admin-console/internal/config"
	"github.com/spec-kit/admin-console/internal/directory"
	"github.com/spec-kit/admin-console/internal/persistence"
	"github.com/spec-kit/admin-console/internal/repository"
)

// openFunc yields the directory to query and a cleanup func.
type openFunc func(ctx context.Context) (repository.UserRepository, func(), error)

func main() {
	if err := newRootCmd(openFromConfig).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openFromConfig(ctx context.Context) (repository.UserRepository, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, zap.NewNop())
	if err != nil {
		return nil, nil, err
	}
	return repository.OpenUserRepository(pg.Pool, cfg.Directory.SeedDemoData), pg.Close, nil
}

func newRootCmd(open openFunc) *cobra.Command {
	root := &cobra.Command{
		Use:           "directoryctl",
		Short:         "Query the admin console user directory",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	users := &cobra.Command{Use: "users", Short: "Directory members"}
	users.AddCommand(newListCmd(open), newDepartmentsCmd(open))
	root.AddCommand(users)
	return root
}

type listOptions struct {
	search     string
	role       string
	status     string
	department string
	sortBy     string
	order      string
	page       int
	limit      int
}

func newListCmd(open openFunc) *cobra.Command {
	opts := listOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Filter, sort and page directory members",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.Context(), cmd.OutOrStdout(), open, opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.search, "search", "", "case-insensitive match on name, email or department")
	flags.StringVar(&opts.role, "role", "all", "admin, user or all")
	flags.StringVar(&opts.status, "status", "all", "active, inactive or all")
	flags.StringVar(&opts.department, "department", "", "exact department name")
	flags.StringVar(&opts.sortBy, "sort", string(directory.SortByName), "sort field")
	flags.StringVar(&opts.order, "order", string(directory.SortAsc), "asc or desc")
	flags.IntVar(&opts.page, "page", 1, "1-based page number")
	flags.IntVar(&opts.limit, "limit", directory.DefaultLimit, "page size")
	return cmd
}

func runList(ctx context.Context, out io.Writer, open openFunc, opts listOptions) error {
	role, err := directory.ParseRoleFilter(opts.role)
	if err != nil {
		return err
	}
	status, err := directory.ParseStatusFilter(opts.status)
	if err != nil {
		return err
	}
	field, err := directory.ParseSortField(opts.sortBy)
	if err != nil {
		return err
	}
	direction, err := directory.ParseSortDirection(opts.order)
	if err != nil {
		return err
	}

	repo, closeFn, err := open(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	records, err := repo.List(ctx)
	if err != nil {
		return err
	}
	res := directory.Query(records,
		directory.Filter{Search: opts.search, Role: role, Status: status, Department: opts.department},
		directory.Sort{Field: field, Direction: direction},
		directory.PageRequest{Page: opts.page, Limit: opts.limit},
	)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tSTATUS\tDEPARTMENT\tLAST LOGIN")
	for _, u := range res.Users {
		lastLogin := "-"
		if u.LastLogin != nil {
			lastLogin = u.LastLogin.UTC().Format("2006-01-02")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			u.ID, u.Name, u.Email, u.Role, u.Status, orDash(u.DepartmentName()), lastLogin)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "page %d/%d, %d matching\n", res.Page, res.TotalPages(), res.Total)
	return err
}

func newDepartmentsCmd(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "departments",
		Short: "List departments in use",
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, closeFn, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			records, err := repo.List(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(directory.Departments(records), "\n"))
			return err
		},
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
