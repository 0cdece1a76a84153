package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cesta-amigo/internal/audit"
	"github.com/BruksfildServices01/cesta-amigo/internal/config"
	dbpkg "github.com/BruksfildServices01/cesta-amigo/internal/db"
	"github.com/BruksfildServices01/cesta-amigo/internal/domain/access"
	"github.com/BruksfildServices01/cesta-amigo/internal/domain/profile"
	infraRepo "github.com/BruksfildServices01/cesta-amigo/internal/infra/repository"
	"github.com/BruksfildServices01/cesta-amigo/internal/logger"
	"github.com/BruksfildServices01/cesta-amigo/internal/timezone"
	ucAuth "github.com/BruksfildServices01/cesta-amigo/internal/usecase/auth"
	ucOrder "github.com/BruksfildServices01/cesta-amigo/internal/usecase/order"
)

// env é carregado uma vez no PersistentPreRunE e compartilhado pelos comandos.
type env struct {
	cfg *config.Config
	log zerolog.Logger
	db  *gorm.DB
}

func newRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:           "cestactl",
		Short:         "Tarefas administrativas do Cesta Amigo",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.log = logger.New(cfg.LogLevel, cfg.LogPretty, os.Stderr)

			db, err := dbpkg.NewDB(cfg, e.log)
			if err != nil {
				return err
			}
			e.db = db
			return nil
		},
	}

	root.AddCommand(
		newMigrateCmd(e),
		newSeedAdminCmd(e),
		newSweepCmd(e),
	)
	return root
}

// ======================================================
// migrate
// ======================================================

func newMigrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Cria ou atualiza as tabelas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := dbpkg.Migrate(e.db); err != nil {
				return err
			}
			e.log.Info().Msg("migrations applied")
			return nil
		},
	}
}

// ======================================================
// seed-admin
// ======================================================

type seedAdminOpts struct {
	email           string
	username        string
	password        string
	name            string
	skipDomainCheck bool
}

func newSeedAdminCmd(e *env) *cobra.Command {
	opts := seedAdminOpts{}

	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Cria o primeiro administrador",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return seedAdmin(cmd.Context(), e, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.email, "email", "", "e-mail do administrador")
	f.StringVar(&opts.username, "username", "admin", "nome de usuário para login")
	f.StringVar(&opts.password, "password", "", "senha inicial")
	f.StringVar(&opts.name, "name", "Administrador", "nome exibido")
	f.BoolVar(&opts.skipDomainCheck, "skip-domain-check", false, "não consulta o MX do domínio do e-mail")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func seedAdmin(ctx context.Context, e *env, opts seedAdminOpts) error {
	var domains ucAuth.DomainChecker
	if opts.skipDomainCheck {
		domains = func(string) bool { return true }
	}

	uc := ucAuth.NewCreateUser(
		infraRepo.NewProfileGormRepository(e.db),
		ucAuth.DefaultPasswords(),
		domains,
		nil,
	)

	// o próprio CLI age como administrador
	res, err := uc.Execute(ctx, access.Actor{Role: profile.RoleAdmin}, ucAuth.SignUpInput{
		Email:    opts.email,
		Password: opts.password,
		UserData: ucAuth.UserData{
			DisplayName: opts.name,
			Username:    opts.username,
			Role:        string(profile.RoleAdmin),
		},
	})
	if err != nil {
		return errors.Wrap(err, "seed-admin")
	}

	e.log.Info().
		Str("user_id", res.Profile.UserID.String()).
		Str("email", res.Profile.Email).
		Msg("admin created")
	return nil
}

// ======================================================
// sweep-overdue
// ======================================================

func newSweepCmd(e *env) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "sweep-overdue",
		Short: "Marca como atrasados os pedidos pendentes antigos",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("days") {
				days = e.cfg.OrderOverdueDays
			}

			dispatcher := audit.NewDispatcher(audit.New(e.db), logger.Component(e.log, "audit"))
			defer dispatcher.Close()

			uc := ucOrder.NewSweepOverdue(
				infraRepo.NewOrderGormRepository(e.db),
				days,
				dispatcher,
				logger.Component(e.log, "orders"),
			)

			n, err := uc.Execute(cmd.Context(), timezone.Now())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d pedido(s) marcados como atrasado\n", n)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", ucOrder.DefaultOverdueDays, "dias sem pagamento até o pedido atrasar")
	return cmd
}
