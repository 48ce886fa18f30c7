package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"oficios/app"
	"oficios/config"
	"oficios/db"
	"oficios/models"
	"oficios/tools"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configPath string

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "oficios",
		Short:        "Controle de ofícios (cadastro, listagem, edição)",
		SilenceUsage: true,
		RunE:         runServe,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.json", "arquivo de configuração JSON")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Sobe o servidor HTTP",
		RunE:  runServe,
	}

	usuario := &cobra.Command{
		Use:   "usuario",
		Short: "Gerencia credenciais de acesso",
	}
	usuario.AddCommand(newCriarUsuarioCmd())

	root.AddCommand(serve, usuario)
	return root
}

func newCriarUsuarioCmd() *cobra.Command {
	var email, senha string
	cmd := &cobra.Command{
		Use:   "criar",
		Short: "Cria uma credencial (senha gravada com bcrypt)",
		RunE: func(cmd *cobra.Command, args []string) error {
			email = strings.TrimSpace(email)
			if !tools.ValidateEmail(email) {
				return fmt.Errorf("email inválido: %q", email)
			}
			if field := tools.CheckPassword(senha); field != "" {
				return fmt.Errorf("%s precisa ter ao menos 6 caracteres", field)
			}

			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()

			backend, err := db.Connect(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer backend.Close()

			hash, err := tools.HashPassword(senha)
			if err != nil {
				return err
			}
			if err := backend.CreateLogin(cmd.Context(), models.Login{Email: email, Senha: hash}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "usuário %s criado\n", email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "e-mail de login")
	cmd.Flags().StringVar(&senha, "senha", "", "senha em texto puro (será gravada com hash)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("senha")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg)
	if err != nil {
		logger.Error("falha ao iniciar", zap.Error(err))
		return err
	}
	return application.Run(ctx)
}

// bootstrap carrega a configuração e instala o logger global.
func bootstrap() (config.Configuration, *zap.Logger, error) {
	cfg, err := config.Get(configPath)
	if err != nil {
		return cfg, nil, err
	}
	logger, err := tools.NewLogger(cfg.LogPath, cfg.GinMode == "debug")
	if err != nil {
		return cfg, nil, err
	}
	zap.ReplaceGlobals(logger)
	return cfg, logger, nil
}
