package main

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/ougirez/constituency/internal/api"
	"github.com/ougirez/constituency/internal/app"
	"github.com/ougirez/constituency/internal/domain/dto"
	"github.com/ougirez/constituency/internal/pkg/config"
	"github.com/ougirez/constituency/internal/pkg/constants"
	"github.com/ougirez/constituency/internal/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:          "constituency",
		Short:        "Know Your Constituency: pincode lookup and citizen complaints",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Init(cfgFile); err != nil {
				return err
			}
			l, err := logger.New(viper.GetString(constants.ViperLogLevelKey), viper.GetString(constants.ViperLogEncodingKey))
			if err != nil {
				return fmt.Errorf("logger.New: %w", err)
			}
			zap.ReplaceGlobals(l)
			logger.SetGlobal(l)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = zap.L().Sync()
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./config.yaml)")
	root.PersistentFlags().String("data-dir", "", "directory holding the reference CSV files")
	_ = viper.BindPFlag(constants.ViperDataDirKey, root.PersistentFlags().Lookup("data-dir"))

	root.AddCommand(newServeCmd(), newResolveCmd(), newStatsCmd(), newComplaintCmd())
	return root
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := app.Initialize(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			svc := api.NewAPIService(a.Complaints, viper.GetStringSlice(constants.ViperServerCORSOriginsKey))

			errCh := make(chan error, 1)
			go func() {
				errCh <- svc.Serve(viper.GetString(constants.ViperServerAddrKey))
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			logger.Infof(ctx, "shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := svc.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			return <-errCh
		},
	}
	cmd.Flags().String("addr", "", "listen address")
	_ = viper.BindPFlag(constants.ViperServerAddrKey, cmd.Flags().Lookup("addr"))
	return cmd
}

func newResolveCmd() *cobra.Command {
	var vsID string

	cmd := &cobra.Command{
		Use:   "resolve <pincode>",
		Short: "Resolve a pincode to its assembly and parliamentary seats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.Initialize(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.Complaints.Search(cmd.Context(), &dto.SearchRequest{Pincode: args[0], VSID: vsID})
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
	cmd.Flags().StringVar(&vsID, "vs-id", "", "assembly seat to pick when the pincode spans several")
	return cmd
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print complaint statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.Initialize(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			stats, err := a.Complaints.Stats(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, stats)
		},
	}
}

func newComplaintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complaint",
		Short: "File or look up complaints",
	}

	var req dto.FileComplaintRequest
	file := &cobra.Command{
		Use:   "file",
		Short: "File a complaint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.Initialize(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.Complaints.FileComplaint(cmd.Context(), &req)
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
	file.Flags().StringVar(&req.Pincode, "pincode", "", "6-digit pincode")
	file.Flags().StringVar(&req.Name, "name", "", "complainant name")
	file.Flags().StringVar(&req.Email, "email", "", "complainant email")
	file.Flags().StringVar(&req.Phone, "phone", "", "complainant phone")
	file.Flags().StringVar(&req.Category, "category", "", "complaint category")
	file.Flags().StringVar(&req.Description, "description", "", "complaint description")
	file.Flags().StringVar(&req.VSID, "vs-id", "", "assembly seat to file against")

	status := &cobra.Command{
		Use:   "status <complaint-id>",
		Short: "Show a complaint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.Initialize(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			c, err := a.Complaints.ComplaintStatus(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, c)
		},
	}

	cmd.AddCommand(file, status)
	return cmd
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	out, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("sonic.MarshalIndent: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
