package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/clinic-scheduler/internal/db"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/ids"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/catalog"
	infraRepo "github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logger"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/password"
	"github.com/BruksfildServices01/clinic-scheduler/internal/usecase/medicine"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "clinicctl",
		Short:        "Clinic operator tasks",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(importMedicinesCmd())
	rootCmd.AddCommand(syncCountersCmd())
	rootCmd.AddCommand(changePasswordCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// env opens config, logger and database for one command run.
func env() (*config.Config, *zap.Logger, *gorm.DB, func(), error) {
	cfg := config.Load()

	zlog, err := logger.New(cfg.IsProduction())
	if err != nil {
		return nil, nil, nil, nil, err
	}

	db, err := dbpkg.NewDB(cfg, zlog)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	cleanup := func() {
		_ = dbpkg.Close(db)
		_ = zlog.Sync()
	}
	return cfg, zlog, db, cleanup, nil
}

func importMedicinesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-medicines",
		Short: "Upsert the medicine catalogue from a CSV in S3 or on disk",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			bucket, _ := cmd.Flags().GetString("bucket")
			key, _ := cmd.Flags().GetString("key")

			cfg, zlog, db, cleanup, err := env()
			if err != nil {
				return err
			}
			defer cleanup()

			var src catalog.Source
			switch {
			case file != "":
				src = catalog.FileSource{Path: file}
			case key != "":
				if bucket == "" {
					bucket = cfg.CatalogBucket
				}
				if bucket == "" {
					return errors.New("--bucket or S3_CATALOG_BUCKET is required with --key")
				}
				client, err := catalog.NewS3Client(cfg)
				if err != nil {
					return err
				}
				src = catalog.S3Source{Client: client, Bucket: bucket, Key: key}
			default:
				return errors.New("one of --file or --key is required")
			}

			ctx := cmd.Context()
			rc, err := src.Open(ctx)
			if err != nil {
				return err
			}
			defer rc.Close()

			uc := medicine.NewImportCatalog(
				infraRepo.NewMedicineGormRepository(db),
				infraRepo.NewCounterGormRepository(db),
				zlog,
			)
			res, err := uc.Execute(ctx, rc)
			if err != nil {
				return err
			}

			fmt.Printf("%s: %d created, %d updated, %d skipped\n", src, res.Created, res.Updated, res.Skipped)
			return nil
		},
	}
	cmd.Flags().String("file", "", "Local CSV path")
	cmd.Flags().String("bucket", "", "S3 bucket (defaults to S3_CATALOG_BUCKET)")
	cmd.Flags().String("key", "", "S3 object key")
	return cmd
}

func syncCountersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync-counters",
		Short: "Move every id counter up to the highest id already stored",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, db, cleanup, err := env()
			if err != nil {
				return err
			}
			defer cleanup()

			counters := infraRepo.NewCounterGormRepository(db)

			names := make([]string, 0, len(ids.Counters))
			for name := range ids.Counters {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				v, err := counters.Sync(cmd.Context(), name, ids.Counters[name])
				if err != nil {
					return fmt.Errorf("sync %s: %w", name, err)
				}
				fmt.Printf("%-13s %d\n", name, v)
			}
			return nil
		},
	}
}

func changePasswordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "change-password",
		Short: "Set a new password for a doctor, patient or pharmacy",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := cmd.Flags().GetString("id")
			plain, _ := cmd.Flags().GetString("password")

			model, err := modelFor(id)
			if err != nil {
				return err
			}
			if !validators.IsPassword(plain) {
				return errors.New("password must be 6-64 characters and contain a digit")
			}

			_, _, db, cleanup, err := env()
			if err != nil {
				return err
			}
			defer cleanup()

			hash, err := password.Hash(plain)
			if err != nil {
				return err
			}

			ok, err := infraRepo.NewDirectoryGormRepository(db).UpdatePasswordHash(context.Background(), model, id, hash)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no user with id %s", id)
			}

			fmt.Printf("password updated for %s\n", id)
			return nil
		},
	}
	cmd.Flags().String("id", "", "User id (DOC-, PAT- or PHAR-)")
	cmd.Flags().String("password", "", "New password")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

// modelFor picks the table a user id lives in.
func modelFor(id string) (any, error) {
	switch ids.KindOf(id) {
	case ids.KindDoctor:
		return &models.Doctor{}, nil
	case ids.KindPatient:
		return &models.Patient{}, nil
	case ids.KindPharmacy:
		return &models.Pharmacy{}, nil
	default:
		return nil, errors.New("invalid user id prefix, must start with DOC, PAT or PHAR")
	}
}
