package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/headless/internal/publish"
)

func publishCmd(a *app) *cobra.Command {
	var (
		bucket   string
		prefix   string
		region   string
		endpoint string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Build the static gallery and upload it to S3",
		Long: `Build the static gallery and upload every page to an S3 bucket.

Credentials are read from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and
AWS_SESSION_TOKEN.

Examples:
  headless publish --bucket my-gallery
  headless publish --bucket site --prefix headless/ --endpoint http://localhost:9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			applyBuildFlags(cfg, output, false)
			if bucket != "" {
				cfg.Publish.Bucket = bucket
			}
			if prefix != "" {
				cfg.Publish.Prefix = prefix
			}
			if region != "" {
				cfg.Publish.Region = region
			}
			if endpoint != "" {
				cfg.Publish.Endpoint = endpoint
			}
			if err := cfg.ValidatePublish(); err != nil {
				return err
			}

			client, err := publish.NewS3Client(publish.S3Config{
				Region:   cfg.Publish.Region,
				Endpoint: cfg.Publish.Endpoint,
			})
			if err != nil {
				return err
			}

			res, err := runBuild(cmd, a, cfg)
			if err != nil {
				return err
			}

			p := publish.NewPublisher(client, cfg.Publish.Bucket, cfg.Publish.Prefix, a.logger(cmd.ErrOrStderr()))
			keys, err := p.Publish(cmd.Context(), res.OutputDir)
			if err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Uploaded %d objects to s3://%s/%s", len(keys), cfg.Publish.Bucket, p.Key(""))
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "Bucket (default from headless.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix")
	cmd.Flags().StringVar(&region, "region", "", "AWS region")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "S3-compatible endpoint")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Build directory (default from headless.json)")

	return cmd
}
