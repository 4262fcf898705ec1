package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/tagwright-dev/tagwright/internal/demo"
	"github.com/tagwright-dev/tagwright/pkg/builder"
	"github.com/tagwright-dev/tagwright/pkg/sink"
	"github.com/tagwright-dev/tagwright/pkg/sink/s3sink"
)

func renderCmd() *cobra.Command {
	var (
		out        string
		title      string
		lang       string
		attrEscape string
		s3Region   string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the demo document",
		Long: `Render the demo document to stdout, a file, or an S3 object.

The output destination is chosen by --out: "-" streams to stdout, an
s3://bucket/key URL uploads the document, anything else is a file path.

S3 uploads sign with the AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY,
and AWS_SESSION_TOKEN environment variables when they are set, and
fall back to an anonymous request (which only an anonymously writable
bucket will accept) when they are not.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := builderOptions(attrEscape)
			if err != nil {
				return err
			}
			page := demo.Page{Title: title, Lang: lang}

			switch {
			case out == "-":
				w := builder.NewWriter(sink.NewStream(os.Stdout), opts...)
				if err := page.Render(w); err != nil {
					return err
				}
				fmt.Println()
				return nil

			case strings.HasPrefix(out, "s3://"):
				bucket, key, err := splitS3URL(out)
				if err != nil {
					return err
				}
				client := s3.New(s3.Options{
					Region:      s3Region,
					Credentials: envCredentials(),
				})
				dest := s3sink.New(client, bucket, key)
				w := builder.NewWriter(dest, opts...)
				if err := page.Render(w); err != nil {
					return err
				}
				if err := dest.Close(cmd.Context()); err != nil {
					return err
				}
				success("uploaded %d bytes to %s", dest.Len(), out)
				return nil

			default:
				w := builder.New(opts...)
				if err := page.Render(w); err != nil {
					return err
				}
				html, err := w.Result()
				if err != nil {
					return err
				}
				if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
					return err
				}
				success("wrote %d bytes to %s", len(html), out)
				return nil
			}
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "-", `Destination: "-", a file path, or s3://bucket/key`)
	cmd.Flags().StringVar(&title, "title", "", "Document title")
	cmd.Flags().StringVar(&lang, "lang", "", "Document language")
	cmd.Flags().StringVar(&attrEscape, "attr-escape", "quotes", `Attribute escaping policy: "quotes" or "full"`)
	cmd.Flags().StringVar(&s3Region, "s3-region", "us-east-1", "AWS region for s3:// destinations")

	return cmd
}

func builderOptions(attrEscape string) ([]builder.Option, error) {
	switch attrEscape {
	case "quotes":
		return nil, nil
	case "full":
		return []builder.Option{builder.WithAttrPolicy(builder.AttrEscapeFull)}, nil
	default:
		return nil, fmt.Errorf("unknown --attr-escape policy %q (want quotes or full)", attrEscape)
	}
}

// envCredentials returns static credentials from the standard AWS
// environment variables, or anonymous credentials when they are unset.
// The CLI deliberately skips the SDK's config/credential-chain module;
// environment variables cover the render-and-upload use case.
func envCredentials() aws.CredentialsProvider {
	id := os.Getenv("AWS_ACCESS_KEY_ID")
	secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if id == "" || secret == "" {
		return aws.AnonymousCredentials{}
	}
	session := os.Getenv("AWS_SESSION_TOKEN")
	return aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
		return aws.Credentials{
			AccessKeyID:     id,
			SecretAccessKey: secret,
			SessionToken:    session,
			Source:          "environment",
		}, nil
	})
}

// splitS3URL splits s3://bucket/key into its parts.
func splitS3URL(url string) (bucket, key string, err error) {
	rest := strings.TrimPrefix(url, "s3://")
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid S3 URL %q (want s3://bucket/key)", url)
	}
	return bucket, key, nil
}
