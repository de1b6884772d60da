package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/zyra-atelier/storefront/internal/config"
	"github.com/zyra-atelier/storefront/internal/pkg/email"
	"github.com/zyra-atelier/storefront/internal/pkg/logger"
)

func newMailTestCmd() *cobra.Command {
	var to []string

	cmd := &cobra.Command{
		Use:   "mail-test",
		Short: "Send a test email through the configured inquiry sender",
		Long: `Mail-test loads the API configuration and sends one message through the
same sender corporate inquiries use. Without SMTP_HOST the message is only
logged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if len(to) == 0 {
				to = cfg.Email.InquiryTo
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			sender := email.NewSender(cfg, logger.New(cfg))
			if err := sender.Send(ctx, &email.Email{
				To:          to,
				Subject:     fmt.Sprintf("%s test email", cfg.App.Name),
				HTMLContent: "<p>Inquiry notifications are working.</p>",
				Type:        email.EmailTypeTest,
			}); err != nil {
				return fmt.Errorf("failed to send test email: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Test email handed to sender for %v\n", to)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&to, "to", nil, "Recipients (defaults to INQUIRY_NOTIFY_TO)")

	return cmd
}
