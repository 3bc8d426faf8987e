package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/editmark/core/sanitize"
	"github.com/gaurav-prasanna/editmark/core/validate"
)

func newCheckURLCmd(global *globalOptions) *cobra.Command {
	var width string

	checkCmd := &cobra.Command{
		Use:   "check-url <url>",
		Short: "Validate a link or image URL the way the editor does",
		Long: `check-url applies the editor's URL policy: https:// is accepted, http:// and
other schemes are rejected, and addresses without a scheme get https:// prepended.
An empty URL means "remove the link" and is not an error.

Examples:
  editmark check-url example.com
  editmark check-url https://example.com/logo.png --width 200px`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := global.load(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			u, err := validate.EnforceSecureURL(args[0])
			switch {
			case errors.Is(err, validate.ErrEmptyURL):
				fmt.Fprintln(out, dimStyle.Render("empty URL: the link or image would be removed"))
				return nil
			case err != nil:
				reason := validate.ReasonOf(err)
				log.URLRejected(strings.TrimSpace(args[0]), string(reason))
				return fmt.Errorf("%s (%s)", cfg.RejectionMessages().For(err), reason)
			}

			log.URLAccepted(u.Raw, u.Value, u.Kind.String())
			fmt.Fprintln(out, successStyle.Render("✓ "+u.Value))

			if cmd.Flags().Changed("width") {
				if w, ok := validate.Width(width); ok {
					fmt.Fprintln(out, successStyle.Render("✓ width "+w))
				} else {
					fmt.Fprintln(out, warningStyle.Render(fmt.Sprintf("! width %q ignored (use digits, optionally px or %%)", width)))
				}
			}
			return nil
		},
	}

	checkCmd.Flags().StringVar(&width, "width", "", "Image width to validate (digits, optionally px or %)")
	return checkCmd
}

func newEscapeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "escape <text>...",
		Short: "Escape text the way the serializer escapes text leaves",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), sanitize.EscapeText(strings.Join(args, " ")))
			return nil
		},
	}
}
