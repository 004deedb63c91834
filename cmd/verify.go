package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/techskyline/academy/internal/credential"
	"github.com/techskyline/academy/internal/ui/theme"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <id>",
	Short: "Verify a certificate id against the local registry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cert, err := credential.NewRegistry(st.CertificateRepo()).Lookup(cmd.Context(), args[0])
		if err != nil {
			if errors.Is(err, credential.ErrNotFound) {
				fmt.Println(theme.Incorrect.Render("✗ Credential Invalid"))
				fmt.Println(theme.Hint.Render("No certificate with this id has been issued."))
				return nil
			}
			return fmt.Errorf("verify certificate: %w", err)
		}

		fmt.Println(theme.Correct.Render("✓ Credential Verified"))
		fmt.Println()
		fmt.Printf("  %s earned the %s certificate\n", cert.Name, cert.Track)
		if cert.ProjectTitle != "" {
			fmt.Printf("  Capstone: %s\n", cert.ProjectTitle)
		}
		if len(cert.Skills) > 0 {
			fmt.Printf("  Verified skills: %s\n", strings.Join(cert.Skills, ", "))
		}
		fmt.Printf("  Issued %s\n", cert.IssuedAt.Local().Format("January 2, 2006"))
		return nil
	},
}
