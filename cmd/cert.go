package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/techskyline/academy/internal/credential"
	"github.com/techskyline/academy/internal/ui/theme"
)

var certCmd = &cobra.Command{
	Use:   "cert",
	Short: "Issue and inspect completion certificates",
}

var certIssueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Issue your completion certificate",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		name, _ := cmd.Flags().GetString("name")
		project, _ := cmd.Flags().GetString("project")
		owner, _ := cmd.Flags().GetString("user")
		if name == "" {
			return fmt.Errorf("--name is required; it appears on the certificate")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ledger, err := loadLedger(ctx, st, cfg)
		if err != nil {
			return err
		}
		issuer, err := buildIssuer(cfg)
		if err != nil {
			return err
		}
		registry := credential.NewRegistry(st.CertificateRepo())

		cert, err := credential.IssueAndRecord(ctx, issuer, registry, ledger, credential.Meta{
			OwnerID:      owner,
			Name:         name,
			ProjectTitle: project,
		})
		if err != nil {
			if errors.Is(err, credential.ErrIneligible) {
				fmt.Println(theme.Incorrect.Render("Not eligible yet."))
				fmt.Println(theme.Hint.Render("Finish the remaining coursework, then try again. See: academy dashboard"))
				return nil
			}
			return fmt.Errorf("issue certificate: %w", err)
		}

		fmt.Println(theme.Correct.Render("Certificate issued"))
		printCertificate(cert)
		return nil
	},
}

var certListCmd = &cobra.Command{
	Use:   "list",
	Short: "List issued certificates",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		certs, err := credential.NewRegistry(st.CertificateRepo()).List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list certificates: %w", err)
		}
		if len(certs) == 0 {
			fmt.Println("No certificates issued yet.")
			return nil
		}

		for _, c := range certs {
			fmt.Printf("%s  %-24s  %s\n",
				c.IssuedAt.Local().Format("2006-01-02"), c.Name, theme.Selected.Render(c.ID))
		}
		return nil
	},
}

var certShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a certificate in full",
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
				return fmt.Errorf("no certificate with id %q", args[0])
			}
			return fmt.Errorf("look up certificate: %w", err)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(cert)
		}

		printCertificate(cert)
		return nil
	},
}

func printCertificate(cert credential.Certificate) {
	fmt.Println()
	fmt.Printf("  ID:       %s\n", theme.Selected.Render(cert.ID))
	fmt.Printf("  Name:     %s\n", cert.Name)
	fmt.Printf("  Track:    %s\n", cert.Track)
	if cert.ProjectTitle != "" {
		fmt.Printf("  Project:  %s\n", cert.ProjectTitle)
	}
	if len(cert.Skills) > 0 {
		fmt.Printf("  Skills:   %s\n", strings.Join(cert.Skills, ", "))
	}
	fmt.Printf("  Issued:   %s\n", cert.IssuedAt.Local().Format("January 2, 2006"))
	fmt.Printf("  Verify:   %s\n", cert.VerificationURL)
}

func init() {
	certIssueCmd.Flags().String("name", "", "Learner name as it should appear on the certificate")
	certIssueCmd.Flags().String("project", "", "Capstone project title")
	certIssueCmd.Flags().String("user", "local", "Owner id recorded on the certificate")
	certShowCmd.Flags().Bool("json", false, "Print the raw certificate document")

	certCmd.AddCommand(certIssueCmd)
	certCmd.AddCommand(certListCmd)
	certCmd.AddCommand(certShowCmd)
}
