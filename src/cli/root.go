// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"crypto/x509"
	"encoding/asn1"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/x509-verify-params/src/internal/helper/gc"
	x509certs "github.com/H0llyW00dzZ/x509-verify-params/src/internal/x509/certs"
	x509params "github.com/H0llyW00dzZ/x509-verify-params/src/internal/x509/params"
	x509purpose "github.com/H0llyW00dzZ/x509-verify-params/src/internal/x509/purpose"
	x509trust "github.com/H0llyW00dzZ/x509-verify-params/src/internal/x509/trust"
	x509verify "github.com/H0llyW00dzZ/x509-verify-params/src/internal/x509/verify"
	"github.com/H0llyW00dzZ/x509-verify-params/src/logger"
	"github.com/H0llyW00dzZ/x509-verify-params/src/profile"
)

// ErrNoRootsLoaded indicates that a roots file contained no usable
// certificates.
var ErrNoRootsLoaded = errors.New("cli: no root certificates loaded")

var (
	configFile  string
	profileName string
	hosts       []string
	emailAddr   string
	ipAddr      string
	depth       int
	checkTime   string
	policies    []string
	flagNames   []string
	bundleFile  string
	rootsFile   string
	strictMode  bool
)

// Execute runs the root command, parsing os.Args. The context is
// threaded through to the commands so in-flight work observes
// cancellation.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	rootCmd := &cobra.Command{
		Use:           "x509-verify-params",
		Short:         "X.509 verification parameter toolkit",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "profile configuration file (JSON or YAML)")

	rootCmd.AddCommand(newProfilesCmd(log))
	rootCmd.AddCommand(newVerifyCmd(log))

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// newProfilesCmd builds the command listing the available profiles as a
// markdown table: the built-in presets plus anything the configuration
// file defines.
func newProfilesCmd(log logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List available verification profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			names := x509params.ProfileNames()
			if cfg != nil {
				for name := range cfg.Profiles {
					names = append(names, name)
				}
			}

			var buf strings.Builder
			table := tablewriter.NewTable(&buf,
				tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
			)
			table.Header([]string{"Profile", "Purpose", "Trust", "Depth", "Hosts", "Email", "IP"})

			var rows [][]string
			for _, name := range names {
				p, err := cfg.Build(name)
				if err != nil {
					return err
				}
				rows = append(rows, []string{
					name,
					purposeName(p.Purpose()),
					trustName(p.Trust()),
					fmt.Sprintf("%d", p.Depth()),
					strings.Join(p.Hosts(), ", "),
					p.Email(),
					ipText(p.IP()),
				})
			}

			table.Bulk(rows)
			table.Render()
			log.Printf("%s", buf.String())
			return nil
		},
	}
}

// newVerifyCmd builds the command verifying a certificate file against
// a profile with optional per-invocation overrides.
func newVerifyCmd(log logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [CERT_FILE]",
		Short: "Verify a certificate against a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := buildParams()
			if err != nil {
				return err
			}

			loader := x509certs.NewLoader()

			certData, err := readFile(args[0])
			if err != nil {
				return fmt.Errorf("cli: failed to read certificate: %w", err)
			}
			leaf, err := loader.LoadLeaf(certData)
			if err != nil {
				return err
			}

			verifier := x509verify.New(p)

			if bundleFile != "" {
				bundleData, err := readFile(bundleFile)
				if err != nil {
					return fmt.Errorf("cli: failed to read bundle: %w", err)
				}
				bundle, err := loader.LoadBundle(bundleData)
				if err != nil {
					return err
				}
				verifier.AddIntermediates(bundle)
			}

			if rootsFile != "" {
				rootsData, err := readFile(rootsFile)
				if err != nil {
					return fmt.Errorf("cli: failed to read roots: %w", err)
				}
				pool := x509.NewCertPool()
				if !pool.AppendCertsFromPEM(rootsData) {
					return ErrNoRootsLoaded
				}
				verifier.Roots = pool
			}

			chains, err := verifier.Verify(leaf)
			if err != nil {
				return err
			}

			log.Printf("Certificate %q verified: %d chain(s) accepted.\n", leaf.Subject.CommonName, len(chains))
			log.Printf("%s", renderChains(chains))
			return nil
		},
	}

	cmd.Flags().StringVarP(&profileName, "profile", "p", "default", "verification profile to start from")
	cmd.Flags().StringArrayVar(&hosts, "host", nil, "expected DNS name (repeatable)")
	cmd.Flags().StringVar(&emailAddr, "email", "", "expected email identity")
	cmd.Flags().StringVar(&ipAddr, "ip", "", "expected IP identity")
	cmd.Flags().IntVar(&depth, "depth", -2, "maximum chain depth")
	cmd.Flags().StringVar(&checkTime, "time", "", "verification time (RFC 3339, default: now)")
	cmd.Flags().StringArrayVar(&policies, "policy", nil, "required certificate policy OID (repeatable)")
	cmd.Flags().StringArrayVar(&flagNames, "flag", nil, "verify flag to turn on (repeatable)")
	cmd.Flags().BoolVar(&strictMode, "strict", false, "shorthand for --flag x509_strict")
	cmd.Flags().StringVarP(&bundleFile, "bundle", "b", "", "untrusted intermediate bundle file")
	cmd.Flags().StringVarP(&rootsFile, "roots", "r", "", "trusted root certificates file (default: system roots)")

	return cmd
}

// loadConfig loads the profile configuration named by --config, nil
// when no file is configured. A nil *profile.Config still resolves the
// built-in presets through Build.
func loadConfig() (*profile.Config, error) {
	if configFile == "" {
		return nil, nil
	}
	return profile.Load(configFile)
}

// buildParams layers the requested profile and the command-line
// overrides into an owned parameter set.
func buildParams() (*x509params.VerifyParam, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	p, err := cfg.Build(profileName)
	if err != nil {
		return nil, err
	}

	for i, host := range hosts {
		if i == 0 {
			err = p.SetHost([]byte(host), 0)
		} else {
			err = p.AddHost([]byte(host), 0)
		}
		if err != nil {
			return nil, fmt.Errorf("cli: host %q: %w", host, err)
		}
	}
	if emailAddr != "" {
		if err := p.SetEmail([]byte(emailAddr), 0); err != nil {
			return nil, fmt.Errorf("cli: email %q: %w", emailAddr, err)
		}
	}
	if ipAddr != "" {
		if err := p.SetIPFromText(ipAddr); err != nil {
			return nil, fmt.Errorf("cli: ip %q: %w", ipAddr, err)
		}
	}
	if depth >= -1 {
		p.SetDepth(depth)
	}
	if checkTime != "" {
		t, err := time.Parse(time.RFC3339, checkTime)
		if err != nil {
			return nil, fmt.Errorf("cli: invalid --time: %w", err)
		}
		p.SetTime(t)
	}
	if len(policies) > 0 {
		oids := make([]asn1.ObjectIdentifier, 0, len(policies))
		for _, s := range policies {
			oid, err := profile.ParseOID(s)
			if err != nil {
				return nil, err
			}
			oids = append(oids, oid)
		}
		p.SetPolicies(oids)
	}
	for _, name := range flagNames {
		f, err := profile.ParseFlag(name)
		if err != nil {
			return nil, err
		}
		p.SetFlags(f)
	}
	if strictMode {
		p.SetFlags(x509params.FlagX509Strict)
	}

	return p, nil
}

// renderChains renders the accepted chains as a markdown table.
func renderChains(chains [][]*x509.Certificate) string {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"Chain", "Link", "Subject", "Issuer", "Valid Until"})

	var rows [][]string
	for i, chain := range chains {
		for j, cert := range chain {
			rows = append(rows, []string{
				fmt.Sprintf("%d", i+1),
				fmt.Sprintf("%d", j),
				cert.Subject.CommonName,
				cert.Issuer.CommonName,
				cert.NotAfter.Format("2006-01-02"),
			})
		}
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}

// readFile reads a whole file through the pooled buffer helper.
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return gc.ReadAll(f)
}

// purposeName resolves a purpose identifier for display.
func purposeName(id int) string {
	if pu := x509purpose.GetByID(id); pu != nil {
		return pu.ShortName
	}
	return "-"
}

// trustName resolves a trust identifier for display.
func trustName(id int) string {
	if tr := x509trust.GetByID(id); tr != nil {
		return tr.ShortName
	}
	return "-"
}

// ipText renders a stored IP identity for display.
func ipText(ip []byte) string {
	if ip == nil {
		return ""
	}
	return net.IP(ip).String()
}
